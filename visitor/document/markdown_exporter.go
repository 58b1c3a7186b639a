package document

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-leo/gox/slicex"
)

var _ Visitor = MarkdownExporter{}

// MarkdownExporter renders elements as Markdown. The first table row is the header.
type MarkdownExporter struct {
	Out io.Writer
}

func (v MarkdownExporter) VisitText(element TextElement) error {
	_, err := fmt.Fprintln(output(v.Out), element.Text)
	return err
}

func (v MarkdownExporter) VisitImage(element ImageElement) error {
	_, err := fmt.Fprintf(output(v.Out), "![](%s)\n", element.Path)
	return err
}

func (v MarkdownExporter) VisitTable(element TableElement) error {
	var b strings.Builder
	for i, row := range element.Rows {
		cells := slicex.Map[[]string, []string](row, func(_ int, cell string) string {
			return strings.ReplaceAll(cell, "|", `\|`)
		})
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
		if i == 0 {
			separators := slicex.Map[[]string, []string](row, func(int, string) string { return "---" })
			b.WriteString("| " + strings.Join(separators, " | ") + " |\n")
		}
	}
	_, err := io.WriteString(output(v.Out), b.String())
	return err
}
