package document

import (
	"fmt"
	"html"
	"io"
	"os"
	"strings"

	"github.com/go-leo/gox/slicex"
)

var _ Visitor = HTMLExporter{}

// HTMLExporter renders every element as an HTML fragment, one line per element.
type HTMLExporter struct {
	// Out defaults to os.Stdout.
	Out io.Writer
}

func (v HTMLExporter) VisitText(element TextElement) error {
	_, err := fmt.Fprintf(output(v.Out), "<p>%s</p>\n", html.EscapeString(element.Text))
	return err
}

func (v HTMLExporter) VisitImage(element ImageElement) error {
	_, err := fmt.Fprintf(output(v.Out), "<img src=\"%s\" />\n", html.EscapeString(element.Path))
	return err
}

// VisitTable builds the whole table first and writes it at once.
func (v HTMLExporter) VisitTable(element TableElement) error {
	var b strings.Builder
	b.WriteString("<table>")
	for _, row := range element.Rows {
		b.WriteString("<tr>")
		cells := slicex.Map[[]string, []string](row, func(_ int, cell string) string {
			return "<td>" + html.EscapeString(cell) + "</td>"
		})
		b.WriteString(strings.Join(cells, ""))
		b.WriteString("</tr>")
	}
	b.WriteString("</table>\n")
	_, err := io.WriteString(output(v.Out), b.String())
	return err
}

func output(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
