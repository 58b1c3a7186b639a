package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-leo/behavioral-pattern/internal/config"
	"github.com/go-leo/behavioral-pattern/internal/logx"
	"github.com/go-leo/behavioral-pattern/visitor/document"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var exporters = map[string]func(w io.Writer) document.Visitor{
	"":         func(w io.Writer) document.Visitor { return document.HTMLExporter{Out: w} },
	"html":     func(w io.Writer) document.Visitor { return document.HTMLExporter{Out: w} },
	"markdown": func(w io.Writer) document.Visitor { return document.MarkdownExporter{Out: w} },
}

// The visitor pattern separates the document elements from the operations run over them.
// Each element accepts an exporter and calls back the exporter method for its own type.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger, err := logx.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, os.Stdout); err != nil {
		logger.Error("export failed", zap.String("format", cfg.ExportFormat), zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, out io.Writer) error {
	newExporter, ok := exporters[cfg.ExportFormat]
	if !ok {
		return errors.Errorf("unsupported export format %q", cfg.ExportFormat)
	}
	elements := []document.Element{
		document.TextElement{Text: "Hello, World!"},
		document.ImageElement{Path: "image.png"},
		document.NewTableElement(
			[]string{"Header1", "Header2"},
			[]string{"Row1Col1", "Row1Col2"},
		),
	}
	return document.Export(elements, newExporter(out))
}
