package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-leo/behavioral-pattern/internal/config"
	"github.com/go-leo/behavioral-pattern/internal/logx"
	"github.com/go-leo/behavioral-pattern/visitor/financial"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var exporters = map[string]func(w io.Writer) financial.Visitor{
	"":     func(w io.Writer) financial.Visitor { return financial.CSVExporter{Out: w} },
	"csv":  func(w io.Writer) financial.Visitor { return financial.CSVExporter{Out: w} },
	"json": func(w io.Writer) financial.Visitor { return financial.JSONExporter{Out: w} },
}

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
	records := []financial.Record{
		financial.InvoiceRecord{Number: "INV001"},
		financial.ReceiptRecord{Number: "REC001"},
		financial.RefundRecord{Number: "REF001"},
	}
	return financial.Export(records, newExporter(out))
}
