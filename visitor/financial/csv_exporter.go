package financial

import (
	"fmt"
	"io"
	"os"
)

var _ Visitor = CSVExporter{}

// CSVExporter writes one "<Kind>, <Number>" line per record.
type CSVExporter struct {
	// Out defaults to os.Stdout.
	Out io.Writer
}

func (v CSVExporter) VisitInvoice(record InvoiceRecord) error {
	return v.write("Invoice", record.Number)
}

func (v CSVExporter) VisitReceipt(record ReceiptRecord) error {
	return v.write("Receipt", record.Number)
}

func (v CSVExporter) VisitRefund(record RefundRecord) error {
	return v.write("Refund", record.Number)
}

func (v CSVExporter) write(kind string, number string) error {
	_, err := fmt.Fprintf(output(v.Out), "%s, %s\n", kind, number)
	return err
}

func output(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
