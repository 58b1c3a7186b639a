package financial

import (
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var _ Visitor = JSONExporter{}

type jsonRecord struct {
	Kind   string `json:"kind"`
	Number string `json:"number"`
}

// JSONExporter writes one JSON object per line, e.g. {"kind":"invoice","number":"INV001"}.
type JSONExporter struct {
	Out io.Writer
}

func (v JSONExporter) VisitInvoice(record InvoiceRecord) error {
	return v.encode(jsonRecord{Kind: "invoice", Number: record.Number})
}

func (v JSONExporter) VisitReceipt(record ReceiptRecord) error {
	return v.encode(jsonRecord{Kind: "receipt", Number: record.Number})
}

func (v JSONExporter) VisitRefund(record RefundRecord) error {
	return v.encode(jsonRecord{Kind: "refund", Number: record.Number})
}

func (v JSONExporter) encode(record jsonRecord) error {
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(record)
	if err != nil {
		return errors.Wrapf(err, "marshal %s %s", record.Kind, record.Number)
	}
	_, err = output(v.Out).Write(append(data, '\n'))
	return err
}
