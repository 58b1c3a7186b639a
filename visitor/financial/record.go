package financial

// Record is a financial record that can be exported by a Visitor.
type Record interface {
	// Accept calls the visitor method matching the record's own type.
	Accept(visitor Visitor) error
}

var (
	_ Record = InvoiceRecord{}
	_ Record = ReceiptRecord{}
	_ Record = RefundRecord{}
)

type InvoiceRecord struct {
	Number string
}

func (r InvoiceRecord) Accept(visitor Visitor) error {
	return visitor.VisitInvoice(r)
}

type ReceiptRecord struct {
	Number string
}

func (r ReceiptRecord) Accept(visitor Visitor) error {
	return visitor.VisitReceipt(r)
}

type RefundRecord struct {
	Number string
}

func (r RefundRecord) Accept(visitor Visitor) error {
	return visitor.VisitRefund(r)
}
