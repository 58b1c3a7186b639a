package financial

type InvoiceVisitor interface {
	VisitInvoice(record InvoiceRecord) error
}

type ReceiptVisitor interface {
	VisitReceipt(record ReceiptRecord) error
}

type RefundVisitor interface {
	VisitRefund(record RefundRecord) error
}

// Visitor extends all record visitor interfaces.
type Visitor interface {
	InvoiceVisitor
	ReceiptVisitor
	RefundVisitor
}

// Export visits records in order and stops at the first error.
func Export(records []Record, visitor Visitor) error {
	for _, record := range records {
		if err := record.Accept(visitor); err != nil {
			return err
		}
	}
	return nil
}
