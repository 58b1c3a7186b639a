package strategy

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
)

// PaymentStrategy is an interchangeable payment algorithm.
type PaymentStrategy interface {
	// ProcessPayment charges amount.
	ProcessPayment(ctx context.Context, amount decimal.Decimal) error
}

// The PaymentStrategyFunc type is an adapter to allow the use of ordinary functions as PaymentStrategy.
// If f is a function with the appropriate signature, PaymentStrategyFunc(f) is a PaymentStrategy that calls f.
type PaymentStrategyFunc func(ctx context.Context, amount decimal.Decimal) error

// ProcessPayment calls f(ctx, amount).
func (f PaymentStrategyFunc) ProcessPayment(ctx context.Context, amount decimal.Decimal) error {
	return f(ctx, amount)
}

var (
	_ PaymentStrategy = CreditCardStrategy{}
	_ PaymentStrategy = PayPalStrategy{}
	_ PaymentStrategy = CryptoStrategy{}
)

// CreditCardStrategy pays by credit card.
type CreditCardStrategy struct {
	// Out defaults to os.Stdout.
	Out io.Writer
}

func (s CreditCardStrategy) ProcessPayment(_ context.Context, amount decimal.Decimal) error {
	_, err := fmt.Fprintf(output(s.Out), "Processing credit card payment of %s\n", FormatCurrency(amount))
	return err
}

// PayPalStrategy pays through PayPal.
type PayPalStrategy struct {
	Out io.Writer
}

func (s PayPalStrategy) ProcessPayment(_ context.Context, amount decimal.Decimal) error {
	_, err := fmt.Fprintf(output(s.Out), "Processing PayPal payment of %s\n", FormatCurrency(amount))
	return err
}

// CryptoStrategy pays with cryptocurrency.
type CryptoStrategy struct {
	Out io.Writer
}

func (s CryptoStrategy) ProcessPayment(_ context.Context, amount decimal.Decimal) error {
	_, err := fmt.Fprintf(output(s.Out), "Processing cryptocurrency payment of %s\n", FormatCurrency(amount))
	return err
}

func output(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
