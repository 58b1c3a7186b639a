package strategy

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// CheckoutService charges orders with the PaymentStrategy chosen at construction.
type CheckoutService struct {
	strategy PaymentStrategy
	options  *option
}

func NewCheckoutService(strategy PaymentStrategy, opts ...Option) *CheckoutService {
	o := newOption(opts...)
	if strategy != nil {
		strategy = Chain(strategy, o.Decorators...)
	}
	return &CheckoutService{strategy: strategy, options: o}
}

// Checkout processes amount with the held strategy. Without a Guard every amount,
// including zero and negative ones, is passed through.
func (s *CheckoutService) Checkout(ctx context.Context, amount decimal.Decimal) error {
	if s.strategy == nil {
		return ErrStrategyNil
	}
	if s.options.Guard != nil && !s.options.Guard.IsSatisfiedBy(ctx, amount) {
		return errors.Wrapf(ErrAmountRejected, "amount %s", amount)
	}
	return s.strategy.ProcessPayment(ctx, amount)
}
