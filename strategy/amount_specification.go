package strategy

import (
	"context"

	"github.com/shopspring/decimal"
)

// AmountSpecification decides whether an amount may be charged.
type AmountSpecification interface {
	IsSatisfiedBy(ctx context.Context, amount decimal.Decimal) bool
}

// The AmountSpecificationFunc type is an adapter to allow the use of ordinary functions as AmountSpecification.
type AmountSpecificationFunc func(ctx context.Context, amount decimal.Decimal) bool

// IsSatisfiedBy calls f(ctx, amount).
func (f AmountSpecificationFunc) IsSatisfiedBy(ctx context.Context, amount decimal.Decimal) bool {
	return f(ctx, amount)
}

// Positive is satisfied by amounts greater than zero.
func Positive() AmountSpecification {
	return AmountSpecificationFunc(func(_ context.Context, amount decimal.Decimal) bool {
		return amount.IsPositive()
	})
}

// NonNegative is satisfied by zero and positive amounts.
func NonNegative() AmountSpecification {
	return AmountSpecificationFunc(func(_ context.Context, amount decimal.Decimal) bool {
		return !amount.IsNegative()
	})
}

// AtMost is satisfied by amounts less than or equal to limit.
func AtMost(limit decimal.Decimal) AmountSpecification {
	return AmountSpecificationFunc(func(_ context.Context, amount decimal.Decimal) bool {
		return amount.LessThanOrEqual(limit)
	})
}

// And is satisfied when every spec is. And() is always satisfied.
func And(specs ...AmountSpecification) AmountSpecification {
	return AmountSpecificationFunc(func(ctx context.Context, amount decimal.Decimal) bool {
		for _, spec := range specs {
			if !spec.IsSatisfiedBy(ctx, amount) {
				return false
			}
		}
		return true
	})
}

// Or is satisfied when any spec is. Or() is never satisfied.
func Or(specs ...AmountSpecification) AmountSpecification {
	return AmountSpecificationFunc(func(ctx context.Context, amount decimal.Decimal) bool {
		for _, spec := range specs {
			if spec.IsSatisfiedBy(ctx, amount) {
				return true
			}
		}
		return false
	})
}

// Not inverts spec.
func Not(spec AmountSpecification) AmountSpecification {
	return AmountSpecificationFunc(func(ctx context.Context, amount decimal.Decimal) bool {
		return !spec.IsSatisfiedBy(ctx, amount)
	})
}
