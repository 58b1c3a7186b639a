package strategy

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Decorator wraps a PaymentStrategy, running something before or after it.
type Decorator interface {
	Decorate(strategy PaymentStrategy) PaymentStrategy
}

// The DecoratorFunc type is an adapter to allow the use of ordinary functions as Decorator.
type DecoratorFunc func(strategy PaymentStrategy) PaymentStrategy

// Decorate calls f(strategy).
func (f DecoratorFunc) Decorate(strategy PaymentStrategy) PaymentStrategy {
	return f(strategy)
}

// Chain decorates strategy with all decorators. The first decorator is the outermost.
func Chain(strategy PaymentStrategy, decorators ...Decorator) PaymentStrategy {
	for i := len(decorators) - 1; i >= 0; i-- {
		strategy = decorators[i].Decorate(strategy)
	}
	return strategy
}

// Logging logs every payment processed by the decorated strategy.
func Logging(logger *zap.Logger) Decorator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return DecoratorFunc(func(strategy PaymentStrategy) PaymentStrategy {
		return PaymentStrategyFunc(func(ctx context.Context, amount decimal.Decimal) error {
			logger.Debug("processing payment", zap.Stringer("amount", amount))
			if err := strategy.ProcessPayment(ctx, amount); err != nil {
				logger.Error("payment failed", zap.Stringer("amount", amount), zap.Error(err))
				return err
			}
			logger.Debug("payment processed", zap.Stringer("amount", amount))
			return nil
		})
	})
}
