package strategy

import (
	"io"

	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Registry maps a Method to the PaymentStrategy that serves it.
type Registry struct {
	strategies map[Method]PaymentStrategy
}

func NewRegistry() *Registry {
	return &Registry{strategies: make(map[Method]PaymentStrategy)}
}

// DefaultRegistry returns a Registry holding the credit card, PayPal and crypto strategies,
// all writing to w.
func DefaultRegistry(w io.Writer) *Registry {
	r := NewRegistry()
	_ = r.Register(CreditCard, CreditCardStrategy{Out: w})
	_ = r.Register(PayPal, PayPalStrategy{Out: w})
	_ = r.Register(Crypto, CryptoStrategy{Out: w})
	return r
}

// Register binds strategy to method.
func (r *Registry) Register(method Method, strategy PaymentStrategy) error {
	if strategy == nil {
		return ErrStrategyNil
	}
	if _, ok := r.strategies[method]; ok {
		return errors.Wrapf(ErrRegistered, "payment method %q", method)
	}
	r.strategies[method] = strategy
	return nil
}

// Resolve returns the PaymentStrategy registered for method, or ErrNotFound.
func (r *Registry) Resolve(method Method) (PaymentStrategy, error) {
	strategy, ok := r.strategies[method]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "payment method %q", method)
	}
	return strategy, nil
}

// Methods returns the registered methods in sorted order.
func (r *Registry) Methods() []Method {
	methods := maps.Keys(r.strategies)
	slices.Sort(methods)
	return methods
}
