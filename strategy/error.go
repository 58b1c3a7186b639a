package strategy

import "errors"

var (
	// ErrNotFound payment method is not registered
	ErrNotFound = errors.New("payment method not found")

	// ErrRegistered payment method already has a PaymentStrategy
	ErrRegistered = errors.New("payment method registered")

	// ErrStrategyNil PaymentStrategy is nil
	ErrStrategyNil = errors.New("payment strategy is nil")

	// ErrAmountRejected amount is not satisfied by the checkout guard
	ErrAmountRejected = errors.New("amount rejected")
)
