package strategy

import "github.com/pkg/errors"

// Method is the key a PaymentStrategy is registered under.
type Method string

const (
	CreditCard Method = "creditcard"
	PayPal     Method = "paypal"
	Crypto     Method = "crypto"
)

var allMethods = map[string]Method{
	CreditCard.String(): CreditCard,
	PayPal.String():     PayPal,
	Crypto.String():     Crypto,
}

// ParseMethod returns the Method named by value. Matching is exact.
func ParseMethod(value string) (Method, error) {
	if method, ok := allMethods[value]; ok {
		return method, nil
	}
	return "", errors.Wrapf(ErrNotFound, "payment method %q", value)
}

func (m Method) String() string {
	return string(m)
}
