package strategy

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var currencyPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency formats amount as US dollars, e.g. 1234.5 -> $1,234.50 and -5 -> -$5.00.
func FormatCurrency(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}
	return sign + "$" + currencyPrinter.Sprintf("%v", number.Decimal(rounded.InexactFloat64(), number.Scale(2)))
}
