// Package currency renders money amounts for the Indian business context the
// system is configured for: rupee symbol with en-IN digit grouping.
package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("en-IN"))

// Format renders an amount as Indian Rupees, e.g. ₹1,23,456.78.
func Format(amount float64) string {
	return printer.Sprintf("₹%v", number.Decimal(amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// FormatNumber renders a plain number with en-IN grouping.
func FormatNumber(n float64) string {
	return printer.Sprintf("%v", number.Decimal(n, number.MaxFractionDigits(2)))
}
