package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Format renders price with locale grouping behind a currency glyph, e.g. "₹60,000".
// Whole amounts carry no decimals; fractional amounts are rounded to two places.
func Format(symbol, locale string, price decimal.Decimal) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	p := message.NewPrinter(tag)

	sign := ""
	if price.IsNegative() {
		sign = "-"
		price = price.Neg()
	}
	price = price.Round(2)
	if price.IsInteger() {
		return sign + symbol + p.Sprintf("%d", price.IntPart())
	}
	return sign + symbol + p.Sprintf("%.2f", price.InexactFloat64())
}

// Plain renders the amount with an ISO code instead of a glyph, for outputs limited
// to Latin-1 such as the core PDF fonts.
func Plain(code, locale string, price decimal.Decimal) string {
	return Format(code+" ", locale, price)
}
