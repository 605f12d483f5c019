package output

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatCurrency renders amount in dollars with thousands separators and cents
func FormatCurrency(amount decimal.Decimal) string {
	return FormatMoney("$", amount)
}

// FormatMoney renders amount with symbol, thousands separators and two decimals.
// Negative amounts put the sign before the symbol.
func FormatMoney(symbol string, amount decimal.Decimal) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}
	return sign + symbol + humanize.FormatFloat("#,###.##", rounded.InexactFloat64())
}

// FormatWholeMoney renders amount rounded to whole units, for compact tables and charts
func FormatWholeMoney(symbol string, amount decimal.Decimal) string {
	rounded := amount.Round(0)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}
	return sign + symbol + humanize.Comma(rounded.IntPart())
}

// FormatPercentage renders a percent value such as 6.5 as "6.50%"
func FormatPercentage(pct decimal.Decimal) string {
	return pct.StringFixed(2) + "%"
}

// FormatRatio renders a fraction such as 0.8 as "80.0%"
func FormatRatio(ratio decimal.Decimal) string {
	return ratio.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}

// Title upper-cases the first letter of each word of an identifier like "on-track"
func Title(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool { return r == '_' || r == '-' || r == ' ' })
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
