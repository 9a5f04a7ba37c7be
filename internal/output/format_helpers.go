package output

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	oneMillion  = decimal.NewFromInt(1_000_000)
	oneBillion  = decimal.NewFromInt(1_000_000_000)
	oneTrillion = decimal.NewFromInt(1_000_000_000_000)
)

// FormatCurrency formats a decimal as USD currency with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string { return "$" + amount.StringFixed(2) }

// FormatPercentage formats a fractional rate as a percentage with 2 decimals.
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

// FormatCompactCurrency renders large magnitudes with an M/B/T suffix and
// everything else as thousands-separated dollars. Display-only: computation
// and export always use the underlying decimal values.
func FormatCompactCurrency(amount decimal.Decimal) string {
	switch {
	case amount.GreaterThanOrEqual(oneTrillion):
		return "$" + amount.Div(oneTrillion).StringFixed(2) + "T"
	case amount.GreaterThanOrEqual(oneBillion):
		return "$" + amount.Div(oneBillion).StringFixed(2) + "B"
	case amount.GreaterThanOrEqual(oneMillion):
		return "$" + amount.Div(oneMillion).StringFixed(2) + "M"
	default:
		return "$" + groupThousands(amount.StringFixed(2))
	}
}

// groupThousands inserts comma separators into a fixed-point number string.
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, fracPart = s[:dot], s[dot:]
	}

	if len(intPart) <= 3 {
		return sign + intPart + fracPart
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return sign + b.String() + fracPart
}
