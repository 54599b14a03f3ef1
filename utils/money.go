package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBRL renders an amount the way the clients show prices,
// e.g. 7500 -> "R$ 7.500,00".
func FormatBRL(amount float64) string {
	d := decimal.NewFromFloat(amount)
	fixed := d.StringFixed(2) // "-7500.00"

	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	parts := strings.SplitN(fixed, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}

	out := "R$ " + b.String() + "," + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
