package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBRL formats an exact decimal amount using the pt-BR currency
// convention: "R$ 1.234,50". Amounts are rounded to two fraction digits
// with decimal arithmetic, never through binary floats.
func FormatBRL(amount decimal.Decimal) string {
	s := amount.StringFixed(2)

	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString("R$ ")

	// Thousands separator every three digits, pt-BR style.
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}
