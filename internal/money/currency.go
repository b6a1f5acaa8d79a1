package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency is the only currency the system bills in.
const Currency = "AED"

// FormatAED renders an amount as an AED currency string with a 3-digit
// group separator and exactly two fractional digits, e.g. 1234.5 ->
// "AED 1,234.50". The format is spelled out here instead of going through
// a locale database so rendered documents are stable across environments.
func FormatAED(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	neg := strings.HasPrefix(fixed, "-")
	if neg {
		fixed = fixed[1:]
	}

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	b.WriteString(Currency)
	b.WriteByte(' ')
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(groupThousands(intPart))
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}

// groupThousands inserts a comma every 3 digits from the right
func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
