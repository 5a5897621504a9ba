// Package money formats and sums won amounts held as decimals.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Format renders d with thousands separators, for example "3,500,000".
// Fractional digits are kept as stored.
func Format(d decimal.Decimal) string {
	s := d.Abs().String()
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}
	lead := len(intPart) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(intPart[:lead])
	for i := lead; i < len(intPart); i += 3 {
		b.WriteByte(',')
		b.WriteString(intPart[i : i+3])
	}
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

// Won renders d followed by the currency suffix.
func Won(d decimal.Decimal) string { return Format(d) + "원" }

// Sum adds amounts exactly.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// Int is shorthand for a whole-won amount.
func Int(n int64) decimal.Decimal { return decimal.NewFromInt(n) }
