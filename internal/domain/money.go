package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Cents is a price in integer minor currency units. All arithmetic on prices
// happens on this type; conversion to major units is explicit and only done at
// API boundaries.
type Cents int64

// Major returns the price in major currency units (e.g. 5000 -> 50.00).
func (c Cents) Major() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// Float returns the major-unit value for JSON payloads.
func (c Cents) Float() float64 {
	return c.Major().InexactFloat64()
}

// CentsFromMajor converts a major-unit amount into Cents, rounding to the
// nearest minor unit.
func CentsFromMajor(d decimal.Decimal) Cents {
	return Cents(d.Shift(2).Round(0).IntPart())
}

// Formatted renders the price as a pt-BR currency string, e.g. "R$1.234,56".
func (c Cents) Formatted() string {
	d := c.Major()
	neg := d.IsNegative()
	s := d.Abs().StringFixed(2)

	parts := strings.SplitN(s, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString("R$")
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
