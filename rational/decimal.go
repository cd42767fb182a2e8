package rational

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sp301415/exact/bigint"
)

// FloatPrecision is the number of fractional digits
// rendered before converting a Rat to float64.
const FloatPrecision = 30

// ErrOverflow is returned when a Rat is out of the range of float64.
var ErrOverflow = errors.New("float64 overflow")

var ten = bigint.New(10)

// AsDecimal returns the decimal expansion of x,
// truncated toward zero after precision fractional digits.
// If precision <= 0, only the integer part is returned.
//
// The result has a leading '-' only if x is negative
// and at least one rendered digit is non-zero,
// so -1/3 with precision 0 renders as "0".
func (x Rat) AsDecimal(precision int) string {
	num, den := x.parts()

	q, rem, _ := num.Abs().QuoRem(den)
	nonZero := !q.IsZero()

	var b strings.Builder
	b.WriteString(q.String())

	if precision > 0 {
		b.WriteByte('.')
		for i := 0; i < precision; i++ {
			// rem < den, so every digit is in [0, 10).
			d, r, _ := rem.Mul(ten).QuoRem(den)
			b.WriteString(d.String())
			nonZero = nonZero || !d.IsZero()
			rem = r
		}
	}

	if num.Sign() == bigint.Negative && nonZero {
		return "-" + b.String()
	}
	return b.String()
}

// Decimal converts x to a [decimal.Decimal],
// truncated toward zero after precision fractional digits.
func (x Rat) Decimal(precision int) decimal.Decimal {
	d, err := decimal.NewFromString(x.AsDecimal(precision))
	if err != nil {
		panic(err)
	}
	return d
}

// Float64 returns the float64 nearest to the decimal expansion of x
// with FloatPrecision fractional digits.
// Returns an error wrapping ErrOverflow if x is out of the range of float64.
func (x Rat) Float64() (float64, error) {
	f, _ := x.Decimal(FloatPrecision).Float64()
	if math.IsInf(f, 0) {
		return f, errors.Wrapf(ErrOverflow, "converting %v", x)
	}
	return f, nil
}
