// Package rational implements exact fractions of two bigint.Int values,
// always kept in lowest terms with a positive denominator.
package rational

import (
	"github.com/pkg/errors"
	"github.com/sp301415/exact/bigint"
)

// Rat is an exact rational number num/den.
//
// A Rat is always normalized:
// gcd(|num|, den) = 1 and den > 0, and zero is 0/1.
// The zero value Rat{} is treated as 0/1 by every method.
type Rat struct {
	num bigint.Int
	den bigint.Int
}

var one = bigint.New(1)

// New creates a new Rat num/den in lowest terms.
// Returns an error wrapping [bigint.ErrDivisionByZero] if den is zero.
func New(num, den bigint.Int) (Rat, error) {
	if den.IsZero() {
		return Rat{}, errors.Wrapf(bigint.ErrDivisionByZero, "rational %v/0", num)
	}
	return newRat(num, den), nil
}

// NewFromInt creates a new Rat n/1.
func NewFromInt(n bigint.Int) Rat {
	return Rat{num: n.Clone(), den: bigint.New(1)}
}

// NewFromInt64 creates a new Rat num/den in lowest terms.
// Returns an error wrapping [bigint.ErrDivisionByZero] if den is zero.
func NewFromInt64(num, den int64) (Rat, error) {
	return New(bigint.New(num), bigint.New(den))
}

// newRat normalizes num/den. den must be non-zero.
func newRat(num, den bigint.Int) Rat {
	if num.IsZero() {
		return Rat{num: bigint.Int{}, den: bigint.New(1)}
	}

	g := bigint.GCD(num, den)
	num, den = num.MustQuo(g), den.MustQuo(g)
	if den.Sign() == bigint.Negative {
		num, den = num.Neg(), den.Neg()
	}
	return Rat{num: num, den: den}
}

// parts returns the numerator and denominator of x,
// mapping the zero value to 0/1.
func (x Rat) parts() (num, den bigint.Int) {
	if x.den.IsZero() {
		return bigint.Int{}, one
	}
	return x.num, x.den
}

// Num returns the numerator of x in lowest terms.
// Its sign is the sign of x.
func (x Rat) Num() bigint.Int {
	num, _ := x.parts()
	return num.Clone()
}

// Denom returns the denominator of x in lowest terms.
// It is always positive.
func (x Rat) Denom() bigint.Int {
	_, den := x.parts()
	return den.Clone()
}

// Sign returns the sign of x.
func (x Rat) Sign() bigint.Sign {
	return x.num.Sign()
}

// IsZero returns true if x is zero.
func (x Rat) IsZero() bool {
	return x.num.IsZero()
}

// IsInt returns true if the denominator of x is 1.
func (x Rat) IsInt() bool {
	_, den := x.parts()
	return den.Equal(one)
}

// Clone returns a copy of x.
func (x Rat) Clone() Rat {
	num, den := x.parts()
	return Rat{num: num.Clone(), den: den.Clone()}
}

// String returns "num" if the denominator of x is 1, and "num/den" otherwise.
func (x Rat) String() string {
	num, den := x.parts()
	if den.Equal(one) {
		return num.String()
	}
	return num.String() + "/" + den.String()
}
