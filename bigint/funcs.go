package bigint

import "github.com/pkg/errors"

// GCD returns the greatest common divisor of |a| and |b|.
// The result is always non-negative, and GCD(0, 0) = 0.
func GCD(a, b Int) Int {
	a, b = a.Abs(), b.Abs()
	for a.sign != Zero {
		_, r, _ := b.QuoRem(a)
		a, b = r, a
	}
	return b
}

// Pow returns x^exp, computed by repeated squaring.
// Pow(x, 0) is 1 for every x, including zero.
// Returns an error if exp is negative.
func Pow(x Int, exp int) (Int, error) {
	if exp < 0 {
		return Int{}, errors.Wrapf(ErrNegativeExponent, "exponent %d", exp)
	}

	r := New(1)
	b := x.Clone()
	for exp > 0 {
		if exp&1 == 1 {
			r = r.Mul(b)
		}
		exp >>= 1
		if exp > 0 {
			b = b.Mul(b)
		}
	}
	return r, nil
}
