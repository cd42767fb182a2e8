package bigint

import "github.com/pkg/errors"

// QuoRem returns the truncated quotient x / y and the remainder x % y,
// such that x = q * y + r and r has the sign of x.
// Returns an error if y is zero.
func (x Int) QuoRem(y Int) (q, r Int, err error) {
	if y.sign == Zero {
		return Int{}, Int{}, errors.Wrapf(ErrDivisionByZero, "dividing %v", x)
	}

	switch {
	case x.sign == Zero:
		return Int{}, Int{}, nil
	case cmpAbs(x.limbs, y.limbs) < 0:
		return Int{}, x.Clone(), nil
	case x.Equal(y):
		return New(1), Int{}, nil
	}

	qLimbs, rLimbs := quoRemAbs(x.limbs, y.limbs)
	return newInt(x.sign*y.sign, qLimbs), newInt(x.sign, rLimbs), nil
}

// Quo returns the truncated quotient x / y.
// Returns an error if y is zero.
func (x Int) Quo(y Int) (Int, error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// QuoAssign assigns x = x / y.
// If y is zero, x is left unchanged and an error is returned.
func (x *Int) QuoAssign(y Int) error {
	q, err := x.Quo(y)
	if err != nil {
		return err
	}
	*x = q
	return nil
}

// Rem returns the remainder x % y, which has the sign of x.
// Returns an error if y is zero.
func (x Int) Rem(y Int) (Int, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// RemAssign assigns x = x % y.
// If y is zero, x is left unchanged and an error is returned.
func (x *Int) RemAssign(y Int) error {
	r, err := x.Rem(y)
	if err != nil {
		return err
	}
	*x = r
	return nil
}

// quoRemAbs runs base-Base long division on magnitudes a >= b > 0.
func quoRemAbs(a, b []int) (q, r []int) {
	q = make([]int, len(a))
	for i := len(a) - 1; i >= 0; i-- {
		r = shiftAddLimb(r, a[i])
		if cmpAbs(r, b) < 0 {
			continue
		}

		// r < Base * b holds here, so the quotient limb is in [1, Base).
		// Find the largest d with d * b <= r.
		lo, hi := 1, Base-1
		for lo < hi {
			mid := (lo + hi + 1) / 2
			if cmpAbs(mulLimb(b, mid), r) <= 0 {
				lo = mid
			} else {
				hi = mid - 1
			}
		}

		q[i] = lo
		r = subAbs(r, mulLimb(b, lo))
	}
	return trim(q), r
}

// shiftAddLimb returns a * Base + l.
func shiftAddLimb(a []int, l int) []int {
	out := make([]int, len(a)+1)
	out[0] = l
	copy(out[1:], a)
	return trim(out)
}

// mulLimb returns a * d for a single limb d.
func mulLimb(a []int, d int) []int {
	out := make([]int, len(a), len(a)+1)
	for i := range a {
		out[i] = a[i] * d
	}
	return normalize(out)
}
