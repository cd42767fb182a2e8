package rational

import (
	"github.com/pkg/errors"
	"github.com/sp301415/exact/bigint"
)

// Neg returns -x.
func (x Rat) Neg() Rat {
	num, den := x.parts()
	return Rat{num: num.Neg(), den: den.Clone()}
}

// NegAssign assigns x = -x.
func (x *Rat) NegAssign() {
	*x = x.Neg()
}

// Abs returns |x|.
func (x Rat) Abs() Rat {
	num, den := x.parts()
	return Rat{num: num.Abs(), den: den.Clone()}
}

// Add returns x + y.
func (x Rat) Add(y Rat) Rat {
	xn, xd := x.parts()
	yn, yd := y.parts()
	return newRat(xn.Mul(yd).Add(yn.Mul(xd)), xd.Mul(yd))
}

// AddAssign assigns x = x + y.
func (x *Rat) AddAssign(y Rat) {
	*x = x.Add(y)
}

// Sub returns x - y.
func (x Rat) Sub(y Rat) Rat {
	xn, xd := x.parts()
	yn, yd := y.parts()
	return newRat(xn.Mul(yd).Sub(yn.Mul(xd)), xd.Mul(yd))
}

// SubAssign assigns x = x - y.
func (x *Rat) SubAssign(y Rat) {
	*x = x.Sub(y)
}

// Mul returns x * y.
func (x Rat) Mul(y Rat) Rat {
	xn, xd := x.parts()
	yn, yd := y.parts()
	return newRat(xn.Mul(yn), xd.Mul(yd))
}

// MulAssign assigns x = x * y.
func (x *Rat) MulAssign(y Rat) {
	*x = x.Mul(y)
}

// Quo returns x / y.
// Returns an error wrapping [bigint.ErrDivisionByZero] if y is zero.
func (x Rat) Quo(y Rat) (Rat, error) {
	if y.IsZero() {
		return Rat{}, errors.Wrapf(bigint.ErrDivisionByZero, "dividing %v", x)
	}

	xn, xd := x.parts()
	yn, yd := y.parts()
	return newRat(xn.Mul(yd), xd.Mul(yn)), nil
}

// QuoAssign assigns x = x / y.
// If y is zero, x is left unchanged and an error is returned.
func (x *Rat) QuoAssign(y Rat) error {
	q, err := x.Quo(y)
	if err != nil {
		return err
	}
	*x = q
	return nil
}

// Inv returns 1 / x.
// Returns an error wrapping [bigint.ErrDivisionByZero] if x is zero.
func (x Rat) Inv() (Rat, error) {
	return NewFromInt(bigint.New(1)).Quo(x)
}
