package bigint

import "fmt"

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It is intended for constant declarations, for example:
//
//	var two128 = bigint.MustParse("340282366920938463463374607431768211456")
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return x
}

// MustQuo is like [Int.Quo] but panics if y is zero.
func (x Int) MustQuo(y Int) Int {
	q, err := x.Quo(y)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", y, err))
	}
	return q
}

// MustRem is like [Int.Rem] but panics if y is zero.
func (x Int) MustRem(y Int) Int {
	r, err := x.Rem(y)
	if err != nil {
		panic(fmt.Sprintf("MustRem(%v) failed: %v", y, err))
	}
	return r
}

// MustPow is like [Pow] but panics if exp is negative.
func MustPow(x Int, exp int) Int {
	r, err := Pow(x, exp)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%v, %v) failed: %v", x, exp, err))
	}
	return r
}
