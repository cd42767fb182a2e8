package bigint

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sp301415/exact/num"
)

const (
	// Base is the radix of a limb.
	Base = 100
	// LimbDigits is the number of decimal digits in a limb.
	LimbDigits = 2
)

// Sign is the sign of an Int.
type Sign int8

const (
	// Negative is the sign of negative integers.
	Negative Sign = -1
	// Zero is the sign of zero.
	Zero Sign = 0
	// Positive is the sign of positive integers.
	Positive Sign = 1
)

// Int is an arbitrary-precision signed integer.
type Int struct {
	sign  Sign
	limbs []int
}

// New creates a new Int from x.
func New(x int64) Int {
	switch {
	case x > 0:
		return newInt(Positive, limbsFromUint64(uint64(x)))
	case x < 0:
		return newInt(Negative, limbsFromUint64(-uint64(x)))
	}
	return Int{}
}

// NewFromUint64 creates a new Int from x.
func NewFromUint64(x uint64) Int {
	return newInt(Positive, limbsFromUint64(x))
}

// newInt creates an Int with sign s and magnitude limbs,
// trimming limbs first. A zero magnitude always yields the zero Int.
func newInt(s Sign, limbs []int) Int {
	limbs = trim(limbs)
	if len(limbs) == 0 || s == Zero {
		return Int{}
	}
	return Int{sign: s, limbs: limbs}
}

func limbsFromUint64(x uint64) []int {
	limbs := make([]int, 0, 10)
	for x > 0 {
		limbs = append(limbs, int(x%Base))
		x /= Base
	}
	return limbs
}

// Parse parses a decimal string of the form [+-]?[0-9]+ into an Int.
// Leading zeros are accepted.
func Parse(s string) (Int, error) {
	if len(s) == 0 {
		return Int{}, errors.Wrap(ErrMalformedInput, "empty string")
	}

	pos := 0
	sign := Positive
	switch s[0] {
	case '-':
		sign = Negative
		pos++
	case '+':
		pos++
	}

	if pos == len(s) {
		return Int{}, errors.Wrapf(ErrMalformedInput, "no digits after sign %q", s[0])
	}

	for i := pos; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Int{}, errors.Wrapf(ErrMalformedInput, "invalid character %q at position %d", s[i], i)
		}
	}

	digits := s[pos:]
	limbs := make([]int, (len(digits)+LimbDigits-1)/LimbDigits)
	for k, hi := 0, len(digits); hi > 0; k, hi = k+1, hi-LimbDigits {
		for j := max(hi-LimbDigits, 0); j < hi; j++ {
			limbs[k] = limbs[k]*10 + int(digits[j]-'0')
		}
	}

	return newInt(sign, limbs), nil
}

// String returns the decimal representation of x.
// The most significant limb is printed without padding,
// and every other limb is zero-padded to LimbDigits digits.
func (x Int) String() string {
	if x.sign == Zero {
		return "0"
	}

	var sb strings.Builder
	sb.Grow(len(x.limbs)*LimbDigits + 1)

	if x.sign == Negative {
		sb.WriteByte('-')
	}

	sb.WriteString(strconv.Itoa(x.limbs[len(x.limbs)-1]))
	for i := len(x.limbs) - 2; i >= 0; i-- {
		l := x.limbs[i]
		for p := num.Pow10(LimbDigits - 1); p > 0; p /= 10 {
			sb.WriteByte(byte('0' + l/p))
			l %= p
		}
	}

	return sb.String()
}

// Int64 returns x as an int64.
// The second return value is false if x does not fit.
func (x Int) Int64() (int64, bool) {
	var u uint64
	for i := len(x.limbs) - 1; i >= 0; i-- {
		if u > (math.MaxUint64-uint64(x.limbs[i]))/Base {
			return 0, false
		}
		u = u*Base + uint64(x.limbs[i])
	}

	switch x.sign {
	case Positive:
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	case Negative:
		if u > 1<<63 {
			return 0, false
		}
		return int64(-u), true
	}
	return 0, true
}

// Sign returns the sign of x.
func (x Int) Sign() Sign {
	return x.sign
}

// IsZero returns true if x is zero.
func (x Int) IsZero() bool {
	return x.sign == Zero
}

// Len returns the number of limbs of x. Zero has no limbs.
func (x Int) Len() int {
	return len(x.limbs)
}

// Limb returns the i-th limb of x, counted from the least significant one.
// Panics if i is out of range.
func (x Int) Limb(i int) int {
	return x.limbs[i]
}

// Clone returns a copy of x with its own limbs.
func (x Int) Clone() Int {
	return Int{sign: x.sign, limbs: cloneLimbs(x.limbs)}
}

func cloneLimbs(limbs []int) []int {
	if len(limbs) == 0 {
		return nil
	}
	out := make([]int, len(limbs))
	copy(out, limbs)
	return out
}

// normalize propagates carries and borrows of limbs,
// growing guard limbs at the top as needed, and trims the result.
// limbs may hold values outside [0, Base),
// but the value they represent must be non-negative.
// normalize works in-place and returns the (possibly reallocated) slice.
func normalize(limbs []int) []int {
	carry := 0
	for i := 0; i < len(limbs); i++ {
		v := limbs[i] + carry
		carry = v / Base
		v %= Base
		if v < 0 {
			v += Base
			carry--
		}
		limbs[i] = v
	}

	for carry > 0 {
		limbs = append(limbs, carry%Base)
		carry /= Base
	}

	if carry < 0 {
		panic("normalize: negative magnitude")
	}

	return trim(limbs)
}

// trim removes zero limbs above the most significant non-zero limb.
func trim(limbs []int) []int {
	n := len(limbs)
	for n > 0 && limbs[n-1] == 0 {
		n--
	}
	if n == 0 {
		return nil
	}
	return limbs[:n]
}
