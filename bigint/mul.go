package bigint

import (
	"github.com/sp301415/exact/fft"
	"github.com/sp301415/exact/num"
)

// defaultMultiplier is used by Int.Mul.
var defaultMultiplier = NewMultiplier(DefaultParametersLiteral.Compile())

// Multiplier multiplies Ints.
// It holds no buffers, so it is safe for concurrent use.
type Multiplier struct {
	Parameters Parameters
}

// NewMultiplier creates a new Multiplier.
func NewMultiplier(params Parameters) *Multiplier {
	return &Multiplier{
		Parameters: params,
	}
}

// Mul returns x * y.
func (m *Multiplier) Mul(x, y Int) Int {
	if x.sign == Zero || y.sign == Zero {
		return Int{}
	}

	return newInt(x.sign*y.sign, normalize(m.convolve(x.limbs, y.limbs)))
}

// convolve returns the raw, uncarried product digits of a and b.
func (m *Multiplier) convolve(a, b []int) []int {
	N := num.NextPowerOfTwo(len(a) + len(b))

	switch {
	case min(len(a), len(b)) <= m.Parameters.schoolbookThreshold:
		return convolveSchoolbook(a, b)
	case N >= m.Parameters.nttThreshold:
		return fft.NewNTTConvolver(N, m.Parameters.nttLogModulus).Convolve(a, b)
	}
	return fft.NewTransformer(N).Convolve(a, b)
}

// convolveSchoolbook computes the convolution of a and b directly.
func convolveSchoolbook(a, b []int) []int {
	c := make([]int, len(a)+len(b)-1, len(a)+len(b))
	for i := range a {
		if a[i] == 0 {
			continue
		}
		for j := range b {
			c[i+j] += a[i] * b[j]
		}
	}
	return c
}

// Mul returns x * y using the default Multiplier.
func (x Int) Mul(y Int) Int {
	return defaultMultiplier.Mul(x, y)
}

// MulAssign assigns x = x * y.
func (x *Int) MulAssign(y Int) {
	*x = x.Mul(y)
}
