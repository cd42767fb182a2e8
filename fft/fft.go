// Package fft implements convolution of limb vectors,
// either with a floating-point Fast Fourier Transform
// or with an exact Number Theoretic Transform.
package fft

import (
	"math"

	"github.com/sp301415/exact/num"
)

// Transformer computes the complex FFT of a fixed power-of-two degree.
//
// Transformer is read-only after creation, so it is safe for concurrent use.
type Transformer struct {
	degree int

	// tw[i] = e^(2πi * i/N), twInv[i] = e^(-2πi * i/N).
	tw        []complex128
	twInv     []complex128
	degreeInv float64
}

// NewTransformer creates a new Transformer of degree N.
// Panics if N is not a power of two.
func NewTransformer(N int) *Transformer {
	if !num.IsPowerOfTwo(N) {
		panic("degree must be a power of two")
	}

	tw := make([]complex128, N/2)
	twInv := make([]complex128, N/2)
	for i := 0; i < N/2; i++ {
		theta := 2 * math.Pi * float64(i) / float64(N)
		sin, cos := math.Sincos(theta)
		tw[i] = complex(cos, sin)
		twInv[i] = complex(cos, -sin)
	}

	return &Transformer{
		degree: N,

		tw:        tw,
		twInv:     twInv,
		degreeInv: 1 / float64(N),
	}
}

// Degree returns the degree of the Transformer.
func (t *Transformer) Degree() int {
	return t.degree
}

// FFTInPlace computes the forward FFT of coeffs in-place.
func (t *Transformer) FFTInPlace(coeffs []complex128) {
	t.butterflyInPlace(coeffs, t.tw)
}

// InvFFTInPlace computes the inverse FFT of coeffs in-place,
// without normalization.
func (t *Transformer) InvFFTInPlace(coeffs []complex128) {
	t.butterflyInPlace(coeffs, t.twInv)
}

// NormalizeInPlace divides every coefficient by the degree.
func (t *Transformer) NormalizeInPlace(coeffs []complex128) {
	for i := 0; i < t.degree; i++ {
		coeffs[i] = complex(real(coeffs[i])*t.degreeInv, imag(coeffs[i])*t.degreeInv)
	}
}

// butterflyInPlace runs the iterative Cooley-Tukey transform:
// a bit-reversal permutation, then log N rounds of butterflies
// where the block of length l uses the twiddle e^(±2πi * j/l) = tw[j * N/l].
func (t *Transformer) butterflyInPlace(coeffs []complex128, tw []complex128) {
	if len(coeffs) != t.degree {
		panic("coefficient length does not match degree")
	}

	num.BitReverseInPlace(coeffs)

	for l := 2; l <= t.degree; l <<= 1 {
		h := l >> 1
		step := t.degree / l
		for i := 0; i < t.degree; i += l {
			for j := 0; j < h; j++ {
				u := coeffs[i+j]
				v := coeffs[i+j+h] * tw[j*step]
				coeffs[i+j] = u + v
				coeffs[i+j+h] = u - v
			}
		}
	}
}

// Convolve returns the linear convolution of a and b,
// rounded to the nearest integers.
// len(a) + len(b) must not exceed the degree.
func (t *Transformer) Convolve(a, b []int) []int {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	cOut := make([]int, len(a)+len(b)-1)
	t.ConvolveAssign(a, b, cOut)
	return cOut
}

// ConvolveAssign computes the linear convolution of a and b and writes it to cOut.
// cOut should have length len(a) + len(b) - 1.
func (t *Transformer) ConvolveAssign(a, b []int, cOut []int) {
	if len(a)+len(b) > t.degree {
		panic("operands too long for degree")
	}

	fa := make([]complex128, t.degree)
	fb := make([]complex128, t.degree)
	for i, x := range a {
		fa[i] = complex(float64(x), 0)
	}
	for i, x := range b {
		fb[i] = complex(float64(x), 0)
	}

	t.FFTInPlace(fa)
	t.FFTInPlace(fb)
	for i := 0; i < t.degree; i++ {
		fa[i] *= fb[i]
	}
	t.InvFFTInPlace(fa)
	t.NormalizeInPlace(fa)

	for i := range cOut {
		cOut[i] = int(math.Floor(real(fa[i]) + 0.5))
	}
}

// Convolve returns the linear convolution of a and b
// using a Transformer of the smallest sufficient degree.
func Convolve(a, b []int) []int {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	return NewTransformer(num.NextPowerOfTwo(len(a) + len(b))).Convolve(a, b)
}
