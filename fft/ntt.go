package fft

import (
	"github.com/sp301415/exact/num"
	"github.com/tuneinsight/lattigo/v6/core/rlwe"
	"github.com/tuneinsight/lattigo/v6/ring"
)

// MinNTTDegree is the smallest degree of an NTTConvolver.
const MinNTTDegree = 1 << 6

// NTTConvolver computes exact convolutions of non-negative integer vectors
// over the negacyclic ring Z_q[X]/(X^N+1), where q is an NTT-friendly prime.
// As long as len(a) + len(b) <= N, no wraparound occurs,
// and as long as every coefficient of the result is below q,
// the result equals the integer convolution.
type NTTConvolver struct {
	ringQ *ring.Ring
}

// NewNTTConvolver creates a new NTTConvolver with degree at least N
// and a prime modulus of logQ bits.
// Panics if N is not a power of two or ring generation fails.
func NewNTTConvolver(N int, logQ int) *NTTConvolver {
	if !num.IsPowerOfTwo(N) {
		panic("degree must be a power of two")
	}
	N = max(N, MinNTTDegree)

	q, _, err := rlwe.GenModuli(num.Log2(N)+1, []int{logQ}, nil)
	if err != nil {
		panic(err)
	}

	ringQ, err := ring.NewRing(N, q)
	if err != nil {
		panic(err)
	}

	return &NTTConvolver{
		ringQ: ringQ,
	}
}

// Degree returns the degree of the NTTConvolver.
func (c *NTTConvolver) Degree() int {
	return c.ringQ.N()
}

// Modulus returns the prime modulus of the NTTConvolver.
func (c *NTTConvolver) Modulus() uint64 {
	return c.ringQ.SubRings[0].Modulus
}

// Convolve returns the exact linear convolution of a and b.
// Every entry of a and b must be in [0, q).
func (c *NTTConvolver) Convolve(a, b []int) []int {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	cOut := make([]int, len(a)+len(b)-1)
	c.ConvolveAssign(a, b, cOut)
	return cOut
}

// ConvolveAssign computes the exact linear convolution of a and b and writes it to cOut.
// cOut should have length len(a) + len(b) - 1.
func (c *NTTConvolver) ConvolveAssign(a, b []int, cOut []int) {
	if len(a)+len(b) > c.ringQ.N() {
		panic("operands too long for degree")
	}

	pa := c.ringQ.NewPoly()
	pb := c.ringQ.NewPoly()
	for i, x := range a {
		pa.Coeffs[0][i] = uint64(x)
	}
	for i, x := range b {
		pb.Coeffs[0][i] = uint64(x)
	}

	c.ringQ.NTT(pa, pa)
	c.ringQ.MForm(pa, pa)
	c.ringQ.NTT(pb, pb)

	c.ringQ.MulCoeffsMontgomery(pa, pb, pa)
	c.ringQ.INTT(pa, pa)

	for i := range cOut {
		cOut[i] = int(pa.Coeffs[0][i])
	}
}
