// Package csprng implements a seeded uniform sampler
// used to draw random limbs, digits and operands.
package csprng

import (
	"crypto/rand"
	"encoding/binary"
	"math"

	"golang.org/x/crypto/blake2b"
)

// bufSize is the default buffer size of UniformSampler.
const bufSize = 8192

// UniformSampler samples values from uniform distribution.
// This uses blake2b XOF as a underlying prng,
// so two samplers with the same seed produce the same stream.
//
// UniformSampler is not safe for concurrent use.
type UniformSampler struct {
	seeded blake2b.XOF
	prng   blake2b.XOF

	buf [bufSize]byte
	ptr int
}

// NewUniformSampler creates a new UniformSampler with a random seed.
//
// Panics when read from crypto/rand or blake2b initialization fails.
func NewUniformSampler() *UniformSampler {
	seed := make([]byte, 16)
	if _, err := rand.Read(seed); err != nil {
		panic(err)
	}
	return NewUniformSamplerWithSeed(seed)
}

// NewUniformSamplerWithSeed creates a new UniformSampler, with user supplied seed.
//
// Panics when blake2b initialization fails.
func NewUniformSamplerWithSeed(seed []byte) *UniformSampler {
	seeded, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, nil)
	if err != nil {
		panic(err)
	}

	if _, err = seeded.Write(seed); err != nil {
		panic(err)
	}

	return &UniformSampler{
		seeded: seeded,
		prng:   seeded.Clone(),

		ptr: bufSize,
	}
}

// Read implements the [io.Reader] interface.
func (s *UniformSampler) Read(p []byte) (n int, err error) {
	return s.prng.Read(p)
}

// Reset rewinds the UniformSampler to the beginning of its stream.
func (s *UniformSampler) Reset() {
	s.prng = s.seeded.Clone()
	s.ptr = bufSize
}

// Sample uniformly samples a random uint64.
func (s *UniformSampler) Sample() uint64 {
	if s.ptr == bufSize {
		if _, err := s.prng.Read(s.buf[:]); err != nil {
			panic(err)
		}
		s.ptr = 0
	}

	res := binary.LittleEndian.Uint64(s.buf[s.ptr : s.ptr+8])
	s.ptr += 8

	return res
}

// SampleN uniformly samples a random integer in [0, N).
// Panics if N is zero.
func (s *UniformSampler) SampleN(N uint64) uint64 {
	if N == 0 {
		panic("sample bound must be positive")
	}

	bound := math.MaxUint64 - (math.MaxUint64 % N)
	for {
		res := s.Sample()
		if res < bound {
			return res % N
		}
	}
}

// SampleDigits samples a decimal string of exactly n digits
// without a leading zero. Returns "0" if n <= 0.
func (s *UniformSampler) SampleDigits(n int) string {
	if n <= 0 {
		return "0"
	}

	digits := make([]byte, n)
	digits[0] = byte('1' + s.SampleN(9))
	for i := 1; i < n; i++ {
		digits[i] = byte('0' + s.SampleN(10))
	}
	return string(digits)
}
