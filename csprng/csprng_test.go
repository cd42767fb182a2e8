package csprng_test

import (
	"testing"

	"github.com/sp301415/exact/csprng"
	"github.com/stretchr/testify/assert"
)

func TestUniformSampler(t *testing.T) {
	seed := []byte("exact")

	t.Run("Deterministic", func(t *testing.T) {
		s0 := csprng.NewUniformSamplerWithSeed(seed)
		s1 := csprng.NewUniformSamplerWithSeed(seed)
		for i := 0; i < 2048; i++ {
			assert.Equal(t, s0.Sample(), s1.Sample())
		}
	})

	t.Run("Reset", func(t *testing.T) {
		s := csprng.NewUniformSamplerWithSeed(seed)
		first := make([]uint64, 16)
		for i := range first {
			first[i] = s.Sample()
		}

		s.Reset()
		for i := range first {
			assert.Equal(t, first[i], s.Sample())
		}
	})

	t.Run("SampleN", func(t *testing.T) {
		s := csprng.NewUniformSampler()
		for i := 0; i < 1000; i++ {
			assert.Less(t, s.SampleN(100), uint64(100))
		}
		assert.Panics(t, func() { s.SampleN(0) })
	})

	t.Run("SampleDigits", func(t *testing.T) {
		s := csprng.NewUniformSampler()
		assert.Equal(t, "0", s.SampleDigits(0))
		for n := 1; n < 50; n++ {
			d := s.SampleDigits(n)
			assert.Len(t, d, n)
			assert.NotEqual(t, byte('0'), d[0])
			for _, c := range d {
				assert.True(t, c >= '0' && c <= '9')
			}
		}
	})
}
