package bigint

// Sampler samples uniform random integers.
// csprng.UniformSampler implements this interface.
type Sampler interface {
	// SampleN uniformly samples a random integer in [0, N).
	SampleN(N uint64) uint64
}

// Random returns a uniformly random positive Int with exactly n limbs.
// Returns zero if n <= 0.
func Random(s Sampler, n int) Int {
	if n <= 0 {
		return Int{}
	}

	limbs := make([]int, n)
	for i := 0; i < n-1; i++ {
		limbs[i] = int(s.SampleN(Base))
	}
	limbs[n-1] = 1 + int(s.SampleN(Base-1))

	return Int{sign: Positive, limbs: limbs}
}

// RandomBelow returns a uniformly random Int in [0, bound).
// Panics if bound is not positive.
func RandomBelow(s Sampler, bound Int) Int {
	if bound.sign != Positive {
		panic("bound must be positive")
	}

	// Rejection sampling over numbers with as many limbs as bound.
	n := len(bound.limbs)
	for {
		limbs := make([]int, n)
		for i := 0; i < n-1; i++ {
			limbs[i] = int(s.SampleN(Base))
		}
		limbs[n-1] = int(s.SampleN(uint64(bound.limbs[n-1]) + 1))

		limbs = trim(limbs)
		if cmpAbs(limbs, bound.limbs) < 0 {
			return newInt(Positive, limbs)
		}
	}
}
