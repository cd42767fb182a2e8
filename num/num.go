// Package num implements various utility functions regarding numeric types.
package num

// BitReverseInPlace reorders v into bit-reversal order in-place.
// len(v) must be a power of two.
func BitReverseInPlace[T any](v []T) {
	var bit, j int
	for i := 1; i < len(v); i++ {
		bit = len(v) >> 1
		for j >= bit {
			j -= bit
			bit >>= 1
		}
		j += bit
		if i < j {
			v[i], v[j] = v[j], v[i]
		}
	}
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOfTwo returns the smallest power of two that is at least n.
// Returns 1 if n <= 1.
func NextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// Log2 returns floor(log2(n)) for positive n.
// Panics if n is not positive.
func Log2(n int) int {
	if n <= 0 {
		panic("log2 of non-positive number")
	}

	r := 0
	for n > 1 {
		n >>= 1
		r++
	}
	return r
}

// Pow10 returns 10^e for small non-negative e.
func Pow10(e int) int {
	r := 1
	for i := 0; i < e; i++ {
		r *= 10
	}
	return r
}
