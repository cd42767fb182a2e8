package bigint

import "slices"

// Equal returns true if x == y.
func (x Int) Equal(y Int) bool {
	return x.sign == y.sign && slices.Equal(x.limbs, y.limbs)
}

// Cmp compares x and y and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (x Int) Cmp(y Int) int {
	if x.sign != y.sign {
		if x.sign < y.sign {
			return -1
		}
		return 1
	}

	c := cmpAbs(x.limbs, y.limbs)
	if x.sign == Negative {
		return -c
	}
	return c
}

// CmpAbs compares |x| and |y| and returns -1, 0 or +1.
func (x Int) CmpAbs(y Int) int {
	return cmpAbs(x.limbs, y.limbs)
}

// Less returns true if x < y.
func (x Int) Less(y Int) bool {
	return x.Cmp(y) < 0
}

// LessEqual returns true if x <= y.
func (x Int) LessEqual(y Int) bool {
	return x.Cmp(y) <= 0
}

// Greater returns true if x > y.
func (x Int) Greater(y Int) bool {
	return x.Cmp(y) > 0
}

// GreaterEqual returns true if x >= y.
func (x Int) GreaterEqual(y Int) bool {
	return x.Cmp(y) >= 0
}

// cmpAbs compares two trimmed magnitudes.
func cmpAbs(a, b []int) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}

	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
