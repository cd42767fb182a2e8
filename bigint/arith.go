package bigint

// Neg returns -x.
func (x Int) Neg() Int {
	return Int{sign: -x.sign, limbs: cloneLimbs(x.limbs)}
}

// NegAssign assigns x = -x.
func (x *Int) NegAssign() {
	*x = x.Neg()
}

// Abs returns |x|.
func (x Int) Abs() Int {
	if x.sign == Negative {
		return x.Neg()
	}
	return x.Clone()
}

// Add returns x + y.
func (x Int) Add(y Int) Int {
	switch {
	case y.sign == Zero:
		return x.Clone()
	case x.sign == Zero:
		return y.Clone()
	case x.sign == y.sign:
		return newInt(x.sign, addAbs(x.limbs, y.limbs))
	}

	// Signs differ: subtract the smaller magnitude from the larger one,
	// and take the sign of the larger operand.
	switch cmpAbs(x.limbs, y.limbs) {
	case 1:
		return newInt(x.sign, subAbs(x.limbs, y.limbs))
	case -1:
		return newInt(y.sign, subAbs(y.limbs, x.limbs))
	}
	return Int{}
}

// AddAssign assigns x = x + y.
func (x *Int) AddAssign(y Int) {
	*x = x.Add(y)
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int {
	return x.Add(Int{sign: -y.sign, limbs: y.limbs})
}

// SubAssign assigns x = x - y.
func (x *Int) SubAssign(y Int) {
	*x = x.Sub(y)
}

// Inc assigns x = x + 1.
func (x *Int) Inc() {
	x.AddAssign(New(1))
}

// Dec assigns x = x - 1.
func (x *Int) Dec() {
	x.SubAssign(New(1))
}

// addAbs returns a + b for magnitudes.
func addAbs(a, b []int) []int {
	if len(a) < len(b) {
		a, b = b, a
	}

	out := make([]int, len(a), len(a)+1)
	copy(out, a)
	for i := range b {
		out[i] += b[i]
	}
	return normalize(out)
}

// subAbs returns a - b for magnitudes with a >= b.
func subAbs(a, b []int) []int {
	out := make([]int, len(a))
	copy(out, a)
	for i := range b {
		out[i] -= b[i]
	}
	return normalize(out)
}
