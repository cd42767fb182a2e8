package rational

// Equal returns true if x == y.
// Normalized fractions are equal exactly when their parts are.
func (x Rat) Equal(y Rat) bool {
	xn, xd := x.parts()
	yn, yd := y.parts()
	return xn.Equal(yn) && xd.Equal(yd)
}

// Cmp compares x and y and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (x Rat) Cmp(y Rat) int {
	xn, xd := x.parts()
	yn, yd := y.parts()

	// Denominators are positive, so cross multiplication keeps the order.
	return xn.Mul(yd).Cmp(yn.Mul(xd))
}

// Less returns true if x < y.
func (x Rat) Less(y Rat) bool {
	return x.Cmp(y) < 0
}

// LessEqual returns true if x <= y.
func (x Rat) LessEqual(y Rat) bool {
	return x.Cmp(y) <= 0
}

// Greater returns true if x > y.
func (x Rat) Greater(y Rat) bool {
	return x.Cmp(y) > 0
}

// GreaterEqual returns true if x >= y.
func (x Rat) GreaterEqual(y Rat) bool {
	return x.Cmp(y) >= 0
}
