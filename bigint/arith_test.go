package bigint_test

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter/prop"
	"github.com/sp301415/exact/bigint"
	"github.com/stretchr/testify/assert"
)

func TestInt_AddSub(t *testing.T) {
	tests := []struct {
		x, y     string
		sum, dif string
	}{
		{"0", "0", "0", "0"},
		{"1", "0", "1", "1"},
		{"0", "1", "1", "-1"},
		{"99", "1", "100", "98"},
		{"100", "1", "101", "99"},
		{"-100", "1", "-99", "-101"},
		{"9999999999", "1", "10000000000", "9999999998"},
		{"10000000000", "-1", "9999999999", "10000000001"},
		{"-5", "5", "0", "-10"},
		{"5", "5", "10", "0"},
		{"-123456789", "-987654321", "-1111111110", "864197532"},
	}

	for _, tt := range tests {
		x, y := bigint.MustParse(tt.x), bigint.MustParse(tt.y)
		assert.Equal(t, tt.sum, x.Add(y).String(), "%v + %v", x, y)
		assert.Equal(t, tt.dif, x.Sub(y).String(), "%v - %v", x, y)
	}
}

func TestInt_Assign(t *testing.T) {
	t.Run("AddAssign", func(t *testing.T) {
		x := bigint.New(99)
		x.AddAssign(bigint.New(2))
		assert.Equal(t, "101", x.String())
	})

	t.Run("SubAssignSelf", func(t *testing.T) {
		x := bigint.MustParse("123456789123456789")
		x.SubAssign(x)
		assert.True(t, x.IsZero())
		assert.Equal(t, bigint.Zero, x.Sign())
	})

	t.Run("AddAssignSelf", func(t *testing.T) {
		x := bigint.MustParse("-505050505")
		x.AddAssign(x)
		assert.Equal(t, "-1010101010", x.String())
	})

	t.Run("NoAliasing", func(t *testing.T) {
		x := bigint.MustParse("9999")
		y := x
		x.AddAssign(bigint.New(1))
		assert.Equal(t, "10000", x.String())
		assert.Equal(t, "9999", y.String())
	})

	t.Run("IncDec", func(t *testing.T) {
		x := bigint.New(-1)
		x.Inc()
		assert.True(t, x.IsZero())
		x.Inc()
		assert.Equal(t, "1", x.String())
		x.Dec()
		x.Dec()
		assert.Equal(t, "-1", x.String())

		y := bigint.MustParse("9999")
		y.Inc()
		assert.Equal(t, "10000", y.String())
		y.Dec()
		assert.Equal(t, "9999", y.String())
	})

	t.Run("Neg", func(t *testing.T) {
		x := bigint.New(7)
		assert.Equal(t, "-7", x.Neg().String())
		assert.Equal(t, "7", x.Neg().Abs().String())
		assert.Equal(t, "0", bigint.Int{}.Neg().String())

		x.NegAssign()
		assert.Equal(t, bigint.Negative, x.Sign())
	})
}

func TestInt_Properties(t *testing.T) {
	properties := newProperties()

	properties.Property("String round trip", prop.ForAll(
		func(x bigint.Int) bool {
			y, err := bigint.Parse(x.String())
			return err == nil && y.Equal(x) && y.String() == x.String()
		},
		genInt(),
	))

	properties.Property("Canonical form", prop.ForAll(
		func(x bigint.Int) bool {
			if x.IsZero() {
				return x.Len() == 0 && x.Sign() == bigint.Zero
			}
			for i := 0; i < x.Len(); i++ {
				if x.Limb(i) < 0 || x.Limb(i) >= bigint.Base {
					return false
				}
			}
			return x.Limb(x.Len()-1) != 0
		},
		genInt(),
	))

	properties.Property("Add commutes", prop.ForAll(
		func(x, y bigint.Int) bool {
			return x.Add(y).Equal(y.Add(x))
		},
		genInt(), genInt(),
	))

	properties.Property("Add associates", prop.ForAll(
		func(x, y, z bigint.Int) bool {
			return x.Add(y).Add(z).Equal(x.Add(y.Add(z)))
		},
		genInt(), genInt(), genInt(),
	))

	properties.Property("Sub inverts Add", prop.ForAll(
		func(x, y bigint.Int) bool {
			return x.Add(y).Sub(y).Equal(x) && x.Sub(x).IsZero()
		},
		genInt(), genInt(),
	))

	properties.Property("Mul commutes", prop.ForAll(
		func(x, y bigint.Int) bool {
			return x.Mul(y).Equal(y.Mul(x))
		},
		genInt(), genInt(),
	))

	properties.Property("Mul distributes", prop.ForAll(
		func(x, y, z bigint.Int) bool {
			return x.Mul(y.Add(z)).Equal(x.Mul(y).Add(x.Mul(z)))
		},
		genInt(), genInt(), genInt(),
	))

	properties.Property("Mul identities", prop.ForAll(
		func(x bigint.Int) bool {
			return x.Mul(bigint.Int{}).IsZero() && x.Mul(bigint.New(1)).Equal(x) && x.Mul(bigint.New(-1)).Equal(x.Neg())
		},
		genInt(),
	))

	properties.Property("Cmp is consistent with Sub", prop.ForAll(
		func(x, y bigint.Int) bool {
			return x.Cmp(y) == int(x.Sub(y).Sign())
		},
		genInt(), genInt(),
	))

	properties.Property("Add, Sub and Mul agree with math/big", prop.ForAll(
		func(x, y bigint.Int) bool {
			bx, by := toBig(x), toBig(y)
			return x.Add(y).String() == new(big.Int).Add(bx, by).String() &&
				x.Sub(y).String() == new(big.Int).Sub(bx, by).String() &&
				x.Mul(y).String() == new(big.Int).Mul(bx, by).String()
		},
		genInt(), genInt(),
	))

	properties.TestingRun(t)
}
