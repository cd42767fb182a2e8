package bigint_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/sp301415/exact/bigint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt_ZeroValue(t *testing.T) {
	var x bigint.Int
	assert.True(t, x.IsZero())
	assert.Equal(t, bigint.Zero, x.Sign())
	assert.Equal(t, 0, x.Len())
	assert.Equal(t, "0", x.String())
	assert.True(t, x.Equal(bigint.New(0)))
	assert.True(t, x.Equal(bigint.MustParse("-000")))
}

func TestInt_Interfaces(t *testing.T) {
	var x any = bigint.Int{}
	_, ok := x.(fmt.Stringer)
	assert.True(t, ok)

	x = &bigint.Int{}
	_, ok = x.(fmt.Scanner)
	assert.True(t, ok)
}

func TestNew(t *testing.T) {
	tests := []struct {
		x    int64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{-1, "-1"},
		{99, "99"},
		{100, "100"},
		{-1234567, "-1234567"},
		{math.MaxInt64, "9223372036854775807"},
		{math.MinInt64, "-9223372036854775808"},
	}
	for _, tt := range tests {
		x := bigint.New(tt.x)
		assert.Equal(t, tt.want, x.String())

		got, ok := x.Int64()
		assert.True(t, ok)
		assert.Equal(t, tt.x, got)
	}

	assert.Equal(t, "18446744073709551615", bigint.NewFromUint64(math.MaxUint64).String())
}

func TestInt_Int64Overflow(t *testing.T) {
	for _, s := range []string{"9223372036854775808", "-9223372036854775809", "18446744073709551616", "100000000000000000000000"} {
		_, ok := bigint.MustParse(s).Int64()
		assert.False(t, ok, s)
	}
}

func TestParse(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s    string
			want string
		}{
			{"0", "0"},
			{"-0", "0"},
			{"+0", "0"},
			{"0000", "0"},
			{"7", "7"},
			{"-7", "-7"},
			{"+42", "42"},
			{"100", "100"},
			{"00100", "100"},
			{"-000123", "-123"},
			{"1000000000000000000000000", "1000000000000000000000000"},
			{"123456789012345678901234567890", "123456789012345678901234567890"},
		}
		for _, tt := range tests {
			x, err := bigint.Parse(tt.s)
			require.NoError(t, err, tt.s)
			assert.Equal(t, tt.want, x.String(), tt.s)
		}
	})

	t.Run("error", func(t *testing.T) {
		for _, s := range []string{"", "-", "+", "--1", "1-", "12a3", " 12", "12 ", "1.5", "0x10", "١٢"} {
			_, err := bigint.Parse(s)
			assert.True(t, errors.Is(err, bigint.ErrMalformedInput), "Parse(%q) = %v", s, err)
		}
	})

	t.Run("MustParse", func(t *testing.T) {
		assert.Panics(t, func() { bigint.MustParse("abc") })
		assert.NotPanics(t, func() { bigint.MustParse("-12") })
	})
}

func TestInt_Limbs(t *testing.T) {
	x := bigint.MustParse("-1234567")
	assert.Equal(t, 4, x.Len())
	assert.Equal(t, 67, x.Limb(0))
	assert.Equal(t, 45, x.Limb(1))
	assert.Equal(t, 23, x.Limb(2))
	assert.Equal(t, 1, x.Limb(3))
	assert.Equal(t, bigint.Negative, x.Sign())
	assert.Panics(t, func() { x.Limb(4) })
}

func TestInt_StringPadding(t *testing.T) {
	tests := []string{"1", "10", "101", "1001", "100001", "-5000000000000000007", "909090909"}
	for _, s := range tests {
		assert.Equal(t, s, bigint.MustParse(s).String())
	}
}

func TestInt_Scan(t *testing.T) {
	var x, y bigint.Int
	n, err := fmt.Sscan("  -12345678901234567890\n 42 ", &x, &y)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "-12345678901234567890", x.String())
	assert.Equal(t, "42", y.String())

	z := bigint.New(5)
	_, err = fmt.Sscan("12x", &z)
	assert.True(t, errors.Is(err, bigint.ErrMalformedInput))
	assert.Equal(t, "5", z.String())

	_, err = fmt.Sscanf("7", "%x", &z)
	assert.Error(t, err)
}

func TestInt_Cmp(t *testing.T) {
	ordered := []string{
		"-100000000000000000000",
		"-99999999999999999999",
		"-101",
		"-100",
		"-1",
		"0",
		"1",
		"99",
		"100",
		"12345678901234567890",
	}
	for i := range ordered {
		for j := range ordered {
			x := bigint.MustParse(ordered[i])
			y := bigint.MustParse(ordered[j])

			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			assert.Equal(t, want, x.Cmp(y), "%v cmp %v", x, y)
			assert.Equal(t, i == j, x.Equal(y))
			assert.Equal(t, i < j, x.Less(y))
			assert.Equal(t, i <= j, x.LessEqual(y))
			assert.Equal(t, i > j, x.Greater(y))
			assert.Equal(t, i >= j, x.GreaterEqual(y))
		}
	}

	assert.Equal(t, 0, bigint.New(-7).CmpAbs(bigint.New(7)))
	assert.Equal(t, -1, bigint.New(6).CmpAbs(bigint.New(-7)))
	assert.Equal(t, 1, bigint.New(-700).CmpAbs(bigint.New(7)))
	assert.Equal(t, -1, bigint.New(0).CmpAbs(bigint.New(-1)))
}
