package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/sp301415/exact/bigint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(args ...string) (string, error) {
	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"add", "123456789", "987654321"}, "1111111110\n"},
		{[]string{"add", "--", "1", "2", "3", "-10"}, "-4\n"},
		{[]string{"sub", "0", "99999999999999999999"}, "-99999999999999999999\n"},
		{[]string{"mul", "1000000000000000000000000", "999999999999999999999999"}, "999999999999999999999999000000000000000000000000\n"},
		{[]string{"mul", "--ntt-threshold", "2", "--", "-12", "12", "12"}, "-1728\n"},
		{[]string{"mul", "--schoolbook-threshold", "100", "99", "99"}, "9801\n"},
		{[]string{"div", "--", "-7", "2"}, "quotient: -3\nremainder: -1\n"},
		{[]string{"pow", "2", "100"}, "1267650600228229401496703205376\n"},
		{[]string{"gcd", "270", "192"}, "6\n"},
		{[]string{"gcd", "--", "270", "192", "-45"}, "3\n"},
		{[]string{"frac", "add", "1/2", "1/3"}, "5/6\n"},
		{[]string{"frac", "div", "4", "8"}, "1/2\n"},
		{[]string{"frac", "--precision", "5", "mul", "1/3", "1"}, "fraction: 1/3\ndecimal: 0.33333\n"},
		{[]string{"--json", "div", "100", "7"}, `{"quotient":"14","remainder":"2"}` + "\n"},
		{[]string{"--json", "frac", "sub", "1", "3/2"}, `{"fraction":"-1/2"}` + "\n"},
		{[]string{"--log-level", "debug", "add", "1"}, "1\n"},
	}

	for _, tt := range tests {
		out, err := runCmd(tt.args...)
		require.NoError(t, err, tt.args)
		assert.Equal(t, tt.want, out, tt.args)
	}
}

func TestCommandErrors(t *testing.T) {
	t.Run("MalformedInput", func(t *testing.T) {
		_, err := runCmd("add", "1", "x2")
		assert.True(t, errors.Is(err, bigint.ErrMalformedInput))

		_, err = runCmd("frac", "add", "1/2", "1/")
		assert.True(t, errors.Is(err, bigint.ErrMalformedInput))
	})

	t.Run("DivisionByZero", func(t *testing.T) {
		_, err := runCmd("div", "1", "0")
		assert.True(t, errors.Is(err, bigint.ErrDivisionByZero))

		_, err = runCmd("frac", "div", "1", "0/5")
		assert.True(t, errors.Is(err, bigint.ErrDivisionByZero))
	})

	t.Run("NegativeExponent", func(t *testing.T) {
		_, err := runCmd("pow", "--", "2", "-1")
		assert.True(t, errors.Is(err, bigint.ErrNegativeExponent))
	})

	t.Run("InvalidParameters", func(t *testing.T) {
		_, err := runCmd("mul", "--ntt-threshold", "3", "2", "2")
		assert.Error(t, err)
	})

	t.Run("UnknownOperation", func(t *testing.T) {
		_, err := runCmd("frac", "mod", "1", "2")
		assert.Error(t, err)
	})

	t.Run("Arguments", func(t *testing.T) {
		_, err := runCmd("sub", "1")
		assert.Error(t, err)
	})
}
