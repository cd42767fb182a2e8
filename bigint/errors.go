package bigint

import "github.com/pkg/errors"

var (
	// ErrMalformedInput is returned when a text does not match the decimal grammar [+-]?[0-9]+.
	ErrMalformedInput = errors.New("malformed input")
	// ErrDivisionByZero is returned when the divisor of a division is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNegativeExponent is returned when Pow is called with a negative exponent.
	ErrNegativeExponent = errors.New("negative exponent")
)
