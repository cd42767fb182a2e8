package bigint

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vmihailenco/msgpack/v5"
)

// Scan implements the [fmt.Scanner] interface.
// It reads a single whitespace-delimited token in the decimal text format.
// Supported verbs are %v, %d and %s.
func (x *Int) Scan(state fmt.ScanState, verb rune) error {
	switch verb {
	case 'v', 'd', 's':
	default:
		return errors.Errorf("bigint: unsupported verb %%%c", verb)
	}

	tok, err := state.Token(true, nil)
	if err != nil {
		return err
	}

	y, err := Parse(string(tok))
	if err != nil {
		return err
	}
	*x = y
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (x *Int) UnmarshalText(text []byte) error {
	y, err := Parse(string(text))
	if err != nil {
		return err
	}
	*x = y
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// x is encoded as a quoted decimal string, so that no precision is lost
// by JSON decoders that read numbers as float64.
func (x Int) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(x.String())), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Both quoted strings and bare JSON numbers without fraction are accepted.
func (x *Int) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) > 0 && s[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return errors.Wrap(ErrMalformedInput, err.Error())
		}
		s = unquoted
	}
	return x.UnmarshalText([]byte(s))
}

// EncodeMsgpack implements the [msgpack.CustomEncoder] interface.
// x is encoded as a msgpack string holding its decimal text.
func (x Int) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(x.String())
}

// DecodeMsgpack implements the [msgpack.CustomDecoder] interface.
func (x *Int) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	return x.UnmarshalText([]byte(s))
}

// Decimal converts x to a [decimal.Decimal].
func (x Int) Decimal() decimal.Decimal {
	d, err := decimal.NewFromString(x.String())
	if err != nil {
		panic(err)
	}
	return d
}

// NewFromDecimal creates a new Int from an integral [decimal.Decimal].
// Returns an error if d has a non-zero fractional part.
func NewFromDecimal(d decimal.Decimal) (Int, error) {
	if !d.Equal(d.Truncate(0)) {
		return Int{}, errors.Wrapf(ErrMalformedInput, "%v is not an integer", d)
	}
	return Parse(d.StringFixed(0))
}
