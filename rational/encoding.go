package rational

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sp301415/exact/bigint"
	"github.com/vmihailenco/msgpack/v5"
)

// Parse parses a string of the form "n" or "n/d" into a Rat,
// where n and d follow the grammar of [bigint.Parse].
// The result is reduced to lowest terms.
func Parse(s string) (Rat, error) {
	numStr, denStr, hasDen := strings.Cut(s, "/")

	num, err := bigint.Parse(numStr)
	if err != nil {
		return Rat{}, errors.Wrapf(err, "numerator of %q", s)
	}

	if !hasDen {
		return NewFromInt(num), nil
	}

	den, err := bigint.Parse(denStr)
	if err != nil {
		return Rat{}, errors.Wrapf(err, "denominator of %q", s)
	}
	return New(num, den)
}

// Scan implements the [fmt.Scanner] interface.
// It reads a single whitespace-delimited token of the form "n" or "n/d".
func (x *Rat) Scan(state fmt.ScanState, verb rune) error {
	switch verb {
	case 'v', 's':
	default:
		return errors.Errorf("rational: unsupported verb %%%c", verb)
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
func (x Rat) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (x *Rat) UnmarshalText(text []byte) error {
	y, err := Parse(string(text))
	if err != nil {
		return err
	}
	*x = y
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// x is encoded as a quoted string "n" or "n/d".
func (x Rat) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(x.String())), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
func (x *Rat) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) > 0 && s[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return errors.Wrap(bigint.ErrMalformedInput, err.Error())
		}
		s = unquoted
	}
	return x.UnmarshalText([]byte(s))
}

// EncodeMsgpack implements the [msgpack.CustomEncoder] interface.
// x is encoded as an array of its numerator and denominator.
func (x Rat) EncodeMsgpack(enc *msgpack.Encoder) error {
	num, den := x.parts()
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := enc.Encode(num); err != nil {
		return err
	}
	return enc.Encode(den)
}

// DecodeMsgpack implements the [msgpack.CustomDecoder] interface.
// The decoded fraction is reduced to lowest terms.
func (x *Rat) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != 2 {
		return errors.Wrapf(bigint.ErrMalformedInput, "rational array of length %d", n)
	}

	var num, den bigint.Int
	if err := dec.Decode(&num); err != nil {
		return err
	}
	if err := dec.Decode(&den); err != nil {
		return err
	}

	y, err := New(num, den)
	if err != nil {
		return err
	}
	*x = y
	return nil
}
