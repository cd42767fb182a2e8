package rational

import (
	"fmt"

	"github.com/sp301415/exact/bigint"
)

// MustNew is like [New] but panics if den is zero.
func MustNew(num, den bigint.Int) Rat {
	x, err := New(num, den)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v, %v) failed: %v", num, den, err))
	}
	return x
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
func MustParse(s string) Rat {
	x, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return x
}

// MustQuo is like [Rat.Quo] but panics if y is zero.
func (x Rat) MustQuo(y Rat) Rat {
	q, err := x.Quo(y)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", y, err))
	}
	return q
}
