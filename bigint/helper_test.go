package bigint_test

import (
	"math/big"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/sp301415/exact/bigint"
)

// propertySeed fixes the gopter seed so that failures are reproducible.
const propertySeed = 0x5eed

func newProperties() *gopter.Properties {
	params := gopter.DefaultTestParametersWithSeed(propertySeed)
	params.MinSuccessfulTests = 200
	return gopter.NewProperties(params)
}

// genInt generates signed Ints of up to 100 decimal digits,
// leading zeros included in the generated text.
func genInt() gopter.Gen {
	return gen.RegexMatch(`-?[0-9]+`).Map(func(s string) bigint.Int {
		return bigint.MustParse(s)
	})
}

// genNonZeroInt generates Ints other than zero.
func genNonZeroInt() gopter.Gen {
	return genInt().SuchThat(func(x bigint.Int) bool {
		return !x.IsZero()
	})
}

func toBig(x bigint.Int) *big.Int {
	b, ok := new(big.Int).SetString(x.String(), 10)
	if !ok {
		panic("invalid Int " + x.String())
	}
	return b
}
