package bigint

import "github.com/sp301415/exact/num"

// ParametersLiteral is a structure for multiplication parameters.
type ParametersLiteral struct {
	// SchoolbookThreshold is the largest length (in limbs) of the shorter operand
	// for which the schoolbook method is used instead of a transform.
	// Zero means every non-zero product goes through a transform.
	SchoolbookThreshold int
	// NTTThreshold is the smallest transform degree
	// for which the exact NTT is used instead of the complex FFT.
	// It bounds the floating-point rounding error of the FFT.
	NTTThreshold int
	// NTTLogModulus is the bit length of the NTT prime modulus.
	NTTLogModulus int
}

// DefaultParametersLiteral is the default multiplication parameters.
var DefaultParametersLiteral = ParametersLiteral{
	SchoolbookThreshold: 0,
	NTTThreshold:        1 << 20,
	NTTLogModulus:       55,
}

// Compile transforms ParametersLiteral to read-only Parameters.
// If there is any invalid parameter in the literal, it panics.
// Default parameters are guaranteed to be compiled without panics.
func (p ParametersLiteral) Compile() Parameters {
	switch {
	case p.SchoolbookThreshold < 0:
		panic("SchoolbookThreshold must be non-negative")
	case p.NTTThreshold < 2 || !num.IsPowerOfTwo(p.NTTThreshold):
		panic("NTTThreshold must be a power of two at least 2")
	case p.NTTLogModulus < 40 || p.NTTLogModulus > 61:
		panic("NTTLogModulus must be in [40, 61]")
	}

	return Parameters{
		schoolbookThreshold: p.SchoolbookThreshold,
		nttThreshold:        p.NTTThreshold,
		nttLogModulus:       p.NTTLogModulus,
	}
}

// Parameters is a read-only structure for multiplication parameters.
type Parameters struct {
	// schoolbookThreshold is the largest shorter-operand length for schoolbook multiplication.
	schoolbookThreshold int
	// nttThreshold is the smallest transform degree for NTT multiplication.
	nttThreshold int
	// nttLogModulus is the bit length of the NTT prime modulus.
	nttLogModulus int
}

// SchoolbookThreshold returns the largest shorter-operand length for schoolbook multiplication.
func (p Parameters) SchoolbookThreshold() int {
	return p.schoolbookThreshold
}

// NTTThreshold returns the smallest transform degree for NTT multiplication.
func (p Parameters) NTTThreshold() int {
	return p.nttThreshold
}

// NTTLogModulus returns the bit length of the NTT prime modulus.
func (p Parameters) NTTLogModulus() int {
	return p.nttLogModulus
}
