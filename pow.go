package intpow

import (
	"golang.org/x/exp/constraints"
)

// Pow returns base raised to exp using iterative binary exponentiation,
// O(log exp) multiplications. Overflow wraps, as per the Go spec.
//
// Signed bases get the parity handling of PowSigned; for unsigned
// instantiations the sign branch is dead and the compiler discards it, so
// Pow is the right entry point regardless of signedness.
//
// A negative exponent truncates toward zero the way integer division does:
// the result is 0 unless the base has magnitude 1. Pow(1, -e) == 1, and
// Pow(-1, -e) alternates sign with the parity of e.
func Pow[T constraints.Integer, E constraints.Integer](base T, exp E) T {
	if exp < 0 {
		return powNeg(base, exp)
	}
	if isSigned[T]() && base < 0 {
		return powNegBase(base, exp)
	}
	return powBasic(base, exp)
}

// PowSigned is the signed specialisation of Pow: base == -1 short-circuits
// on exponent parity, and other negative bases are computed via their
// absolute value with the sign re-applied afterwards.
func PowSigned[T constraints.Signed, E constraints.Integer](base T, exp E) T {
	if exp < 0 {
		return powNeg(base, exp)
	}
	if base < 0 {
		return powNegBase(base, exp)
	}
	return powBasic(base, exp)
}

// PowUnsigned is the unsigned specialisation of Pow. No sign checks at all;
// it delegates straight to the square-and-multiply loop.
func PowUnsigned[T constraints.Unsigned, E constraints.Integer](base T, exp E) T {
	if exp < 0 {
		return powNeg(base, exp)
	}
	return powBasic(base, exp)
}

// powBasic is the shared square-and-multiply core. exp must be >= 0.
func powBasic[T constraints.Integer, E constraints.Integer](base T, exp E) T {
	if exp == 0 {
		return 1
	}
	if exp == 1 {
		return base
	}
	if base == 0 {
		return 0
	}
	if base == 1 {
		return 1
	}

	result := T(1)
	b := base
	for e := exp; e > 0; e >>= 1 {
		if e&1 == 1 {
			result *= b
		}
		b *= b
	}
	return result
}

// powNegBase handles base < 0, which only signed instantiations can reach.
// exp must be >= 0.
func powNegBase[T constraints.Integer, E constraints.Integer](base T, exp E) T {
	if base+1 == 0 { // base == -1: alternation, no loop needed
		if exp&1 == 1 {
			return base
		}
		return 1
	}

	result := powBasic(-base, exp)
	if exp&1 == 1 {
		return -result
	}
	return result
}

// powNeg handles exp < 0 for all entry points.
func powNeg[T constraints.Integer, E constraints.Integer](base T, exp E) T {
	if base == 1 {
		return 1
	}
	if isSigned[T]() && base+1 == 0 {
		if exp&1 != 0 { // parity survives two's complement
			return base
		}
		return 1
	}
	return 0
}
