package intpow

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// PowOfTwo returns 2^exp as T.
//
// The 8 and 16-bit kinds read the precomputed tables; 32 and 64-bit kinds
// shift. An exponent past the type's representable range falls back to the
// general loop, which wraps silently rather than reporting the overflow.
// Use the table accessors or PowChecked when that matters.
func PowOfTwo[T constraints.Integer, E constraints.Integer](exp E) T {
	if exp < 0 {
		return powNeg(T(2), exp)
	}
	if exp == 0 {
		return 1
	}

	k := KindOf[T]()
	switch k {
	case KindInt8:
		if v, ok := PowOfTwoInt8(int(exp)); ok {
			return T(v)
		}
	case KindUint8:
		if v, ok := PowOfTwoUint8(int(exp)); ok {
			return T(v)
		}
	case KindInt16:
		if v, ok := PowOfTwoInt16(int(exp)); ok {
			return T(v)
		}
	case KindUint16:
		if v, ok := PowOfTwoUint16(int(exp)); ok {
			return T(v)
		}
	default:
		if uint64(exp) <= uint64(k.MaxPowTwo()) {
			return T(1) << exp
		}
	}

	return Pow(T(2), exp)
}

// SmartPow computes base^exp, detecting bases that are powers of two and
// rewriting them as 2^(log2(base)*exp) so they take the PowOfTwo fast path.
// Everything else routes through Pow. Overflow wraps.
func SmartPow[T constraints.Integer, E constraints.Integer](base T, exp E) T {
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
	if exp < 0 {
		return powNeg(base, exp)
	}

	if base == 2 {
		return PowOfTwo[T](exp)
	}
	if base > 2 && base&(base-1) == 0 {
		// base == 2^k, so base^exp == 2^(k*exp). base > 0 makes the uint64
		// conversion safe for signed instantiations.
		k := uint64(bits.TrailingZeros64(uint64(base)))
		total := k * uint64(exp)
		if total/k != uint64(exp) {
			// k*exp passed 2^64, far beyond any width here; wraps to zero.
			return 0
		}
		return PowOfTwo[T](total)
	}

	return Pow(base, exp)
}
