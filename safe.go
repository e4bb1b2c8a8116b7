package intpow

import (
	"errors"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// ErrOverflow is returned by the checked call styles when the result would
// not fit the requested type.
var ErrOverflow = errors.New("intpow: result overflows type")

// Safe reports whether base^exp is representable by T, without computing the
// full power. It walks the same square-and-multiply ladder as Pow, checking
// the magnitude of every intermediate against the type's limits in 64-bit
// space, so for the native kinds the answer is exact rather than a
// conservative guess.
//
// Negative exponents are always safe: the result is one of -1, 0 or 1.
func Safe[T constraints.Integer, E constraints.Integer](base T, exp E) bool {
	if exp <= 0 {
		return true
	}
	if base == 0 || base == 1 {
		return true
	}
	if isSigned[T]() && base+1 == 0 { // -1 alternates, never overflows
		return true
	}

	maxPos, maxNeg := KindOf[T]().limits()
	limit := maxPos
	var mag uint64
	if isSigned[T]() && base < 0 {
		// uint64(-int64) yields the magnitude even for the minimum value.
		mag = uint64(-int64(base))
		if exp&1 == 1 {
			limit = maxNeg
		}
	} else {
		mag = uint64(base)
	}

	return powFits(mag, uint64(exp), limit)
}

// powFits reports whether mag^exp <= limit. mag must be >= 2 and exp >= 1.
// Every intermediate of the ladder divides the final product, so the first
// 64-bit or limit overflow proves the result is out of range.
func powFits(mag, exp, limit uint64) bool {
	result := uint64(1)
	b := mag
	for e := exp; ; {
		if e&1 == 1 {
			hi, lo := bits.Mul64(result, b)
			if hi != 0 || lo > limit {
				return false
			}
			result = lo
		}
		e >>= 1
		if e == 0 {
			return true
		}
		hi, lo := bits.Mul64(b, b)
		if hi != 0 || lo > limit {
			return false
		}
		b = lo
	}
}

// PowChecked computes base^exp, failing with ErrOverflow instead of wrapping.
func PowChecked[T constraints.Integer, E constraints.Integer](base T, exp E) (T, error) {
	if !Safe(base, exp) {
		return 0, ErrOverflow
	}
	return Pow(base, exp), nil
}

// PowOK is the pair-style flavour of PowChecked: the bool reports success,
// and the value is zero when it is false. Handy when overflow is an expected
// outcome rather than an error to propagate.
func PowOK[T constraints.Integer, E constraints.Integer](base T, exp E) (T, bool) {
	if !Safe(base, exp) {
		return 0, false
	}
	return Pow(base, exp), true
}
