package intpow

import (
	"golang.org/x/exp/constraints"
)

// Kind identifies one of the ten integer shapes this package computes over.
// The native eight are reachable through the generic entry points; the
// extended 128-bit pair is carried by the U128 and I128 value types, which
// the language's type sets cannot describe.
type Kind uint

const (
	KindInt8 Kind = iota
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindInt128
	KindUint128
)

var kindNames = [...]string{
	KindInt8:    "int8",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindUint8:   "uint8",
	KindUint16:  "uint16",
	KindUint32:  "uint32",
	KindUint64:  "uint64",
	KindInt128:  "i128",
	KindUint128: "u128",
}

func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return "invalid"
	}
	return kindNames[k]
}

// Signed reports whether the kind carries a sign bit.
func (k Kind) Signed() bool {
	switch k {
	case KindInt8, KindInt16, KindInt32, KindInt64, KindInt128:
		return true
	}
	return false
}

// Unsigned is the complement of Signed for valid kinds.
func (k Kind) Unsigned() bool { return !k.Signed() }

// Bits returns the width of the kind in bits, sign bit included.
func (k Kind) Bits() int {
	switch k {
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32:
		return 32
	case KindInt64, KindUint64:
		return 64
	default:
		return 128
	}
}

// MaxPowTwo returns the largest e such that 2^e is representable by the
// kind. One less than Bits for unsigned kinds, two less for signed.
func (k Kind) MaxPowTwo() uint {
	if k.Signed() {
		return uint(k.Bits()) - 2
	}
	return uint(k.Bits()) - 1
}

// limits returns the magnitude of the largest positive value and, for signed
// kinds, the magnitude of the most negative value. Both fit a uint64 for
// every native kind; the 128-bit kinds carry their own limit constants.
func (k Kind) limits() (maxPos, maxNeg uint64) {
	switch k {
	case KindInt8:
		return 1<<7 - 1, 1 << 7
	case KindInt16:
		return 1<<15 - 1, 1 << 15
	case KindInt32:
		return 1<<31 - 1, 1 << 31
	case KindInt64:
		return maxInt64, 1 << 63
	case KindUint8:
		return 1<<8 - 1, 0
	case KindUint16:
		return 1<<16 - 1, 0
	case KindUint32:
		return 1<<32 - 1, 0
	case KindUint64:
		return maxUint64, 0
	default:
		panic("intpow: no uint64 limits for 128-bit kinds")
	}
}

// KindOf resolves the Kind for a native integer type parameter. The two
// probes below are resolved per instantiation; there is no reflection and no
// per-value work.
func KindOf[T constraints.Integer]() Kind {
	signed := isSigned[T]()
	switch bitsOf[T]() {
	case 8:
		if signed {
			return KindInt8
		}
		return KindUint8
	case 16:
		if signed {
			return KindInt16
		}
		return KindUint16
	case 32:
		if signed {
			return KindInt32
		}
		return KindUint32
	default:
		if signed {
			return KindInt64
		}
		return KindUint64
	}
}

// isSigned reports whether T is a signed type. 0-1 underflows to the maximum
// value for unsigned types, so the comparison only holds for signed ones.
func isSigned[T constraints.Integer]() bool {
	var z T
	return z-1 < z
}

// bitsOf counts the width of T by shifting a set bit off the top. The shift
// wraps through the sign bit for signed types, so the count is exact for
// both signednesses. Also matches uint/uintptr on either word size.
func bitsOf[T constraints.Integer]() int {
	n := 0
	for v := T(1); v != 0; v <<= 1 {
		n++
	}
	return n
}
