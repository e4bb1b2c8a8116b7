package intpow

// Precomputed powers of two for the narrow kinds. Each table holds
// 2^0 .. 2^k for the largest k that still fits the type, so indexing is the
// bounds check: a valid index can never wrap.

var pow2Int8 = [7]int8{1, 2, 4, 8, 16, 32, 64}

var pow2Uint8 = [8]uint8{1, 2, 4, 8, 16, 32, 64, 128}

var pow2Int16 = [15]int16{
	1, 2, 4, 8, 16, 32, 64, 128,
	256, 512, 1024, 2048, 4096, 8192, 16384,
}

var pow2Uint16 = [16]uint16{
	1, 2, 4, 8, 16, 32, 64, 128,
	256, 512, 1024, 2048, 4096, 8192, 16384, 32768,
}

var pow2Int32 = [31]int32{
	1, 2, 4, 8, 16, 32, 64, 128,
	256, 512, 1024, 2048, 4096, 8192, 16384, 32768,
	65536, 131072, 262144, 524288, 1048576, 2097152, 4194304, 8388608,
	16777216, 33554432, 67108864, 134217728, 268435456, 536870912, 1073741824,
}

var pow2Uint32 = [32]uint32{
	1, 2, 4, 8, 16, 32, 64, 128,
	256, 512, 1024, 2048, 4096, 8192, 16384, 32768,
	65536, 131072, 262144, 524288, 1048576, 2097152, 4194304, 8388608,
	16777216, 33554432, 67108864, 134217728, 268435456, 536870912, 1073741824,
	2147483648,
}

// The table accessors share one error policy: a comma-ok result, never a
// panic. An out-of-range exponent reports (0, false); it does not silently
// wrap the way the PowOfTwo fallback path does.

// PowOfTwoInt8 returns 2^exp for exp in [0, 6].
func PowOfTwoInt8(exp int) (int8, bool) {
	if exp < 0 || exp >= len(pow2Int8) {
		return 0, false
	}
	return pow2Int8[exp], true
}

// PowOfTwoUint8 returns 2^exp for exp in [0, 7].
func PowOfTwoUint8(exp int) (uint8, bool) {
	if exp < 0 || exp >= len(pow2Uint8) {
		return 0, false
	}
	return pow2Uint8[exp], true
}

// PowOfTwoInt16 returns 2^exp for exp in [0, 14].
func PowOfTwoInt16(exp int) (int16, bool) {
	if exp < 0 || exp >= len(pow2Int16) {
		return 0, false
	}
	return pow2Int16[exp], true
}

// PowOfTwoUint16 returns 2^exp for exp in [0, 15].
func PowOfTwoUint16(exp int) (uint16, bool) {
	if exp < 0 || exp >= len(pow2Uint16) {
		return 0, false
	}
	return pow2Uint16[exp], true
}

// PowOfTwoInt32 returns 2^exp for exp in [0, 30].
func PowOfTwoInt32(exp int) (int32, bool) {
	if exp < 0 || exp >= len(pow2Int32) {
		return 0, false
	}
	return pow2Int32[exp], true
}

// PowOfTwoUint32 returns 2^exp for exp in [0, 31].
func PowOfTwoUint32(exp int) (uint32, bool) {
	if exp < 0 || exp >= len(pow2Uint32) {
		return 0, false
	}
	return pow2Uint32[exp], true
}

// ValidPowTwoExp reports whether 2^exp is representable by kind k, which is
// exactly the range the table accessors (and the shift fast path) accept.
func ValidPowTwoExp(k Kind, exp int) bool {
	return exp >= 0 && uint(exp) <= k.MaxPowTwo()
}
