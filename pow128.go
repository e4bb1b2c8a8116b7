package intpow

// This file carries the 128-bit half of the package surface: the same
// operations the generic entry points provide for native kinds, as methods
// on U128 and I128.

// PowOfTwoU128 returns 2^exp as a U128. Exponents of 128 or more wrap to
// zero, matching fixed-width shift semantics.
func PowOfTwoU128(exp uint) U128 {
	if exp > 127 {
		return U128{}
	}
	return U128{lo: 1}.Lsh(exp)
}

// PowOfTwoI128 returns 2^exp as an I128. 2^127 wraps to MinI128 and larger
// exponents wrap to zero, as a native signed type would.
func PowOfTwoI128(exp uint) I128 {
	return PowOfTwoU128(exp).AsI128()
}

// Pow returns u^exp by binary exponentiation. Overflow wraps mod 2^128.
func (u U128) Pow(exp uint) U128 {
	if exp == 0 {
		return U128{lo: 1}
	}
	if exp == 1 {
		return u
	}
	if u.hi == 0 && u.lo <= 1 { // 0 and 1 are fixed points
		return u
	}

	result := U128{lo: 1}
	b := u
	for e := exp; ; {
		if e&1 == 1 {
			result = result.Mul(b)
		}
		e >>= 1
		if e == 0 {
			return result
		}
		b = b.Mul(b)
	}
}

// powChunkExp is the exponent above which SmartPow switches the general loop
// to the 32-bit chunk decomposition.
const powChunkExp = 32

// powChunk computes u^exp as (u^32)^q * u^r with exp == q*32 + r. The chunk
// power is computed once and reused, so a big exponent costs log(q) + log(r)
// squarings on top of the fixed chunk cost.
func (u U128) powChunk(exp uint) U128 {
	q, r := exp/powChunkExp, exp%powChunkExp
	chunk := u.Pow(powChunkExp)
	return chunk.Pow(q).Mul(u.Pow(r))
}

// SmartPow computes u^exp, rewriting power-of-two bases as single shifts and
// decomposing large exponents into 32-bit chunks. Overflow wraps mod 2^128.
func (u U128) SmartPow(exp uint) U128 {
	if exp == 0 {
		return U128{lo: 1}
	}
	if exp == 1 {
		return u
	}
	if u.hi == 0 && u.lo <= 1 {
		return u
	}

	if u.And(u.Dec()).IsZero() {
		// u == 2^k, so u^exp == 2^(k*exp). k >= 1 here: u <= 1 bailed above.
		k := uint64(u.TrailingZeros())
		total := k * uint64(exp)
		if total > 127 || total/k != uint64(exp) {
			return U128{}
		}
		return U128{lo: 1}.Lsh(uint(total))
	}

	if exp > powChunkExp {
		return u.powChunk(exp)
	}
	return u.Pow(exp)
}

// PowChecked computes u^exp, failing with ErrOverflow instead of wrapping.
// Detection is exact: each ladder step runs through the 256-bit multiply and
// any spill into the upper half proves the result cannot fit.
func (u U128) PowChecked(exp uint) (U128, error) {
	return u.powCheckedTo(exp, MaxU128)
}

// PowOK is the pair-style flavour of PowChecked.
func (u U128) PowOK(exp uint) (U128, bool) {
	v, err := u.PowChecked(exp)
	return v, err == nil
}

// powCheckedTo is PowChecked against an arbitrary magnitude ceiling, which
// is what the signed wrapper needs: the same ladder, but bounded by MaxI128
// or the MinI128 magnitude depending on the sign of the final result.
func (u U128) powCheckedTo(exp uint, limit U128) (U128, error) {
	if exp == 0 {
		return U128{lo: 1}, nil
	}
	if u.hi == 0 && u.lo <= 1 {
		return u, nil
	}
	if exp == 1 {
		if u.GreaterThan(limit) {
			return U128{}, ErrOverflow
		}
		return u, nil
	}

	result := U128{lo: 1}
	b := u
	for e := exp; ; {
		if e&1 == 1 {
			hi, hm, lm, lo := mul128to256(result.hi, result.lo, b.hi, b.lo)
			if hi|hm != 0 {
				return U128{}, ErrOverflow
			}
			result = U128{hi: lm, lo: lo}
			if result.GreaterThan(limit) {
				return U128{}, ErrOverflow
			}
		}
		e >>= 1
		if e == 0 {
			return result, nil
		}
		hi, hm, lm, lo := mul128to256(b.hi, b.lo, b.hi, b.lo)
		if hi|hm != 0 {
			return U128{}, ErrOverflow
		}
		b = U128{hi: lm, lo: lo}
		if b.GreaterThan(limit) {
			return U128{}, ErrOverflow
		}
	}
}

// Pow returns i^exp by binary exponentiation over the magnitude, with the
// sign re-applied by exponent parity. Overflow wraps in two's complement.
func (i I128) Pow(exp uint) I128 {
	if exp == 0 {
		return I128{lo: 1}
	}
	if exp == 1 {
		return i
	}

	if i.hi&signBit == 0 {
		return i.AsU128().Pow(exp).AsI128()
	}
	if i.hi == maxUint64 && i.lo == maxUint64 { // i == -1
		if exp&1 == 1 {
			return i
		}
		return I128{lo: 1}
	}

	r := i.Abs().AsU128().Pow(exp).AsI128()
	if exp&1 == 1 {
		return r.Neg()
	}
	return r
}

// SmartPow computes i^exp; non-negative bases take the U128 fast paths.
func (i I128) SmartPow(exp uint) I128 {
	if i.hi&signBit == 0 {
		return i.AsU128().SmartPow(exp).AsI128()
	}
	return i.Pow(exp)
}

// PowChecked computes i^exp, failing with ErrOverflow instead of wrapping.
// An odd power of a negative base may use the extra magnitude of MinI128:
// (-2)^127 is representable even though 2^127 is not.
func (i I128) PowChecked(exp uint) (I128, error) {
	if exp <= 1 || i.IsZero() {
		return i.Pow(exp), nil
	}
	if i.hi == maxUint64 && i.lo == maxUint64 { // -1 never overflows
		return i.Pow(exp), nil
	}

	neg := i.hi&signBit != 0
	mag := i.Abs().AsU128()

	limit := maxI128AsU128
	if neg && exp&1 == 1 {
		limit = minI128AsAbsU128
	}

	v, err := mag.powCheckedTo(exp, limit)
	if err != nil {
		return I128{}, err
	}
	out := v.AsI128()
	if neg && exp&1 == 1 {
		out = out.Neg()
	}
	return out, nil
}

// PowOK is the pair-style flavour of PowChecked.
func (i I128) PowOK(exp uint) (I128, bool) {
	v, err := i.PowChecked(exp)
	return v, err == nil
}
