package intpow

import "math/big"

// Factorial returns n! as a big.Int. There is no fixed-width version for the
// native kinds; 20! already exhausts uint64, so anything useful lives in
// big.Int or U128 territory.
func Factorial(n uint64) *big.Int {
	return new(big.Int).MulRange(1, int64(n))
}

// Binomial returns the binomial coefficient C(n, k) as a big.Int.
func Binomial(n, k uint64) *big.Int {
	return new(big.Int).Binomial(int64(n), int64(k))
}

// FactorialU128 returns n! as a U128 if it fits. 34! is the largest factorial
// representable in 128 bits; for larger n the bool is false.
func FactorialU128(n uint64) (U128, bool) {
	result := U128From64(1)
	for i := uint64(2); i <= n; i++ {
		hi, hm, lm, lo := mul128to256(result.hi, result.lo, 0, i)
		if hi|hm != 0 {
			return U128{}, false
		}
		result = U128{hi: lm, lo: lo}
	}
	return result, true
}

// BinomialU128 returns C(n, k) as a U128 if it fits, using the multiplicative
// formula over the smaller of k and n-k. Each step multiplies by (n-k+i) and
// divides by i; the division is always exact because the running value is
// itself a binomial coefficient.
//
// The working value before each division is i * C(n-k+i, i), which can spill
// past 128 bits even when the result fits, so spilled steps divide the full
// 256-bit product limb-wise rather than reporting a false overflow.
func BinomialU128(n, k uint64) (U128, bool) {
	if k > n {
		return U128{}, true // C(n, k) == 0 for k > n
	}
	if k > n-k {
		k = n - k
	}

	result := U128From64(1)
	for i := uint64(1); i <= k; i++ {
		hi, hm, lm, lo := mul128to256(result.hi, result.lo, 0, n-k+i)
		if hi|hm == 0 {
			q, _ := U128{hi: lm, lo: lo}.QuoRem(U128From64(i))
			result = q
		} else {
			qhi, qhm, qlm, qlo, _ := divmod256by64(hi, hm, lm, lo, i)
			if qhi|qhm != 0 {
				return U128{}, false
			}
			result = U128{hi: qlm, lo: qlo}
		}
	}
	return result, true
}

// divmod256by64 divides the 256-bit value (hi, hm, lm, lo) by v, one 64-bit
// limb at a time. The running remainder is always < v, which keeps each step
// inside quorem128by64's preconditions.
func divmod256by64(hi, hm, lm, lo, v uint64) (qhi, qhm, qlm, qlo, r uint64) {
	qhi, r = quorem128by64(0, hi, v)
	qhm, r = quorem128by64(r, hm, v)
	qlm, r = quorem128by64(r, lm, v)
	qlo, r = quorem128by64(r, lo, v)
	return qhi, qhm, qlm, qlo, r
}
