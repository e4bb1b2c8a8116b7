/*
Package intpow provides integer exponentiation over every fixed-width integer
shape Go can express, from int8 up to a pair of 128-bit extended types (U128,
I128) implemented on top of uint64 pairs.

All operations are pure value computations. Results wrap on overflow exactly
like Go's built-in integer arithmetic unless one of the checked call styles is
used.

Simple example:

	fmt.Println(intpow.Pow(int32(3), 5))
	// Output: 243

The entry points, roughly from general to specialised:

	Pow(base, exp)        binary exponentiation with signed/unsigned dispatch
	SmartPow(base, exp)   detects power-of-two bases and rewrites them as shifts
	PowOfTwo[T](exp)      2^exp via lookup table or shift, per type shape
	PowChecked(base, exp) (T, error), ErrOverflow instead of wrapping
	PowOK(base, exp)      (T, bool) flavour of PowChecked
	Safe(base, exp)       reports whether base^exp fits T

The 128-bit pair mirrors the same surface as methods:

	u := intpow.U128From64(3)
	fmt.Println(u.Pow(80))

Negative exponents truncate toward zero: only bases of magnitude 1 produce a
non-zero result (see Pow).

U128 and I128 support the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler
*/
package intpow
