package intpow

// RandSource decouples the RandU128/RandI128 constructors from any
// particular RNG; math/rand's Rand satisfies it.
type RandSource interface {
	Uint64() uint64
}
