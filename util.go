package prim

import "golang.org/x/exp/constraints"

// RandSource is satisfied by *math/rand.Rand.
type RandSource interface {
	Uint64() uint64
}

// RandUint generates an unsigned value with every bit drawn from source.
func RandUint[T Unsigned](source RandSource) Uint[T] {
	return Uint[T]{v: T(source.Uint64())}
}

// RandInt generates a signed value with every bit drawn from source.
func RandInt[T Signed](source RandSource) Int[T] {
	return Int[T]{v: T(source.Uint64())}
}

// RandFloat generates a float in the half-open interval [0, 1), using as
// many random bits as T has mantissa bits.
func RandFloat[T constraints.Float](source RandSource) Float[T] {
	prec := KindOf[T]().precision()
	n := source.Uint64() >> (64 - prec)
	return Float[T]{v: T(n) / T(uint64(1)<<prec)}
}

// DifferenceUint subtracts the smaller of a and b from the larger.
func DifferenceUint[T Unsigned](a, b Uint[T]) Uint[T] {
	if a.v > b.v {
		return Uint[T]{v: a.v - b.v}
	}
	return Uint[T]{v: b.v - a.v}
}

// DifferenceInt subtracts the smaller of a and b from the larger. The result
// wraps if the true difference exceeds MaxOf[T]().
func DifferenceInt[T Signed](a, b Int[T]) Int[T] {
	if a.v > b.v {
		return Int[T]{v: a.v - b.v}
	}
	return Int[T]{v: b.v - a.v}
}
