package prim

import (
	"fmt"
)

// Int wraps one of the signed integer kinds. Arithmetic wraps on overflow in
// two's complement; Quo and Rem panic with a run-time error when dividing by
// zero, exactly as the native operators do.
type Int[T Signed] struct {
	v T
}

type (
	I8  = Int[int8]
	I16 = Int[int16]
	I32 = Int[int32]
	I64 = Int[int64]
)

func I8From(v int8) I8    { return I8{v: v} }
func I16From(v int16) I16 { return I16{v: v} }
func I32From(v int32) I32 { return I32{v: v} }
func I64From(v int64) I64 { return I64{v: v} }

func I8FromString(s string) I8   { return IntFromString[int8](s) }
func I16FromString(s string) I16 { return IntFromString[int16](s) }
func I32FromString(s string) I32 { return IntFromString[int32](s) }
func I64FromString(s string) I64 { return IntFromString[int64](s) }

// IntOf wraps v without conversion.
func IntOf[T Signed](v T) Int[T] { return Int[T]{v: v} }

// IntFrom creates an Int from a native value of any kind using the rule
// described by Convert. To convert from another wrapper, pass its Get().
func IntFrom[T Signed, U Number](v U) Int[T] { return Int[T]{v: Convert[T](v)} }

// IntFromString parses s leniently; see FromString.
func IntFromString[T Signed](s string) Int[T] { return Int[T]{v: FromString[T](s)} }

// IntFromBytes decodes the big-endian Byte Representation of an Int. It
// panics if b is shorter than SizeOf[T]().
func IntFromBytes[T Signed](b []byte) Int[T] { return Int[T]{v: FromBytes[T](b)} }

func (i Int[T]) Get() T     { return i.v }
func (i *Int[T]) Ref() *T   { return &i.v }
func (i *Int[T]) Set(v T)   { i.v = v }
func (i Int[T]) Kind() Kind { return KindOf[T]() }

// Bool reports whether i is non-zero.
func (i Int[T]) Bool() bool       { return i.v != 0 }
func (i Int[T]) LogicalNot() bool { return i.v == 0 }
func (i Int[T]) IsZero() bool     { return i.v == 0 }

func (i Int[T]) String() string { return ToString(i.v) }

func (i Int[T]) Format(s fmt.State, c rune) { formatValue(s, c, i.v) }

func (i Int[T]) Inc() Int[T] { return Int[T]{v: i.v + 1} }
func (i Int[T]) Dec() Int[T] { return Int[T]{v: i.v - 1} }

// PreInc increments i and returns the new value.
func (i *Int[T]) PreInc() Int[T] { i.v++; return *i }

// PreDec decrements i and returns the new value.
func (i *Int[T]) PreDec() Int[T] { i.v--; return *i }

// PostInc increments i and returns the value it held before.
func (i *Int[T]) PostInc() (old Int[T]) { old = *i; i.v++; return old }

// PostDec decrements i and returns the value it held before.
func (i *Int[T]) PostDec() (old Int[T]) { old = *i; i.v--; return old }

func (i Int[T]) Add(n Int[T]) Int[T]    { return Int[T]{v: i.v + n.v} }
func (i Int[T]) Sub(n Int[T]) Int[T]    { return Int[T]{v: i.v - n.v} }
func (i Int[T]) Mul(n Int[T]) Int[T]    { return Int[T]{v: i.v * n.v} }
func (i Int[T]) Quo(by Int[T]) Int[T]   { return Int[T]{v: i.v / by.v} }
func (i Int[T]) Rem(by Int[T]) Int[T]   { return Int[T]{v: i.v % by.v} }
func (i Int[T]) And(n Int[T]) Int[T]    { return Int[T]{v: i.v & n.v} }
func (i Int[T]) Or(n Int[T]) Int[T]     { return Int[T]{v: i.v | n.v} }
func (i Int[T]) Xor(n Int[T]) Int[T]    { return Int[T]{v: i.v ^ n.v} }
func (i Int[T]) AndNot(n Int[T]) Int[T] { return Int[T]{v: i.v &^ n.v} }

// QuoRem returns the quotient and remainder of i/by, truncated toward zero.
func (i Int[T]) QuoRem(by Int[T]) (q, r Int[T]) {
	return Int[T]{v: i.v / by.v}, Int[T]{v: i.v % by.v}
}

// Lsh shifts left; shifting by BitsOf[T]() or more yields zero.
func (i Int[T]) Lsh(n uint) Int[T] { return Int[T]{v: i.v << n} }

// Rsh is an arithmetic shift; shifting by BitsOf[T]() or more yields 0 or -1.
func (i Int[T]) Rsh(n uint) Int[T] { return Int[T]{v: i.v >> n} }

func (i *Int[T]) AddAssign(n Int[T]) Int[T]  { i.v += n.v; return *i }
func (i *Int[T]) SubAssign(n Int[T]) Int[T]  { i.v -= n.v; return *i }
func (i *Int[T]) MulAssign(n Int[T]) Int[T]  { i.v *= n.v; return *i }
func (i *Int[T]) QuoAssign(by Int[T]) Int[T] { i.v /= by.v; return *i }
func (i *Int[T]) RemAssign(by Int[T]) Int[T] { i.v %= by.v; return *i }
func (i *Int[T]) AndAssign(n Int[T]) Int[T]  { i.v &= n.v; return *i }
func (i *Int[T]) OrAssign(n Int[T]) Int[T]   { i.v |= n.v; return *i }
func (i *Int[T]) XorAssign(n Int[T]) Int[T]  { i.v ^= n.v; return *i }
func (i *Int[T]) LshAssign(n uint) Int[T]    { i.v <<= n; return *i }
func (i *Int[T]) RshAssign(n uint) Int[T]    { i.v >>= n; return *i }

func (i Int[T]) Plus() Int[T] { return i }

// Neg returns -i. The negation of the minimum value is itself.
func (i Int[T]) Neg() Int[T] { return Int[T]{v: -i.v} }

// Not returns the bitwise complement of i.
func (i Int[T]) Not() Int[T] { return Int[T]{v: ^i.v} }

// Abs returns the absolute value of i. Like Neg, the absolute value of the
// minimum value wraps around to itself.
func (i Int[T]) Abs() Int[T] {
	if i.v < 0 {
		return Int[T]{v: -i.v}
	}
	return i
}

// Sign returns -1 if i < 0, 0 if i == 0 and +1 if i > 0.
func (i Int[T]) Sign() int {
	if i.v < 0 {
		return -1
	} else if i.v > 0 {
		return 1
	}
	return 0
}

// Min returns the smaller of i and n, preferring i when they are equal.
func (i Int[T]) Min(n Int[T]) Int[T] {
	if n.v < i.v {
		return n
	}
	return i
}

// Max returns the larger of i and n, preferring i when they are equal.
func (i Int[T]) Max(n Int[T]) Int[T] {
	if i.v < n.v {
		return n
	}
	return i
}

func (i Int[T]) Cmp(n Int[T]) int {
	if i.v > n.v {
		return 1
	} else if i.v < n.v {
		return -1
	}
	return 0
}

func (i Int[T]) Equal(n Int[T]) bool            { return i.v == n.v }
func (i Int[T]) NotEqual(n Int[T]) bool         { return i.v != n.v }
func (i Int[T]) GreaterThan(n Int[T]) bool      { return i.v > n.v }
func (i Int[T]) GreaterOrEqualTo(n Int[T]) bool { return i.v >= n.v }
func (i Int[T]) LessThan(n Int[T]) bool         { return i.v < n.v }
func (i Int[T]) LessOrEqualTo(n Int[T]) bool    { return i.v <= n.v }

// Bytes returns the big-endian Byte Representation of i.
func (i Int[T]) Bytes() []byte { return ToBytes(i.v) }

func (i Int[T]) AppendBytes(b []byte) []byte { return AppendBytes(b, i.v) }

func (i Int[T]) MarshalBinary() ([]byte, error) { return i.Bytes(), nil }

func (i *Int[T]) UnmarshalBinary(bts []byte) (err error) {
	v, err := unmarshalBinary[T](bts)
	if err != nil {
		return err
	}
	i.v = v
	return nil
}

func (i Int[T]) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Int[T]) UnmarshalText(bts []byte) (err error) {
	v, err := unmarshalText[T](bts)
	if err != nil {
		return err
	}
	i.v = v
	return nil
}

func (i Int[T]) MarshalJSON() ([]byte, error) {
	return marshalJSON(i.v), nil
}

func (i *Int[T]) UnmarshalJSON(bts []byte) (err error) {
	v, err := unmarshalJSON[T](bts)
	if err != nil {
		return err
	}
	i.v = v
	return nil
}
