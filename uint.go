package prim

import (
	"fmt"
	"math/bits"
)

// Uint wraps one of the unsigned integer kinds. On top of the arithmetic it
// shares with Int it supports byte swapping, rotation and bit counting.
type Uint[T Unsigned] struct {
	v T
}

type (
	U8  = Uint[uint8]
	U16 = Uint[uint16]
	U32 = Uint[uint32]
	U64 = Uint[uint64]
)

func U8From(v uint8) U8    { return U8{v: v} }
func U16From(v uint16) U16 { return U16{v: v} }
func U32From(v uint32) U32 { return U32{v: v} }
func U64From(v uint64) U64 { return U64{v: v} }

func U8FromString(s string) U8   { return UintFromString[uint8](s) }
func U16FromString(s string) U16 { return UintFromString[uint16](s) }
func U32FromString(s string) U32 { return UintFromString[uint32](s) }
func U64FromString(s string) U64 { return UintFromString[uint64](s) }

func UintOf[T Unsigned](v T) Uint[T] { return Uint[T]{v: v} }

// UintFrom creates a Uint from a native value of any kind using the rule
// described by Convert. Negative integers wrap; negative floats saturate
// to zero.
func UintFrom[T Unsigned, U Number](v U) Uint[T] { return Uint[T]{v: Convert[T](v)} }

// UintFromString parses s leniently; see FromString.
func UintFromString[T Unsigned](s string) Uint[T] { return Uint[T]{v: FromString[T](s)} }

// UintFromBytes decodes the big-endian Byte Representation of a Uint:
//
//	UintFromBytes[uint32]([]byte{0x32, 0x33, 0x12, 0x32}) // 0x32331232
//
// It panics if b is shorter than SizeOf[T]().
func UintFromBytes[T Unsigned](b []byte) Uint[T] { return Uint[T]{v: FromBytes[T](b)} }

func (u Uint[T]) Get() T     { return u.v }
func (u *Uint[T]) Ref() *T   { return &u.v }
func (u *Uint[T]) Set(v T)   { u.v = v }
func (u Uint[T]) Kind() Kind { return KindOf[T]() }

func (u Uint[T]) Bool() bool       { return u.v != 0 }
func (u Uint[T]) LogicalNot() bool { return u.v == 0 }
func (u Uint[T]) IsZero() bool     { return u.v == 0 }

func (u Uint[T]) String() string { return ToString(u.v) }

func (u Uint[T]) Format(s fmt.State, c rune) { formatValue(s, c, u.v) }

func (u Uint[T]) Inc() Uint[T] { return Uint[T]{v: u.v + 1} }
func (u Uint[T]) Dec() Uint[T] { return Uint[T]{v: u.v - 1} }

func (u *Uint[T]) PreInc() Uint[T]        { u.v++; return *u }
func (u *Uint[T]) PreDec() Uint[T]        { u.v--; return *u }
func (u *Uint[T]) PostInc() (old Uint[T]) { old = *u; u.v++; return old }
func (u *Uint[T]) PostDec() (old Uint[T]) { old = *u; u.v--; return old }

func (u Uint[T]) Add(n Uint[T]) Uint[T]    { return Uint[T]{v: u.v + n.v} }
func (u Uint[T]) Sub(n Uint[T]) Uint[T]    { return Uint[T]{v: u.v - n.v} }
func (u Uint[T]) Mul(n Uint[T]) Uint[T]    { return Uint[T]{v: u.v * n.v} }
func (u Uint[T]) Quo(by Uint[T]) Uint[T]   { return Uint[T]{v: u.v / by.v} }
func (u Uint[T]) Rem(by Uint[T]) Uint[T]   { return Uint[T]{v: u.v % by.v} }
func (u Uint[T]) And(n Uint[T]) Uint[T]    { return Uint[T]{v: u.v & n.v} }
func (u Uint[T]) Or(n Uint[T]) Uint[T]     { return Uint[T]{v: u.v | n.v} }
func (u Uint[T]) Xor(n Uint[T]) Uint[T]    { return Uint[T]{v: u.v ^ n.v} }
func (u Uint[T]) AndNot(n Uint[T]) Uint[T] { return Uint[T]{v: u.v &^ n.v} }

// Lsh and Rsh are logical shifts; shifting by BitsOf[T]() or more yields zero.
func (u Uint[T]) Lsh(n uint) Uint[T] { return Uint[T]{v: u.v << n} }
func (u Uint[T]) Rsh(n uint) Uint[T] { return Uint[T]{v: u.v >> n} }

func (u *Uint[T]) AddAssign(n Uint[T]) Uint[T]  { u.v += n.v; return *u }
func (u *Uint[T]) SubAssign(n Uint[T]) Uint[T]  { u.v -= n.v; return *u }
func (u *Uint[T]) MulAssign(n Uint[T]) Uint[T]  { u.v *= n.v; return *u }
func (u *Uint[T]) QuoAssign(by Uint[T]) Uint[T] { u.v /= by.v; return *u }
func (u *Uint[T]) RemAssign(by Uint[T]) Uint[T] { u.v %= by.v; return *u }
func (u *Uint[T]) AndAssign(n Uint[T]) Uint[T]  { u.v &= n.v; return *u }
func (u *Uint[T]) OrAssign(n Uint[T]) Uint[T]   { u.v |= n.v; return *u }
func (u *Uint[T]) XorAssign(n Uint[T]) Uint[T]  { u.v ^= n.v; return *u }
func (u *Uint[T]) LshAssign(n uint) Uint[T]     { u.v <<= n; return *u }
func (u *Uint[T]) RshAssign(n uint) Uint[T]     { u.v >>= n; return *u }

// QuoRem returns the quotient and remainder of u/by.
func (u Uint[T]) QuoRem(by Uint[T]) (q, r Uint[T]) {
	return Uint[T]{v: u.v / by.v}, Uint[T]{v: u.v % by.v}
}

func (u Uint[T]) Plus() Uint[T] { return u }

// Neg returns the two's complement of u, i.e. 0 - u with wraparound.
func (u Uint[T]) Neg() Uint[T] { return Uint[T]{v: -u.v} }

func (u Uint[T]) Not() Uint[T] { return Uint[T]{v: ^u.v} }

// Abs returns u; unsigned values are their own absolute value.
func (u Uint[T]) Abs() Uint[T] { return u }

func (u Uint[T]) Min(n Uint[T]) Uint[T] {
	if n.v < u.v {
		return n
	}
	return u
}

func (u Uint[T]) Max(n Uint[T]) Uint[T] {
	if u.v < n.v {
		return n
	}
	return u
}

func (u Uint[T]) Cmp(n Uint[T]) int {
	if u.v > n.v {
		return 1
	} else if u.v < n.v {
		return -1
	}
	return 0
}

func (u Uint[T]) Equal(n Uint[T]) bool            { return u.v == n.v }
func (u Uint[T]) NotEqual(n Uint[T]) bool         { return u.v != n.v }
func (u Uint[T]) GreaterThan(n Uint[T]) bool      { return u.v > n.v }
func (u Uint[T]) GreaterOrEqualTo(n Uint[T]) bool { return u.v >= n.v }
func (u Uint[T]) LessThan(n Uint[T]) bool         { return u.v < n.v }
func (u Uint[T]) LessOrEqualTo(n Uint[T]) bool    { return u.v <= n.v }

// ByteSwap reverses the order of all SizeOf[T]() bytes of u.
func (u Uint[T]) ByteSwap() Uint[T] {
	switch SizeOf[T]() {
	case 1:
		return u
	case 2:
		return Uint[T]{v: T(bits.ReverseBytes16(uint16(u.v)))}
	case 4:
		return Uint[T]{v: T(bits.ReverseBytes32(uint32(u.v)))}
	default:
		return Uint[T]{v: T(bits.ReverseBytes64(uint64(u.v)))}
	}
}

// RotateLeft rotates u left by (n mod BitsOf[T]()) bits. To rotate right,
// pass a negative n or use RotateRight.
func (u Uint[T]) RotateLeft(n int) Uint[T] {
	switch SizeOf[T]() {
	case 1:
		return Uint[T]{v: T(bits.RotateLeft8(uint8(u.v), n))}
	case 2:
		return Uint[T]{v: T(bits.RotateLeft16(uint16(u.v), n))}
	case 4:
		return Uint[T]{v: T(bits.RotateLeft32(uint32(u.v), n))}
	default:
		return Uint[T]{v: T(bits.RotateLeft64(uint64(u.v), n))}
	}
}

// RotateRight rotates u right by (n mod BitsOf[T]()) bits.
func (u Uint[T]) RotateRight(n int) Uint[T] {
	// Reduce first so that negating n cannot overflow.
	return u.RotateLeft(-(n % BitsOf[T]()))
}

func (u Uint[T]) LeadingZeros() int {
	return bits.LeadingZeros64(uint64(u.v)) - (64 - BitsOf[T]())
}

func (u Uint[T]) TrailingZeros() int {
	if u.v == 0 {
		return BitsOf[T]()
	}
	return bits.TrailingZeros64(uint64(u.v))
}

func (u Uint[T]) OnesCount() int { return bits.OnesCount64(uint64(u.v)) }

// BitLen returns the minimum number of bits required to represent u.
func (u Uint[T]) BitLen() int { return bits.Len64(uint64(u.v)) }

func (u Uint[T]) Bytes() []byte { return ToBytes(u.v) }

func (u Uint[T]) AppendBytes(b []byte) []byte { return AppendBytes(b, u.v) }

func (u Uint[T]) MarshalBinary() ([]byte, error) { return u.Bytes(), nil }

func (u *Uint[T]) UnmarshalBinary(bts []byte) (err error) {
	v, err := unmarshalBinary[T](bts)
	if err != nil {
		return err
	}
	u.v = v
	return nil
}

func (u Uint[T]) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *Uint[T]) UnmarshalText(bts []byte) (err error) {
	v, err := unmarshalText[T](bts)
	if err != nil {
		return err
	}
	u.v = v
	return nil
}

func (u Uint[T]) MarshalJSON() ([]byte, error) {
	return marshalJSON(u.v), nil
}

func (u *Uint[T]) UnmarshalJSON(bts []byte) (err error) {
	v, err := unmarshalJSON[T](bts)
	if err != nil {
		return err
	}
	u.v = v
	return nil
}
