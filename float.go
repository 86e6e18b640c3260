package prim

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Float wraps float32 or float64. Comparisons follow IEEE-754, so NaN is
// unordered and unequal to everything, itself included. NaN and the
// infinities are ordinary values, not errors.
type Float[T constraints.Float] struct {
	v T
}

type (
	F32 = Float[float32]
	F64 = Float[float64]
)

func F32From(v float32) F32 { return F32{v: v} }
func F64From(v float64) F64 { return F64{v: v} }

func F32FromString(s string) F32 { return FloatFromString[float32](s) }
func F64FromString(s string) F64 { return FloatFromString[float64](s) }

func FloatOf[T constraints.Float](v T) Float[T] { return Float[T]{v: v} }

// FloatFrom creates a Float from a native value of any kind, rounding to the
// nearest representable value.
func FloatFrom[T constraints.Float, U Number](v U) Float[T] {
	return Float[T]{v: Convert[T](v)}
}

// FloatFromString parses s leniently; see FromString.
//
//	F32FromString("10.fabc") // 10
//	F32FromString("abc10.f") // 0
func FloatFromString[T constraints.Float](s string) Float[T] {
	return Float[T]{v: FromString[T](s)}
}

// FloatFromBytes decodes a big-endian IEEE-754 bit pattern. It panics if b is
// shorter than SizeOf[T]().
func FloatFromBytes[T constraints.Float](b []byte) Float[T] {
	return Float[T]{v: FromBytes[T](b)}
}

func (f Float[T]) Get() T     { return f.v }
func (f *Float[T]) Ref() *T   { return &f.v }
func (f *Float[T]) Set(v T)   { f.v = v }
func (f Float[T]) Kind() Kind { return KindOf[T]() }

// Bool reports whether f is non-zero. NaN is non-zero; -0 is zero.
func (f Float[T]) Bool() bool       { return f.v != 0 }
func (f Float[T]) LogicalNot() bool { return f.v == 0 }
func (f Float[T]) IsZero() bool     { return f.v == 0 }

func (f Float[T]) String() string { return ToString(f.v) }

func (f Float[T]) Format(s fmt.State, c rune) { formatValue(s, c, f.v) }

func (f Float[T]) Inc() Float[T] { return Float[T]{v: f.v + 1} }
func (f Float[T]) Dec() Float[T] { return Float[T]{v: f.v - 1} }

func (f *Float[T]) PreInc() Float[T]        { f.v++; return *f }
func (f *Float[T]) PreDec() Float[T]        { f.v--; return *f }
func (f *Float[T]) PostInc() (old Float[T]) { old = *f; f.v++; return old }
func (f *Float[T]) PostDec() (old Float[T]) { old = *f; f.v--; return old }

func (f Float[T]) Add(n Float[T]) Float[T]  { return Float[T]{v: f.v + n.v} }
func (f Float[T]) Sub(n Float[T]) Float[T]  { return Float[T]{v: f.v - n.v} }
func (f Float[T]) Mul(n Float[T]) Float[T]  { return Float[T]{v: f.v * n.v} }
func (f Float[T]) Quo(by Float[T]) Float[T] { return Float[T]{v: f.v / by.v} }

func (f *Float[T]) AddAssign(n Float[T]) Float[T]  { f.v += n.v; return *f }
func (f *Float[T]) SubAssign(n Float[T]) Float[T]  { f.v -= n.v; return *f }
func (f *Float[T]) MulAssign(n Float[T]) Float[T]  { f.v *= n.v; return *f }
func (f *Float[T]) QuoAssign(by Float[T]) Float[T] { f.v /= by.v; return *f }

func (f Float[T]) Plus() Float[T] { return f }
func (f Float[T]) Neg() Float[T]  { return Float[T]{v: -f.v} }

// Abs clears the sign bit of f, so Abs(-0) is +0 and Abs(NaN) is NaN.
func (f Float[T]) Abs() Float[T] { return Float[T]{v: T(math.Abs(float64(f.v)))} }

// Min returns n if n < f, otherwise f. If either operand is NaN the
// comparison is false and f is returned.
func (f Float[T]) Min(n Float[T]) Float[T] {
	if n.v < f.v {
		return n
	}
	return f
}

// Max returns n if f < n, otherwise f. If either operand is NaN the
// comparison is false and f is returned.
func (f Float[T]) Max(n Float[T]) Float[T] {
	if f.v < n.v {
		return n
	}
	return f
}

func (f Float[T]) Equal(n Float[T]) bool            { return f.v == n.v }
func (f Float[T]) NotEqual(n Float[T]) bool         { return f.v != n.v }
func (f Float[T]) GreaterThan(n Float[T]) bool      { return f.v > n.v }
func (f Float[T]) GreaterOrEqualTo(n Float[T]) bool { return f.v >= n.v }
func (f Float[T]) LessThan(n Float[T]) bool         { return f.v < n.v }
func (f Float[T]) LessOrEqualTo(n Float[T]) bool    { return f.v <= n.v }

// Mod returns the floating-point remainder of f/v. The result has the sign
// of f and a magnitude less than that of v.
func (f Float[T]) Mod(v T) Float[T] {
	return Float[T]{v: T(math.Mod(float64(f.v), float64(v)))}
}

func (f Float[T]) Ceil() Float[T]  { return Float[T]{v: T(math.Ceil(float64(f.v)))} }
func (f Float[T]) Floor() Float[T] { return Float[T]{v: T(math.Floor(float64(f.v)))} }
func (f Float[T]) Trunc() Float[T] { return Float[T]{v: T(math.Trunc(float64(f.v)))} }

// Round returns the nearest integer, rounding half away from zero.
func (f Float[T]) Round() Float[T] { return Float[T]{v: T(math.Round(float64(f.v)))} }

func (f Float[T]) IsNaN() bool { return f.v != f.v }

// IsInf reports whether f is positive or negative infinity.
func (f Float[T]) IsInf() bool { return math.IsInf(float64(f.v), 0) }

func (f Float[T]) IsFinite() bool { return !f.IsNaN() && !f.IsInf() }

// Signbit reports whether f is negative or negative zero.
func (f Float[T]) Signbit() bool { return math.Signbit(float64(f.v)) }

// Bytes returns the big-endian IEEE-754 bit pattern of f.
func (f Float[T]) Bytes() []byte { return ToBytes(f.v) }

func (f Float[T]) AppendBytes(b []byte) []byte { return AppendBytes(b, f.v) }

func (f Float[T]) MarshalBinary() ([]byte, error) { return f.Bytes(), nil }

func (f *Float[T]) UnmarshalBinary(bts []byte) (err error) {
	v, err := unmarshalBinary[T](bts)
	if err != nil {
		return err
	}
	f.v = v
	return nil
}

func (f Float[T]) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Float[T]) UnmarshalText(bts []byte) (err error) {
	v, err := unmarshalText[T](bts)
	if err != nil {
		return err
	}
	f.v = v
	return nil
}

func (f Float[T]) MarshalJSON() ([]byte, error) {
	return marshalJSON(f.v), nil
}

func (f *Float[T]) UnmarshalJSON(bts []byte) (err error) {
	v, err := unmarshalJSON[T](bts)
	if err != nil {
		return err
	}
	f.v = v
	return nil
}
