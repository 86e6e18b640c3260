package prim

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Radix is the base of the representation of every supported kind.
const Radix = 2

const (
	// Smallest positive normal values, as opposed to math.SmallestNonzeroFloat*
	// which are subnormal.
	minNormalFloat32 = 0x1p-126
	minNormalFloat64 = 0x1p-1022

	epsilonFloat32 = 0x1p-23 // math.Nextafter32(1, 2) - 1
	epsilonFloat64 = 0x1p-52 // math.Nextafter(1, 2) - 1
)

var (
	MaxI8  = I8{v: math.MaxInt8}
	MinI8  = I8{v: math.MinInt8}
	MaxI16 = I16{v: math.MaxInt16}
	MinI16 = I16{v: math.MinInt16}
	MaxI32 = I32{v: math.MaxInt32}
	MinI32 = I32{v: math.MinInt32}
	MaxI64 = I64{v: math.MaxInt64}
	MinI64 = I64{v: math.MinInt64}

	MaxU8  = U8{v: math.MaxUint8}
	MaxU16 = U16{v: math.MaxUint16}
	MaxU32 = U32{v: math.MaxUint32}
	MaxU64 = U64{v: math.MaxUint64}

	MaxF32     = F32{v: math.MaxFloat32}
	MinF32     = F32{v: minNormalFloat32}
	LowestF32  = F32{v: -math.MaxFloat32}
	EpsilonF32 = F32{v: epsilonFloat32}
	InfF32     = F32{v: float32(math.Inf(1))}
	NegInfF32  = F32{v: float32(math.Inf(-1))}
	NaNF32     = F32{v: float32(math.NaN())}
	EF32       = F32{v: math.E}
	PiF32      = F32{v: math.Pi}
	Pi2F32     = F32{v: math.Pi / 2}
	Pi4F32     = F32{v: math.Pi / 4}

	MaxF64     = F64{v: math.MaxFloat64}
	MinF64     = F64{v: minNormalFloat64}
	LowestF64  = F64{v: -math.MaxFloat64}
	EpsilonF64 = F64{v: epsilonFloat64}
	InfF64     = F64{v: math.Inf(1)}
	NegInfF64  = F64{v: math.Inf(-1)}
	NaNF64     = F64{v: math.NaN()}
	EF64       = F64{v: math.E}
	PiF64      = F64{v: math.Pi}
	Pi2F64     = F64{v: math.Pi / 2}
	Pi4F64     = F64{v: math.Pi / 4}
)

// SizeOf returns the size of T in bytes.
func SizeOf[T Number]() int {
	var z T
	return int(unsafe.Sizeof(z))
}

// BitsOf returns the size of T in bits.
func BitsOf[T Number]() int { return SizeOf[T]() * 8 }

// MaxOf returns the largest finite value of T.
func MaxOf[T Number]() T {
	switch KindOf[T]() {
	case KindI8:
		return fromInt64[T](math.MaxInt8)
	case KindI16:
		return fromInt64[T](math.MaxInt16)
	case KindI32:
		return fromInt64[T](math.MaxInt32)
	case KindI64:
		return fromInt64[T](math.MaxInt64)
	case KindU8:
		return fromUint64[T](math.MaxUint8)
	case KindU16:
		return fromUint64[T](math.MaxUint16)
	case KindU32:
		return fromUint64[T](math.MaxUint32)
	case KindU64:
		return fromUint64[T](math.MaxUint64)
	case KindF32:
		return fromFloat64[T](math.MaxFloat32)
	default:
		return fromFloat64[T](math.MaxFloat64)
	}
}

// MinOf returns the minimum of T in the sense of C's numeric_limits::min:
// the most negative value for integers, zero for unsigned integers and the
// smallest positive normal value for floats. See LowestOf for the most
// negative float.
func MinOf[T Number]() T {
	switch KindOf[T]() {
	case KindI8:
		return fromInt64[T](math.MinInt8)
	case KindI16:
		return fromInt64[T](math.MinInt16)
	case KindI32:
		return fromInt64[T](math.MinInt32)
	case KindI64:
		return fromInt64[T](math.MinInt64)
	case KindF32:
		return fromFloat64[T](minNormalFloat32)
	case KindF64:
		return fromFloat64[T](minNormalFloat64)
	default:
		return 0
	}
}

// EpsilonOf returns the difference between 1 and the next representable
// value of T. It is zero for integer kinds.
func EpsilonOf[T Number]() T {
	switch KindOf[T]() {
	case KindF32:
		return fromFloat64[T](epsilonFloat32)
	case KindF64:
		return fromFloat64[T](epsilonFloat64)
	default:
		return 0
	}
}

func LowestOf[T constraints.Float]() T { return -MaxOf[T]() }

func InfOf[T constraints.Float]() T    { return T(math.Inf(1)) }
func NegInfOf[T constraints.Float]() T { return T(math.Inf(-1)) }
func NaNOf[T constraints.Float]() T    { return T(math.NaN()) }

// EOf, PiOf, Pi2Of and Pi4Of return e, π, π/2 and π/4 rounded to T.
func EOf[T constraints.Float]() T   { return fromFloat64[T](math.E) }
func PiOf[T constraints.Float]() T  { return fromFloat64[T](math.Pi) }
func Pi2Of[T constraints.Float]() T { return fromFloat64[T](math.Pi / 2) }
func Pi4Of[T constraints.Float]() T { return fromFloat64[T](math.Pi / 4) }

func fromInt64[T Number](v int64) T     { return T(v) }
func fromUint64[T Number](v uint64) T   { return T(v) }
func fromFloat64[T Number](v float64) T { return T(v) }
