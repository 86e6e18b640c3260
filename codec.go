package prim

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// ToBytes returns the fixed-width, big-endian Byte Representation of v: b[0]
// holds the most significant byte. Floats are encoded as their IEEE-754 bit
// pattern.
func ToBytes[T Number](v T) []byte {
	return AppendBytes(make([]byte, 0, SizeOf[T]()), v)
}

// AppendBytes appends the big-endian representation of v to b.
func AppendBytes[T Number](b []byte, v T) []byte {
	n := len(b)
	b = append(b, make([]byte, SizeOf[T]())...)
	putBytes(b[n:], v)
	return b
}

// FromBytes decodes the big-endian representation produced by ToBytes. It
// reads exactly SizeOf[T]() bytes from the front of b and panics if b is
// shorter, like binary.BigEndian.Uint32.
func FromBytes[T Number](b []byte) T {
	switch KindOf[T]() {
	case KindF32:
		return T(math.Float32frombits(getBE[uint32](b)))
	case KindF64:
		return T(math.Float64frombits(getBE[uint64](b)))
	case KindI8:
		return T(getBE[int8](b))
	case KindI16:
		return T(getBE[int16](b))
	case KindI32:
		return T(getBE[int32](b))
	case KindI64:
		return T(getBE[int64](b))
	case KindU8:
		return T(getBE[uint8](b))
	case KindU16:
		return T(getBE[uint16](b))
	case KindU32:
		return T(getBE[uint32](b))
	default:
		return T(getBE[uint64](b))
	}
}

func putBytes[T Number](b []byte, v T) {
	switch KindOf[T]() {
	case KindF32:
		putBE(b, math.Float32bits(float32(v)))
	case KindF64:
		putBE(b, math.Float64bits(float64(v)))
	case KindI8, KindI16, KindI32, KindI64:
		putBE(b, int64(v))
	default:
		putBE(b, uint64(v))
	}
}

// putBE writes the low len(b) bytes of num to b, most significant first.
func putBE[T constraints.Integer](b []byte, num T) {
	for i, n := 0, len(b); i < n; i++ {
		b[i] = byte(num >> ((n - i - 1) << 3))
	}
}

func getBE[T constraints.Integer](b []byte) (num T) {
	var z T
	n := int(unsafe.Sizeof(z))
	_ = b[n-1] // bounds check
	for i := 0; i < n; i++ {
		num = num<<8 | T(b[i])
	}
	return num
}
