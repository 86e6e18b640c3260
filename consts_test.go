package prim

import (
	"math"
	"testing"
	"unsafe"

	"github.com/shabbyrobe/golib/assert"
)

func TestLimits(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustEqual(int8(math.MaxInt8), MaxOf[int8]())
	tt.MustEqual(int8(math.MinInt8), MinOf[int8]())
	tt.MustEqual(int64(math.MaxInt64), MaxOf[int64]())
	tt.MustEqual(int64(math.MinInt64), MinOf[int64]())
	tt.MustEqual(uint16(math.MaxUint16), MaxOf[uint16]())
	tt.MustEqual(uint16(0), MinOf[uint16]())
	tt.MustEqual(uint64(math.MaxUint64), MaxOf[uint64]())

	tt.MustEqual(MaxI32.Get(), MaxOf[int32]())
	tt.MustEqual(MinI16.Get(), MinOf[int16]())
	tt.MustEqual(MaxU8.Get(), MaxOf[uint8]())
}

func TestFloatLimits(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustEqual(float32(math.MaxFloat32), MaxOf[float32]())
	tt.MustEqual(float64(math.MaxFloat64), MaxOf[float64]())

	// Min is the smallest positive normal value, not the most negative one.
	tt.MustAssert(MinOf[float32]() > 0)
	tt.MustEqual(math.Float32frombits(0x00800000), MinOf[float32]())
	tt.MustEqual(math.Float64frombits(0x0010000000000000), MinOf[float64]())
	tt.MustEqual(MinF64.Get(), MinOf[float64]())

	tt.MustEqual(float32(-math.MaxFloat32), LowestOf[float32]())
	tt.MustEqual(LowestF64.Get(), LowestOf[float64]())

	tt.MustEqual(math.Nextafter32(1, 2)-1, EpsilonOf[float32]())
	tt.MustEqual(math.Nextafter(1, 2)-1, EpsilonOf[float64]())
	tt.MustEqual(EpsilonF32.Get(), EpsilonOf[float32]())
	tt.MustEqual(int32(0), EpsilonOf[int32]())
	tt.MustEqual(uint8(0), EpsilonOf[uint8]())

	tt.MustAssert(math.IsInf(float64(InfOf[float32]()), 1))
	tt.MustAssert(math.IsInf(NegInfOf[float64](), -1))
	tt.MustAssert(math.IsNaN(float64(NaNOf[float32]())))
	tt.MustAssert(InfF32.IsInf())
	tt.MustAssert(NegInfF64.IsInf())
	tt.MustAssert(NaNF64.IsNaN())

	tt.MustEqual(float32(math.Pi), PiOf[float32]())
	tt.MustEqual(math.Pi/2, Pi2Of[float64]())
	tt.MustEqual(float32(math.Pi/4), Pi4F32.Get())
	tt.MustEqual(math.E, EOf[float64]())
	tt.MustEqual(EF32.Get(), EOf[float32]())
}

func TestSizeOf(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(1, SizeOf[int8]())
	tt.MustEqual(2, SizeOf[uint16]())
	tt.MustEqual(4, SizeOf[float32]())
	tt.MustEqual(8, SizeOf[int64]())
	tt.MustEqual(64, BitsOf[float64]())
	tt.MustEqual(2, Radix)

	for _, k := range Kinds() {
		tt.MustAssert(k.Size() > 0)
	}
	tt.MustEqual(KindU32.Size(), SizeOf[uint32]())
}

func sizeOfValue[T any](v T) int { return int(unsafe.Sizeof(v)) }

// Wrapping a value must not cost anything over the native kind.
func TestWrapperSize(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(SizeOf[int8](), sizeOfValue(I8{}))
	tt.MustEqual(SizeOf[uint64](), sizeOfValue(U64{}))
	tt.MustEqual(SizeOf[float32](), sizeOfValue(F32{}))
}
