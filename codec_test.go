package prim

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shabbyrobe/golib/assert"
)

func TestToBytes(t *testing.T) {
	for idx, tc := range []struct {
		got  []byte
		want []byte
	}{
		{ToBytes(uint32(0x32331232)), []byte{0x32, 0x33, 0x12, 0x32}},
		{ToBytes(uint8(0xab)), []byte{0xab}},
		{ToBytes(uint16(0x0102)), []byte{0x01, 0x02}},
		{ToBytes(uint64(0x0102030405060708)), []byte{1, 2, 3, 4, 5, 6, 7, 8}},
		{ToBytes(int8(-1)), []byte{0xff}},
		{ToBytes(int16(-2)), []byte{0xff, 0xfe}},
		{ToBytes(int32(math.MinInt32)), []byte{0x80, 0, 0, 0}},
		{ToBytes(int64(-1)), []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
		{ToBytes(float32(1)), []byte{0x3f, 0x80, 0x00, 0x00}},
		{ToBytes(float32(math.Copysign(0, -1))), []byte{0x80, 0, 0, 0}},
		{ToBytes(float64(1)), []byte{0x3f, 0xf0, 0, 0, 0, 0, 0, 0}},
		{ToBytes(math.Inf(-1)), []byte{0xff, 0xf0, 0, 0, 0, 0, 0, 0}},
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			if diff := cmp.Diff(tc.want, tc.got); diff != "" {
				t.Fatalf("ToBytes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFromBytes(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(uint32(0x32331232), FromBytes[uint32]([]byte{0x32, 0x33, 0x12, 0x32}))
	tt.MustEqual(uint16(0x3233), FromBytes[uint16]([]byte{0x32, 0x33, 0x12, 0x32}))
	tt.MustEqual(int8(-128), FromBytes[int8]([]byte{0x80}))
	tt.MustEqual(int16(-32768), FromBytes[int16]([]byte{0x80, 0x00}))
	tt.MustEqual(int32(-2), FromBytes[int32]([]byte{0xff, 0xff, 0xff, 0xfe}))
	tt.MustEqual(int64(math.MinInt64), FromBytes[int64]([]byte{0x80, 0, 0, 0, 0, 0, 0, 0}))
	tt.MustEqual(float32(1), FromBytes[float32]([]byte{0x3f, 0x80, 0x00, 0x00}))
	tt.MustEqual(float64(-2), FromBytes[float64]([]byte{0xc0, 0, 0, 0, 0, 0, 0, 0}))
}

// Decoded values must behave exactly like the native value they encode.
func TestFromBytesArithmetic(t *testing.T) {
	tt := assert.WrapTB(t)
	raw := []byte{0x32, 0x33, 0x12, 0x32}
	v := UintFromBytes[uint32](raw)
	tt.MustEqual(U32From(0x32331232*5), v.Mul(U32From(5)))
	tt.MustEqual(v.Get()*5, v.Mul(U32From(5)).Get())
}

func TestBytesRoundTrip(t *testing.T) {
	t.Run("ints", func(t *testing.T) {
		tt := assert.WrapTB(t)
		for _, v := range []int64{0, 1, -1, 127, -128, math.MaxInt64, math.MinInt64, 0x0102030405060708} {
			tt.MustEqual(v, FromBytes[int64](ToBytes(v)))
			tt.MustEqual(int8(v), FromBytes[int8](ToBytes(int8(v))))
			tt.MustEqual(int16(v), FromBytes[int16](ToBytes(int16(v))))
			tt.MustEqual(int32(v), FromBytes[int32](ToBytes(int32(v))))
		}
	})

	t.Run("floats", func(t *testing.T) {
		tt := assert.WrapTB(t)
		for _, v := range []float64{0, 1, -1.5, math.Pi, math.MaxFloat64, math.SmallestNonzeroFloat64, math.Inf(1)} {
			tt.MustEqual(v, FromBytes[float64](ToBytes(v)))
			tt.MustEqual(float32(v), FromBytes[float32](ToBytes(float32(v))))
		}
	})

	t.Run("nan", func(t *testing.T) {
		tt := assert.WrapTB(t)
		nan := math.Float64frombits(0x7ff8000000000001)
		back := FromBytes[float64](ToBytes(nan))
		tt.MustAssert(math.IsNaN(back))
		tt.MustEqual(math.Float64bits(nan), math.Float64bits(back))

		nan32 := math.Float32frombits(0x7fc00001)
		back32 := FromBytes[float32](ToBytes(nan32))
		tt.MustEqual(math.Float32bits(nan32), math.Float32bits(back32))
	})
}

func TestFromBytesIgnoresTrailing(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(uint8(0x32), FromBytes[uint8]([]byte{0x32, 0x33}))
	tt.MustEqual(int16(0x3233), FromBytes[int16]([]byte{0x32, 0x33, 0xff}))
}

func TestFromBytesShortPanics(t *testing.T) {
	for _, b := range [][]byte{nil, {}, {1, 2, 3}} {
		t.Run(fmt.Sprintf("%d", len(b)), func(t *testing.T) {
			tt := assert.WrapTB(t)
			defer func() {
				tt.MustAssert(recover() != nil)
			}()
			FromBytes[uint32](b)
		})
	}
}

func TestAppendBytes(t *testing.T) {
	b := []byte{0xaa}
	b = AppendBytes(b, uint16(0x0102))
	b = AppendBytes(b, int8(-1))
	b = U32From(0x03040506).AppendBytes(b)
	b = F32From(1).AppendBytes(b)

	want := []byte{0xaa, 0x01, 0x02, 0xff, 0x03, 0x04, 0x05, 0x06, 0x3f, 0x80, 0x00, 0x00}
	if diff := cmp.Diff(want, b); diff != "" {
		t.Fatalf("AppendBytes mismatch (-want +got):\n%s", diff)
	}
}

func TestBytesLength(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(1, len(I8From(0).Bytes()))
	tt.MustEqual(2, len(U16From(0).Bytes()))
	tt.MustEqual(4, len(F32From(0).Bytes()))
	tt.MustEqual(8, len(I64From(0).Bytes()))
}
