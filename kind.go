package prim

import (
	"fmt"
	"math"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Signed is satisfied by the fixed-width signed integer kinds.
type Signed interface {
	int8 | int16 | int32 | int64
}

// Unsigned is satisfied by the fixed-width unsigned integer kinds.
type Unsigned interface {
	uint8 | uint16 | uint32 | uint64
}

// Integer is satisfied by every integral kind.
type Integer interface {
	Signed | Unsigned
}

// Number is satisfied by every kind a wrapper can hold.
type Number interface {
	Integer | constraints.Float
}

// Kind identifies the native representation held by a wrapper.
type Kind uint8

const (
	Invalid Kind = iota
	KindI8
	KindI16
	KindI32
	KindI64
	KindU8
	KindU16
	KindU32
	KindU64
	KindF32
	KindF64
)

const numKinds = int(KindF64)

var kindNames = [...]string{
	Invalid: "invalid",
	KindI8:  "i8",
	KindI16: "i16",
	KindI32: "i32",
	KindI64: "i64",
	KindU8:  "u8",
	KindU16: "u16",
	KindU32: "u32",
	KindU64: "u64",
	KindF32: "f32",
	KindF64: "f64",
}

// Kinds lists every valid Kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, numKinds)
	for k := KindI8; k <= KindF64; k++ {
		out = append(out, k)
	}
	return out
}

// KindOf reports the Kind of T. Named float types are classified by size.
func KindOf[T Number]() Kind {
	var z T
	size := unsafe.Sizeof(z)

	if isFloat[T]() {
		if size == 4 {
			return KindF32
		}
		return KindF64
	}

	signed := isSigned[T]()
	switch size {
	case 1:
		if signed {
			return KindI8
		}
		return KindU8
	case 2:
		if signed {
			return KindI16
		}
		return KindU16
	case 4:
		if signed {
			return KindI32
		}
		return KindU32
	default:
		if signed {
			return KindI64
		}
		return KindU64
	}
}

func isFloat[T Number]() bool {
	v := T(1)
	v /= 2
	return v != 0
}

func isSigned[T Number]() bool {
	v := T(0)
	v--
	return v < 0
}

// ParseKind accepts the short kind names ("u32", "f64") as well as the Go
// type names ("uint32", "float64").
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "int8":
		return KindI8, nil
	case "int16":
		return KindI16, nil
	case "int32":
		return KindI32, nil
	case "int64":
		return KindI64, nil
	case "uint8", "byte":
		return KindU8, nil
	case "uint16":
		return KindU16, nil
	case "uint32":
		return KindU32, nil
	case "uint64":
		return KindU64, nil
	case "float32":
		return KindF32, nil
	case "float64":
		return KindF64, nil
	}
	for k := KindI8; k <= KindF64; k++ {
		if kindNames[k] == name {
			return k, nil
		}
	}
	return Invalid, fmt.Errorf("prim: unknown kind %q", s)
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

func (k Kind) Valid() bool { return k >= KindI8 && k <= KindF64 }

func (k Kind) IsFloat() bool { return k == KindF32 || k == KindF64 }

func (k Kind) IsInteger() bool { return k >= KindI8 && k <= KindU64 }

func (k Kind) IsUnsigned() bool { return k >= KindU8 && k <= KindU64 }

// IsSigned reports whether the kind can hold negative values; true for floats.
func (k Kind) IsSigned() bool { return k.Valid() && !k.IsUnsigned() }

// Size returns the size of the kind in bytes, or 0 for an invalid kind.
func (k Kind) Size() int {
	switch k {
	case KindI8, KindU8:
		return 1
	case KindI16, KindU16:
		return 2
	case KindI32, KindU32, KindF32:
		return 4
	case KindI64, KindU64, KindF64:
		return 8
	}
	return 0
}

func (k Kind) Bits() int { return k.Size() * 8 }

// precision is the number of magnitude bits the kind can hold exactly.
func (k Kind) precision() int {
	switch {
	case k == KindF32:
		return 24
	case k == KindF64:
		return 53
	case k.IsUnsigned():
		return k.Bits()
	default:
		return k.Bits() - 1
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("prim: invalid kind %d", uint8(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(bts []byte) error {
	v, err := ParseKind(string(bts))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Promotion classifies a conversion between two kinds.
type Promotion uint8

const (
	// PromoteDisallowed conversions lose range or precision between the
	// integer and float families; they require an explicit Convert.
	PromoteDisallowed Promotion = iota

	// PromoteTruncate conversions narrow or change the sign of an integer;
	// they wrap and require an explicit Convert.
	PromoteTruncate

	// PromoteWiden conversions preserve every value of the source kind and
	// are allowed implicitly by Promote.
	PromoteWiden
)

func (p Promotion) String() string {
	switch p {
	case PromoteDisallowed:
		return "disallowed"
	case PromoteTruncate:
		return "truncate"
	case PromoteWiden:
		return "widen"
	}
	return fmt.Sprintf("Promotion(%d)", uint8(p))
}

// promotions is indexed by [from-1][to-1].
var promotions = func() (t [numKinds][numKinds]Promotion) {
	const (
		W = PromoteWiden
		T = PromoteTruncate
		D = PromoteDisallowed
	)
	t = [numKinds][numKinds]Promotion{
		//    to: i8 i16 i32 i64 u8 u16 u32 u64 f32 f64
		/* i8  */ {W, W, W, W, T, T, T, T, W, W},
		/* i16 */ {T, W, W, W, T, T, T, T, W, W},
		/* i32 */ {T, T, W, W, T, T, T, T, D, W},
		/* i64 */ {T, T, T, W, T, T, T, T, D, D},
		/* u8  */ {T, W, W, W, W, W, W, W, W, W},
		/* u16 */ {T, T, W, W, T, W, W, W, W, W},
		/* u32 */ {T, T, T, W, T, T, W, W, D, W},
		/* u64 */ {T, T, T, T, T, T, T, W, D, D},
		/* f32 */ {D, D, D, D, D, D, D, D, W, W},
		/* f64 */ {D, D, D, D, D, D, D, D, D, W},
	}
	return t
}()

// PromotionOf looks up the conversion class from one kind to another.
// Invalid kinds are never promotable.
func PromotionOf(from, to Kind) Promotion {
	if !from.Valid() || !to.Valid() {
		return PromoteDisallowed
	}
	return promotions[from-1][to-1]
}

// Promote converts v to T if PromotionOf permits it implicitly. ok is false,
// and out is zero, when the conversion would need an explicit Convert.
func Promote[T, U Number](v U) (out T, ok bool) {
	if PromotionOf(KindOf[U](), KindOf[T]()) != PromoteWiden {
		return out, false
	}
	return T(v), true
}

// MustPromote is Promote, but panics if the promotion is not allowed.
func MustPromote[T, U Number](v U) T {
	out, ok := Promote[T](v)
	if !ok {
		panic(fmt.Errorf("prim: %s does not promote to %s", KindOf[U](), KindOf[T]()))
	}
	return out
}

// Convert applies the explicit conversion rule from U to T. Integer and
// float-to-float conversions follow Go. Float-to-integer conversions
// truncate toward zero, send NaN to 0 and saturate out-of-range values to
// the bounds of T, so the result never depends on the platform.
func Convert[T, U Number](v U) T {
	if !KindOf[U]().IsFloat() || KindOf[T]().IsFloat() {
		return T(v)
	}

	f := float64(v)
	if f != f { // (f != f) == NaN
		return 0
	}
	f = math.Trunc(f)
	if hi := MaxOf[T](); f >= float64(hi) {
		return hi
	}
	if lo := MinOf[T](); f <= float64(lo) {
		return lo
	}
	return T(f)
}
