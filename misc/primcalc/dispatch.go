package main

import (
	"errors"
	"fmt"

	prim "github.com/shabbyrobe/go-prim"
	"golang.org/x/exp/constraints"
)

// The library resolves kinds at compile time; the command line only knows
// them at run time. Everything in this file bridges the two with a switch
// over prim.Kind and a generic function per command.

var errDivideByZero = errors.New("integer divide by zero")

type textPtr[W any] interface {
	*W
	UnmarshalText([]byte) error
}

type binaryPtr[W any] interface {
	*W
	UnmarshalBinary([]byte) error
}

// parseArg parses s strictly, so typos are reported rather than read as 0.
func parseArg[W any, PW textPtr[W]](s string) (W, error) {
	var w W
	err := PW(&w).UnmarshalText([]byte(s))
	return w, err
}

// arith is the method set every wrapper has.
type arith[W any] interface {
	Add(W) W
	Sub(W) W
	Mul(W) W
	Quo(W) W
	Min(W) W
	Max(W) W
	IsZero() bool
	Equal(W) bool
	NotEqual(W) bool
	LessThan(W) bool
	LessOrEqualTo(W) bool
	GreaterThan(W) bool
	GreaterOrEqualTo(W) bool
	Bytes() []byte
	Kind() prim.Kind
}

// integral is the extra method set of Int and Uint.
type integral[W any] interface {
	Rem(W) W
	And(W) W
	Or(W) W
	Xor(W) W
	AndNot(W) W
	Lsh(uint) W
	Rsh(uint) W
}

// rotatable is the extra method set of Uint.
type rotatable[W any] interface {
	ByteSwap() W
	RotateLeft(int) W
	RotateRight(int) W
}

func calcWith[W arith[W], PW textPtr[W]](a, op, b string) (any, error) {
	x, err := parseArg[W, PW](a)
	if err != nil {
		return nil, err
	}
	ix, isInt := any(x).(integral[W])

	if op == "<<" || op == ">>" {
		if !isInt {
			return nil, fmt.Errorf("op %q needs an integer kind, got %s", op, x.Kind())
		}
		n, err := parseArg[prim.U64](b)
		if err != nil {
			return nil, err
		}
		if op == "<<" {
			return ix.Lsh(uint(n.Get())), nil
		}
		return ix.Rsh(uint(n.Get())), nil
	}

	y, err := parseArg[W, PW](b)
	if err != nil {
		return nil, err
	}

	switch op {
	case "+":
		return x.Add(y), nil
	case "-":
		return x.Sub(y), nil
	case "*":
		return x.Mul(y), nil
	case "/":
		if isInt && y.IsZero() {
			return nil, errDivideByZero
		}
		return x.Quo(y), nil
	case "min":
		return x.Min(y), nil
	case "max":
		return x.Max(y), nil
	case "==":
		return x.Equal(y), nil
	case "!=":
		return x.NotEqual(y), nil
	case "<":
		return x.LessThan(y), nil
	case "<=":
		return x.LessOrEqualTo(y), nil
	case ">":
		return x.GreaterThan(y), nil
	case ">=":
		return x.GreaterOrEqualTo(y), nil
	}

	switch op {
	case "%", "&", "|", "^", "&^":
		if !isInt {
			return nil, fmt.Errorf("op %q needs an integer kind, got %s", op, x.Kind())
		}
	}

	switch op {
	case "%":
		if y.IsZero() {
			return nil, errDivideByZero
		}
		return ix.Rem(y), nil
	case "&":
		return ix.And(y), nil
	case "|":
		return ix.Or(y), nil
	case "^":
		return ix.Xor(y), nil
	case "&^":
		return ix.AndNot(y), nil
	}
	return nil, fmt.Errorf("unknown op %q", op)
}

func calc(k prim.Kind, a, op, b string) (any, error) {
	switch k {
	case prim.KindI8:
		return calcWith[prim.I8](a, op, b)
	case prim.KindI16:
		return calcWith[prim.I16](a, op, b)
	case prim.KindI32:
		return calcWith[prim.I32](a, op, b)
	case prim.KindI64:
		return calcWith[prim.I64](a, op, b)
	case prim.KindU8:
		return calcWith[prim.U8](a, op, b)
	case prim.KindU16:
		return calcWith[prim.U16](a, op, b)
	case prim.KindU32:
		return calcWith[prim.U32](a, op, b)
	case prim.KindU64:
		return calcWith[prim.U64](a, op, b)
	case prim.KindF32:
		return calcWith[prim.F32](a, op, b)
	case prim.KindF64:
		return calcWith[prim.F64](a, op, b)
	}
	return nil, fmt.Errorf("invalid kind %s", k)
}

func encodeWith[W arith[W], PW textPtr[W]](s string) ([]byte, error) {
	w, err := parseArg[W, PW](s)
	if err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func encode(k prim.Kind, s string) ([]byte, error) {
	switch k {
	case prim.KindI8:
		return encodeWith[prim.I8](s)
	case prim.KindI16:
		return encodeWith[prim.I16](s)
	case prim.KindI32:
		return encodeWith[prim.I32](s)
	case prim.KindI64:
		return encodeWith[prim.I64](s)
	case prim.KindU8:
		return encodeWith[prim.U8](s)
	case prim.KindU16:
		return encodeWith[prim.U16](s)
	case prim.KindU32:
		return encodeWith[prim.U32](s)
	case prim.KindU64:
		return encodeWith[prim.U64](s)
	case prim.KindF32:
		return encodeWith[prim.F32](s)
	case prim.KindF64:
		return encodeWith[prim.F64](s)
	}
	return nil, fmt.Errorf("invalid kind %s", k)
}

func decodeWith[W any, PW binaryPtr[W]](raw []byte) (any, error) {
	var w W
	if err := PW(&w).UnmarshalBinary(raw); err != nil {
		return nil, err
	}
	return w, nil
}

func decode(k prim.Kind, raw []byte) (any, error) {
	switch k {
	case prim.KindI8:
		return decodeWith[prim.I8](raw)
	case prim.KindI16:
		return decodeWith[prim.I16](raw)
	case prim.KindI32:
		return decodeWith[prim.I32](raw)
	case prim.KindI64:
		return decodeWith[prim.I64](raw)
	case prim.KindU8:
		return decodeWith[prim.U8](raw)
	case prim.KindU16:
		return decodeWith[prim.U16](raw)
	case prim.KindU32:
		return decodeWith[prim.U32](raw)
	case prim.KindU64:
		return decodeWith[prim.U64](raw)
	case prim.KindF32:
		return decodeWith[prim.F32](raw)
	case prim.KindF64:
		return decodeWith[prim.F64](raw)
	}
	return nil, fmt.Errorf("invalid kind %s", k)
}

func parseLenient(k prim.Kind, s string) (any, error) {
	switch k {
	case prim.KindI8:
		return prim.I8FromString(s), nil
	case prim.KindI16:
		return prim.I16FromString(s), nil
	case prim.KindI32:
		return prim.I32FromString(s), nil
	case prim.KindI64:
		return prim.I64FromString(s), nil
	case prim.KindU8:
		return prim.U8FromString(s), nil
	case prim.KindU16:
		return prim.U16FromString(s), nil
	case prim.KindU32:
		return prim.U32FromString(s), nil
	case prim.KindU64:
		return prim.U64FromString(s), nil
	case prim.KindF32:
		return prim.F32FromString(s), nil
	case prim.KindF64:
		return prim.F64FromString(s), nil
	}
	return nil, fmt.Errorf("invalid kind %s", k)
}

func swapWith[W rotatable[W], PW textPtr[W]](s string) (any, error) {
	w, err := parseArg[W, PW](s)
	if err != nil {
		return nil, err
	}
	return w.ByteSwap(), nil
}

func swap(k prim.Kind, s string) (any, error) {
	switch k {
	case prim.KindU8:
		return swapWith[prim.U8](s)
	case prim.KindU16:
		return swapWith[prim.U16](s)
	case prim.KindU32:
		return swapWith[prim.U32](s)
	case prim.KindU64:
		return swapWith[prim.U64](s)
	}
	return nil, fmt.Errorf("swap needs an unsigned kind, got %s", k)
}

func rotateWith[W rotatable[W], PW textPtr[W]](s string, n int, left bool) (any, error) {
	w, err := parseArg[W, PW](s)
	if err != nil {
		return nil, err
	}
	if left {
		return w.RotateLeft(n), nil
	}
	return w.RotateRight(n), nil
}

func rotate(k prim.Kind, s string, n int, left bool) (any, error) {
	switch k {
	case prim.KindU8:
		return rotateWith[prim.U8](s, n, left)
	case prim.KindU16:
		return rotateWith[prim.U16](s, n, left)
	case prim.KindU32:
		return rotateWith[prim.U32](s, n, left)
	case prim.KindU64:
		return rotateWith[prim.U64](s, n, left)
	}
	return nil, fmt.Errorf("rotate needs an unsigned kind, got %s", k)
}

// Limits holds native values rather than wrappers so the dump shows the raw
// kind.
type Limits struct {
	Kind    prim.Kind
	Size    int
	Bits    int
	Max     any
	Min     any
	Lowest  any
	Epsilon any
}

func integerLimits[T prim.Integer]() Limits {
	return Limits{
		Kind:    prim.KindOf[T](),
		Size:    prim.SizeOf[T](),
		Bits:    prim.BitsOf[T](),
		Max:     prim.MaxOf[T](),
		Min:     prim.MinOf[T](),
		Lowest:  prim.MinOf[T](),
		Epsilon: prim.EpsilonOf[T](),
	}
}

func floatLimits[T constraints.Float]() Limits {
	return Limits{
		Kind:    prim.KindOf[T](),
		Size:    prim.SizeOf[T](),
		Bits:    prim.BitsOf[T](),
		Max:     prim.MaxOf[T](),
		Min:     prim.MinOf[T](),
		Lowest:  prim.LowestOf[T](),
		Epsilon: prim.EpsilonOf[T](),
	}
}

func limitsOf(k prim.Kind) (Limits, error) {
	switch k {
	case prim.KindI8:
		return integerLimits[int8](), nil
	case prim.KindI16:
		return integerLimits[int16](), nil
	case prim.KindI32:
		return integerLimits[int32](), nil
	case prim.KindI64:
		return integerLimits[int64](), nil
	case prim.KindU8:
		return integerLimits[uint8](), nil
	case prim.KindU16:
		return integerLimits[uint16](), nil
	case prim.KindU32:
		return integerLimits[uint32](), nil
	case prim.KindU64:
		return integerLimits[uint64](), nil
	case prim.KindF32:
		return floatLimits[float32](), nil
	case prim.KindF64:
		return floatLimits[float64](), nil
	}
	return Limits{}, fmt.Errorf("invalid kind %s", k)
}
