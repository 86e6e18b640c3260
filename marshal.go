package prim

import (
	"fmt"
	"math"
)

// formatValue hands every fmt verb and flag straight to the native value, so
// that "%x", "%08d" or "%.3f" behave as they would for T itself. "%s" is
// treated as "%v".
func formatValue[T Number](s fmt.State, c rune, v T) {
	if c == 's' {
		c = 'v'
	}
	fmt.Fprintf(s, fmt.FormatString(s, c), v)
}

func unmarshalText[T Number](bts []byte) (T, error) {
	return parseStrict[T](string(bts))
}

// marshalJSON emits bare JSON numbers. Non-finite floats have no JSON number
// form and are emitted as the quoted strings "NaN", "+Inf" and "-Inf".
func marshalJSON[T Number](v T) []byte {
	s := ToString(v)
	if KindOf[T]().IsFloat() {
		if f := float64(v); math.IsNaN(f) || math.IsInf(f, 0) {
			return []byte(`"` + s + `"`)
		}
	}
	return []byte(s)
}

// unmarshalJSON accepts a bare number or a number in a JSON string.
func unmarshalJSON[T Number](bts []byte) (v T, err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return v, fmt.Errorf("prim: %s invalid JSON %q", KindOf[T](), string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return parseStrict[T](string(bts))
}

func unmarshalBinary[T Number](bts []byte) (v T, err error) {
	if sz := SizeOf[T](); len(bts) != sz {
		return v, fmt.Errorf("prim: %s binary length %d, expected %d", KindOf[T](), len(bts), sz)
	}
	return FromBytes[T](bts), nil
}
