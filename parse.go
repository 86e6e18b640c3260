package prim

import (
	"fmt"
	"strconv"
)

// ToString renders v in base 10. Floats use the shortest representation
// that parses back to the same value, as strconv.FormatFloat(v, 'g', -1).
func ToString[T Number](v T) string {
	k := KindOf[T]()
	switch {
	case k.IsFloat():
		return strconv.FormatFloat(float64(v), 'g', -1, k.Bits())
	case k.IsUnsigned():
		return strconv.FormatUint(uint64(v), 10)
	default:
		return strconv.FormatInt(int64(v), 10)
	}
}

// FromString parses the longest numeric prefix of s as T, after skipping
// leading whitespace. Anything following the prefix is ignored, so
// "10.fabc" parses as 10 for a float kind and "12px" as 12 for an integer
// kind. If s has no numeric prefix the result is zero.
//
// Values that overflow T saturate to its bounds (or to ±Inf for floats). A
// leading '-' on an unsigned kind negates the parsed magnitude with
// wraparound, as C's strtoul does.
//
// FromString never fails. Callers that need to tell "0" apart from garbage
// should use UnmarshalText on the wrapper types instead.
func FromString[T Number](s string) T {
	k := KindOf[T]()
	switch {
	case k.IsFloat():
		return T(parseFloatPrefix(s, k.Bits()))
	case k.IsUnsigned():
		return parseUintPrefix[T](s)
	default:
		return parseIntPrefix[T](s)
	}
}

func parseIntPrefix[T Number](s string) T {
	text := scanInteger(s)
	if text == "" {
		return 0
	}
	// On overflow ParseInt returns the bound of the appropriate sign.
	n, _ := strconv.ParseInt(text, 10, BitsOf[T]())
	return T(n)
}

func parseUintPrefix[T Number](s string) T {
	text := scanInteger(s)
	if text == "" {
		return 0
	}
	neg := text[0] == '-'
	if text[0] == '-' || text[0] == '+' {
		text = text[1:]
	}
	n, err := strconv.ParseUint(text, 10, BitsOf[T]())
	if err != nil {
		return MaxOf[T]()
	}
	if neg {
		n = -n
	}
	return T(n)
}

func parseFloatPrefix(s string, bitSize int) float64 {
	text := scanFloat(s)
	if text == "" {
		return 0
	}
	// On overflow ParseFloat returns ±Inf.
	f, _ := strconv.ParseFloat(text, bitSize)
	return f
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func skipSpace(s string) string {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return s[i:]
}

func skipDigits(s string, i int) int {
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}

// scanInteger returns the longest prefix of s matching [+-]?[0-9]+ once
// leading whitespace is removed, or "" if there is none.
func scanInteger(s string) string {
	s = skipSpace(s)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	end := skipDigits(s, i)
	if end == i {
		return ""
	}
	return s[:end]
}

// scanFloat returns the longest prefix of s that is a decimal float once
// leading whitespace is removed, or "" if there is none. The mantissa needs
// at least one digit on either side of an optional '.', and an exponent is
// only consumed if it has digits.
func scanFloat(s string) string {
	s = skipSpace(s)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	start := i
	i = skipDigits(s, i)
	digits := i - start
	if i < len(s) && s[i] == '.' {
		frac := i + 1
		i = skipDigits(s, frac)
		digits += i - frac
	}
	if digits == 0 {
		return ""
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if k := skipDigits(s, j); k > j {
			i = k
		}
	}
	return s[:i]
}

// parseStrict parses the whole of s as T. It rejects trailing garbage,
// surrounding whitespace and values that overflow T.
func parseStrict[T Number](s string) (T, error) {
	k := KindOf[T]()
	var err error
	switch {
	case k.IsFloat():
		var f float64
		if f, err = strconv.ParseFloat(s, k.Bits()); err == nil {
			return T(f), nil
		}
	case k.IsUnsigned():
		var n uint64
		if n, err = strconv.ParseUint(s, 10, k.Bits()); err == nil {
			return T(n), nil
		}
	default:
		var n int64
		if n, err = strconv.ParseInt(s, 10, k.Bits()); err == nil {
			return T(n), nil
		}
	}
	return 0, fmt.Errorf("prim: %s string %q invalid: %w", k, s, err)
}
