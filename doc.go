/*
Package prim provides thin, strongly typed wrappers around Go's fixed-width
numeric kinds: Int for int8..int64, Uint for uint8..uint64 and Float for
float32 and float64.

Wrappers are value types; all operations return new values unless they are
explicitly in-place (AddAssign, PreInc, Set...), which take a pointer
receiver. A wrapper is a single-field struct, so it costs nothing over the
native value and compares with == exactly as the native value does.

Simple example:

	v := UintFromBytes[uint32]([]byte{0x32, 0x33, 0x12, 0x32})
	fmt.Printf("%#x\n", v.Mul(U32From(5)))
	// Output: 0xfaff5afa

Operations that only make sense for some kinds only exist on the matching
wrapper, so misuse fails to compile:

	Int, Uint:  Rem, And, Or, Xor, AndNot, Lsh, Rsh, Not, Cmp
	Uint:       ByteSwap, RotateLeft, RotateRight, LeadingZeros, ...
	Float:      Mod, Ceil, Floor, Trunc, Round, IsNaN, IsInf, ...

The named aliases I8, I16, I32, I64, U8, U16, U32, U64, F32 and F64 cover
every supported kind. Wrappers can be created from a variety of sources:

	U32From(v uint32) U32
	UintOf[T](v T) Uint[T]
	UintFrom[T](v U) Uint[T]              // any native kind, see Convert
	UintFromString[T](s string) Uint[T]   // lenient, never fails
	UintFromBytes[T](b []byte) Uint[T]    // big-endian
	RandUint[T](source RandSource) Uint[T]

Cross-kind conversion is explicit. Promote performs it only when the
promotion table (see PromotionOf) says no value can be lost; Convert always
performs it and truncates, wraps or saturates as documented.

Integer arithmetic wraps on overflow and integer division by zero panics,
exactly as for the native operators. Float arithmetic is IEEE-754.

The byte representation is fixed-width big-endian, with b[0] holding the most
significant byte. Float kinds encode their IEEE-754 bit pattern.

Int, Uint and Float support the following formatting and marshalling
interfaces:

  - fmt.Formatter
  - fmt.Stringer
  - json.Marshaler
  - json.Unmarshaler
  - encoding.TextMarshaler
  - encoding.TextUnmarshaler
  - encoding.BinaryMarshaler
  - encoding.BinaryUnmarshaler
*/
package prim
