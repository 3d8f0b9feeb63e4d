package numeric

import (
	"github.com/h2gb/h2core/bytectx"
	"github.com/h2gb/h2core/endian"
)

// IntegerReader is a serializable description of "how to read an Integer
// at an offset": a width/signedness choice plus, where applicable, a byte
// order.
//
// Storing the reader itself (rather than just a value) is what lets an
// H2Type be re-resolved against a different context later and still
// produce the same kind of value.
type IntegerReader struct {
	kind   Kind
	engine endian.EndianEngine // nil for U8/I8, which have no byte order
	u24    bool                // true only for the U24() sentinel reader
}

// U8 reads a single unsigned byte.
func U8() IntegerReader { return IntegerReader{kind: KindU8} }

// I8 reads a single signed byte.
func I8() IntegerReader { return IntegerReader{kind: KindI8} }

// U16 reads a 2-byte unsigned integer with the given byte order.
func U16(e endian.EndianEngine) IntegerReader { return IntegerReader{kind: KindU16, engine: e} }

// I16 reads a 2-byte signed integer with the given byte order.
func I16(e endian.EndianEngine) IntegerReader { return IntegerReader{kind: KindI16, engine: e} }

// U24 reads a 3-byte big-endian unsigned integer, widened into a U32
// Integer whose declared Size() is still 3. U24 has no independent kind:
// it is a sizing variant of U32.
func U24() IntegerReader {
	return IntegerReader{kind: KindU32, engine: endian.GetBigEndianEngine(), u24: true}
}

// U32 reads a 4-byte unsigned integer with the given byte order.
func U32(e endian.EndianEngine) IntegerReader { return IntegerReader{kind: KindU32, engine: e} }

// I32 reads a 4-byte signed integer with the given byte order.
func I32(e endian.EndianEngine) IntegerReader { return IntegerReader{kind: KindI32, engine: e} }

// U64 reads an 8-byte unsigned integer with the given byte order.
func U64(e endian.EndianEngine) IntegerReader { return IntegerReader{kind: KindU64, engine: e} }

// I64 reads an 8-byte signed integer with the given byte order.
func I64(e endian.EndianEngine) IntegerReader { return IntegerReader{kind: KindI64, engine: e} }

// U128 reads a 16-byte unsigned integer with the given byte order.
func U128(e endian.EndianEngine) IntegerReader { return IntegerReader{kind: KindU128, engine: e} }

// I128 reads a 16-byte signed integer with the given byte order.
func I128(e endian.EndianEngine) IntegerReader { return IntegerReader{kind: KindI128, engine: e} }

// Kind returns the variant this reader produces.
func (r IntegerReader) Kind() Kind { return r.kind }

// Size returns the number of bytes Read consumes.
func (r IntegerReader) Size() int {
	if r.u24 {
		return 3
	}

	return r.kind.NaturalSize()
}

// Read consumes this reader's declared number of bytes from ctx and
// produces the corresponding Integer.
func (r IntegerReader) Read(ctx *bytectx.Context) (Integer, error) {
	switch r.kind {
	case KindU8:
		v, err := ctx.ReadU8()
		if err != nil {
			return Integer{}, err
		}

		return NewU8(v), nil
	case KindI8:
		v, err := ctx.ReadI8()
		if err != nil {
			return Integer{}, err
		}

		return NewI8(v), nil
	case KindU16:
		v, err := ctx.ReadU16(r.engine)
		if err != nil {
			return Integer{}, err
		}

		return NewU16(v), nil
	case KindI16:
		v, err := ctx.ReadI16(r.engine)
		if err != nil {
			return Integer{}, err
		}

		return NewI16(v), nil
	case KindU32:
		if r.u24 {
			v, err := ctx.ReadU24(r.engine)
			if err != nil {
				return Integer{}, err
			}

			return NewU32Sized(v, 3), nil
		}

		v, err := ctx.ReadU32(r.engine)
		if err != nil {
			return Integer{}, err
		}

		return NewU32(v), nil
	case KindI32:
		v, err := ctx.ReadI32(r.engine)
		if err != nil {
			return Integer{}, err
		}

		return NewI32(v), nil
	case KindU64:
		v, err := ctx.ReadU64(r.engine)
		if err != nil {
			return Integer{}, err
		}

		return NewU64(v), nil
	case KindI64:
		v, err := ctx.ReadI64(r.engine)
		if err != nil {
			return Integer{}, err
		}

		return NewI64(v), nil
	case KindU128:
		hi, lo, err := ctx.ReadU128(r.engine)
		if err != nil {
			return Integer{}, err
		}

		return NewU128(hi, lo), nil
	default: // KindI128
		hi, lo, err := ctx.ReadI128(r.engine)
		if err != nil {
			return Integer{}, err
		}

		return NewI128(hi, lo), nil
	}
}
