package numeric

import (
	"github.com/h2gb/h2core/bytectx"
	"github.com/h2gb/h2core/endian"
)

// FloatReader is a serializable description of "how to read a Float at an
// offset": a width choice plus byte order.
type FloatReader struct {
	kind   FloatKind
	engine endian.EndianEngine
}

// F32Reader reads a 4-byte IEEE-754 float with the given byte order.
func F32Reader(e endian.EndianEngine) FloatReader { return FloatReader{kind: FloatKindF32, engine: e} }

// F64Reader reads an 8-byte IEEE-754 float with the given byte order.
func F64Reader(e endian.EndianEngine) FloatReader { return FloatReader{kind: FloatKindF64, engine: e} }

// Kind returns the variant this reader produces.
func (r FloatReader) Kind() FloatKind { return r.kind }

// Size returns the number of bytes Read consumes.
func (r FloatReader) Size() int {
	if r.kind == FloatKindF32 {
		return 4
	}

	return 8
}

// Read consumes this reader's declared number of bytes from ctx and
// produces the corresponding Float.
func (r FloatReader) Read(ctx *bytectx.Context) (Float, error) {
	if r.kind == FloatKindF32 {
		v, err := ctx.ReadF32(r.engine)
		if err != nil {
			return Float{}, err
		}

		return NewF32(v), nil
	}

	v, err := ctx.ReadF64(r.engine)
	if err != nil {
		return Float{}, err
	}

	return NewF64(v), nil
}
