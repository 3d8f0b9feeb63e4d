package htype

import (
	"fmt"

	"github.com/h2gb/h2core/alignment"
	"github.com/h2gb/h2core/bytectx"
	"github.com/h2gb/h2core/errs"
	"github.com/h2gb/h2core/numeric"
)

// variantResult is what a variant contributes to resolution before the
// common Resolve wrapper applies alignment and field naming.
type variantResult struct {
	baseSize    int
	display     string
	children    []ResolvedType
	related     []Related
	asString    *string
	asInteger   *numeric.Integer
	asFloat     *numeric.Float
	asCharacter *numeric.Character

	// skipAlignment forces aligned_range = base_range regardless of the
	// node's Alignment. Used only by the zero-length Array edge case.
	skipAlignment bool
}

// variant is implemented by each concrete node kind (Integer, Struct,
// Array, ...). ctx is positioned wherever the variant needs it; a variant
// that reads fixed-width primitives will typically call ctx.At(start)
// itself before reading.
type variant interface {
	resolve(ctx bytectx.Context, start int) (variantResult, error)
}

// H2Type is a recursive type descriptor: an alignment policy plus one of
// the concrete variant kinds (Integer, Float, Character, EnumLookup,
// Bitmask, IPv4, IPv6, MAC6, MAC8, UUID, RGB, Blob, Array, Struct,
// LengthTagValue).
type H2Type struct {
	Alignment alignment.Alignment
	v         variant
}

func newType(align alignment.Alignment, v variant) H2Type {
	return H2Type{Alignment: align, v: v}
}

// Resolve applies t to ctx at the given byte offset, producing a
// ResolvedType. fieldName is recorded on the result when t was resolved
// as a named struct field; pass "" otherwise.
func Resolve(t H2Type, ctx bytectx.Context, start int, fieldName string) (ResolvedType, error) {
	if t.v == nil {
		return ResolvedType{}, fmt.Errorf("%w: empty H2Type", errs.ErrInvalidType)
	}

	vr, err := t.v.resolve(ctx, start)
	if err != nil {
		return ResolvedType{}, err
	}

	baseEnd := start + vr.baseSize

	alignedStart, alignedEnd := start, baseEnd
	if !vr.skipAlignment {
		alignedStart, alignedEnd, err = t.Alignment.Apply(start, vr.baseSize)
		if err != nil {
			return ResolvedType{}, err
		}
	}

	return ResolvedType{
		BaseStart:    start,
		BaseEnd:      baseEnd,
		AlignedStart: alignedStart,
		AlignedEnd:   alignedEnd,
		FieldName:    fieldName,
		Display:      vr.display,
		Children:     vr.children,
		Related:      vr.related,
		AsString:     vr.asString,
		AsInteger:    vr.asInteger,
		AsFloat:      vr.asFloat,
		AsCharacter:  vr.asCharacter,
	}, nil
}
