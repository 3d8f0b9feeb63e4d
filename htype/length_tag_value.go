package htype

import (
	"github.com/h2gb/h2core/alignment"
	"github.com/h2gb/h2core/bytectx"
	"github.com/h2gb/h2core/numeric"
)

// lengthTagValueType is a type-length-value triple: a type-field selects
// which value-type describes the following bytes, a length-field gives
// the value's byte count, and an unrecognised type-code falls back to a
// default value-type (or, absent one, a raw array of U8s).
type lengthTagValueType struct {
	typeField   H2Type
	lengthField H2Type
	valueTypes  map[uint64]H2Type
	defaultType *H2Type // nil means fall back to a raw byte array
}

// LengthTagValue constructs an LTV node. valueTypes maps a type-code (the
// type-field's resolved integer value) to the H2Type describing the
// value that follows. defaultType, if non-nil, is used for unrecognised
// type-codes instead of the raw-byte-array fallback.
func LengthTagValue(typeField, lengthField H2Type, valueTypes map[uint64]H2Type, defaultType *H2Type) H2Type {
	return newType(alignment.None(), lengthTagValueType{
		typeField: typeField, lengthField: lengthField, valueTypes: valueTypes, defaultType: defaultType,
	})
}

func (t lengthTagValueType) resolve(ctx bytectx.Context, start int) (variantResult, error) {
	typeChild, err := Resolve(t.typeField, ctx, start, "Type")
	if err != nil {
		return variantResult{}, err
	}

	lengthChild, err := Resolve(t.lengthField, ctx, typeChild.AlignedEnd, "Length")
	if err != nil {
		return variantResult{}, err
	}

	valueStart := lengthChild.AlignedEnd

	var typeCode uint64
	if typeChild.AsInteger != nil {
		typeCode, _ = typeChild.AsInteger.AsU64() //nolint:errcheck
	}

	length := 0
	if lengthChild.AsInteger != nil {
		if u, lerr := lengthChild.AsInteger.AsU64(); lerr == nil {
			length = int(u) //nolint:gosec
		}
	}

	valueType, ok := t.valueTypes[typeCode]
	if !ok {
		if t.defaultType != nil {
			valueType = *t.defaultType
		} else {
			valueType = Array(Integer(numeric.U8(), numeric.NewRenderer(numeric.RendererHex)), length)
		}
	}

	valueChild, err := Resolve(valueType, ctx, valueStart, "Value")
	if err != nil {
		return variantResult{}, err
	}

	baseSize := (valueStart - start) + length

	display := "{ Type: " + typeChild.Display + ", Length: " + lengthChild.Display + ", Value: " + valueChild.Display + " }"

	return variantResult{
		baseSize: baseSize,
		display:  display,
		children: []ResolvedType{typeChild, lengthChild, valueChild},
	}, nil
}
