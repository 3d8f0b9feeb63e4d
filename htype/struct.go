package htype

import (
	"strings"

	"github.com/h2gb/h2core/alignment"
	"github.com/h2gb/h2core/bytectx"
)

// StructField is one named field of a Struct node.
type StructField struct {
	Name string
	Type H2Type
}

// structType is an ordered sequence of named fields, resolved strictly
// left-to-right; field N+1 starts at field N's aligned end.
type structType struct {
	fields []StructField
}

// Struct constructs a node from an ordered list of named fields.
func Struct(fields []StructField) H2Type {
	return newType(alignment.None(), structType{fields: fields})
}

// StructAligned is Struct with an explicit Alignment.
func StructAligned(align alignment.Alignment, fields []StructField) H2Type {
	return newType(align, structType{fields: fields})
}

func (t structType) resolve(ctx bytectx.Context, start int) (variantResult, error) {
	children := make([]ResolvedType, 0, len(t.fields))
	cursor := start

	for _, f := range t.fields {
		child, err := Resolve(f.Type, ctx, cursor, f.Name)
		if err != nil {
			return variantResult{}, err
		}

		children = append(children, child)
		cursor = child.AlignedEnd
	}

	parts := make([]string, len(children))
	for i, c := range children {
		parts[i] = c.FieldName + ": " + c.Display
	}

	display := "{ " + strings.Join(parts, ", ") + " }"

	return variantResult{
		baseSize: cursor - start,
		display:  display,
		children: children,
	}, nil
}
