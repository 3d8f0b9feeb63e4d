package htype

import (
	"strings"

	"github.com/h2gb/h2core/alignment"
	"github.com/h2gb/h2core/bytectx"
)

// arrayType is a fixed-count sequence of elements of a single element
// type, laid out sequentially (each element's aligned end is the next
// element's start).
type arrayType struct {
	element H2Type
	count   int
}

// Array constructs a node holding count sequential elements of element.
// A count of 0 resolves to an empty array whose base and aligned ranges
// are both [start, start), regardless of the array's own Alignment.
func Array(element H2Type, count int) H2Type {
	return newType(alignment.None(), arrayType{element: element, count: count})
}

// ArrayAligned is Array with an explicit Alignment.
func ArrayAligned(align alignment.Alignment, element H2Type, count int) H2Type {
	return newType(align, arrayType{element: element, count: count})
}

func (t arrayType) resolve(ctx bytectx.Context, start int) (variantResult, error) {
	if t.count == 0 {
		return variantResult{baseSize: 0, display: "[ ]", skipAlignment: true}, nil
	}

	children := make([]ResolvedType, 0, t.count)
	cursor := start

	for i := 0; i < t.count; i++ {
		child, err := Resolve(t.element, ctx, cursor, "")
		if err != nil {
			return variantResult{}, err
		}

		children = append(children, child)
		cursor = child.AlignedEnd
	}

	parts := make([]string, len(children))
	for i, c := range children {
		parts[i] = c.Display
	}

	display := "[ " + strings.Join(parts, ", ") + " ]"

	return variantResult{
		baseSize: cursor - start,
		display:  display,
		children: children,
	}, nil
}
