// Package htype implements the recursive type descriptor (H2Type) and its
// resolution against a byte context into a concrete ResolvedType.
package htype

import (
	"github.com/h2gb/h2core/numeric"
)

// Related is an absolute offset and the type that describes the bytes a
// type node points at (e.g. a pointer's destination).
type Related struct {
	Offset int
	Type   H2Type
}

// ResolvedType is the immutable, self-contained result of applying an
// H2Type to a byte context at a given offset.
type ResolvedType struct {
	BaseStart, BaseEnd       int
	AlignedStart, AlignedEnd int

	FieldName string // empty when not produced as a named struct field
	Display   string

	Children []ResolvedType
	Related  []Related

	AsString    *string
	AsInteger   *numeric.Integer
	AsFloat     *numeric.Float
	AsCharacter *numeric.Character
}

// BaseSize returns the width of the unaligned byte range.
func (r ResolvedType) BaseSize() int { return r.BaseEnd - r.BaseStart }

// AlignedSize returns the width of the aligned byte range.
func (r ResolvedType) AlignedSize() int { return r.AlignedEnd - r.AlignedStart }

// String renders the resolved display string.
func (r ResolvedType) String() string { return r.Display }
