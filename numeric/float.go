package numeric

import (
	"fmt"

	"github.com/h2gb/h2core/errs"
)

// FloatKind identifies which of the two float variants a value holds.
type FloatKind uint8

const (
	FloatKindF32 FloatKind = iota
	FloatKindF64
)

// String returns the variant's name, e.g. "F32".
func (k FloatKind) String() string {
	if k == FloatKindF32 {
		return "F32"
	}

	return "F64"
}

// ParseFloatKind reverses FloatKind.String, failing with
// errs.ErrSerialization for any other input.
func ParseFloatKind(s string) (FloatKind, error) {
	switch s {
	case "F32":
		return FloatKindF32, nil
	case "F64":
		return FloatKindF64, nil
	default:
		return 0, fmt.Errorf("%w: unrecognized float kind %q", errs.ErrSerialization, s)
	}
}

// Float is a tagged sum over {F32, F64}.
//
// Unlike Integer, Float equality and ordering always widen to float64
// before comparing — two Float values of different kinds but the same
// numeric value compare equal. Floats are only partially ordered: NaN
// compares unequal to everything, including itself, so Compare reports
// whether the comparison was even meaningful via its second return value.
type Float struct {
	kind FloatKind
	v    float64
}

// NewF32 constructs an F32 float.
func NewF32(v float32) Float { return Float{kind: FloatKindF32, v: float64(v)} }

// NewF64 constructs an F64 float.
func NewF64(v float64) Float { return Float{kind: FloatKindF64, v: v} }

// Kind returns the float's variant.
func (f Float) Kind() FloatKind { return f.kind }

// Size returns the reported byte size: 4 for F32, 8 for F64.
func (f Float) Size() int {
	if f.kind == FloatKindF32 {
		return 4
	}

	return 8
}

// AsF64 returns the value widened to float64.
func (f Float) AsF64() float64 { return f.v }

// AsF32 returns the value narrowed to float32. This is lossy for an F64
// value that doesn't fit in float32 precision; callers that need the
// original reader's width should prefer AsF64 unless Kind() is F32.
func (f Float) AsF32() float32 { return float32(f.v) }

// Equal reports whether two Float values are numerically equal once
// widened to float64. NaN is never equal to anything, including itself.
func (f Float) Equal(other Float) bool {
	return f.v == other.v
}

// Compare returns -1, 0, or 1 for f<other, f==other, f>other by comparing
// the widened float64 values. ok is false if either operand is NaN, in
// which case the returned ordering is meaningless.
func (f Float) Compare(other Float) (ordering int, ok bool) {
	if f.v != f.v || other.v != other.v { // NaN check without importing math
		return 0, false
	}

	switch {
	case f.v < other.v:
		return -1, true
	case f.v > other.v:
		return 1, true
	default:
		return 0, true
	}
}
