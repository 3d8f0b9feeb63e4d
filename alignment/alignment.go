// Package alignment implements the range-transform policies applied to a
// resolved type's base byte range.
//
// Alignment never mutates data; it only widens a [start, start+size) base
// range into an aligned range that is a superset of it.
package alignment

import (
	"fmt"

	"github.com/h2gb/h2core/errs"
)

// Kind identifies which alignment policy an Alignment applies.
type Kind uint8

const (
	KindNone Kind = iota
	KindLoose
	KindStrict
	KindBefore
	KindAfter
)

// String returns the policy's name, e.g. "Loose".
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindLoose:
		return "Loose"
	case KindStrict:
		return "Strict"
	case KindBefore:
		return "Before"
	case KindAfter:
		return "After"
	default:
		return "Unknown"
	}
}

// ParseKind reverses Kind.String, failing with errs.ErrSerialization for
// any other input.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "None":
		return KindNone, nil
	case "Loose":
		return KindLoose, nil
	case "Strict":
		return KindStrict, nil
	case "Before":
		return KindBefore, nil
	case "After":
		return KindAfter, nil
	default:
		return 0, fmt.Errorf("%w: unrecognized alignment kind %q", errs.ErrSerialization, s)
	}
}

// Alignment is a serializable range-transform policy.
type Alignment struct {
	kind Kind
	n    int
}

// None applies no padding; the aligned range equals the base range.
func None() Alignment { return Alignment{kind: KindNone} }

// Loose rounds the base size up to the next multiple of n.
func Loose(n int) Alignment { return Alignment{kind: KindLoose, n: n} }

// Strict rounds the base size up to n, failing if the base size already
// exceeds n (it allows exactly one step of rounding, not several).
func Strict(n int) Alignment { return Alignment{kind: KindStrict, n: n} }

// Before pads backward, moving the aligned start down to the nearest
// multiple of n at or before the base start. The end is unchanged.
func Before(n int) Alignment { return Alignment{kind: KindBefore, n: n} }

// After pads forward, moving the aligned end up to the nearest multiple
// of n at or after the base end. The start is unchanged.
func After(n int) Alignment { return Alignment{kind: KindAfter, n: n} }

// Kind returns the alignment's policy.
func (a Alignment) Kind() Kind { return a.kind }

// N returns the alignment's modulus, meaningless for KindNone.
func (a Alignment) N() int { return a.n }

// Apply transforms the base range [start, start+size) into an aligned
// range [alignedStart, alignedEnd) satisfying alignedStart <= start and
// alignedEnd >= start+size.
func (a Alignment) Apply(start, size int) (alignedStart, alignedEnd int, err error) {
	end := start + size

	switch a.kind {
	case KindNone:
		return start, end, nil

	case KindLoose:
		return start, start + roundUp(size, a.n), nil

	case KindStrict:
		if size > a.n {
			return 0, 0, fmt.Errorf("%w: strict alignment %d cannot hold base size %d", errs.ErrInvalidType, a.n, size)
		}

		return start, start + a.n, nil

	case KindBefore:
		return roundDown(start, a.n), end, nil

	case KindAfter:
		return start, roundUp(end, a.n), nil

	default:
		return 0, 0, fmt.Errorf("%w: unknown alignment kind %d", errs.ErrInvalidType, a.kind)
	}
}

// roundUp returns the smallest multiple of n that is >= v.
func roundUp(v, n int) int {
	if n <= 0 {
		return v
	}

	if v%n == 0 {
		return v
	}

	return (v/n + 1) * n
}

// roundDown returns the largest multiple of n that is <= v.
func roundDown(v, n int) int {
	if n <= 0 {
		return v
	}

	if v%n == 0 {
		return v
	}

	return (v / n) * n
}
