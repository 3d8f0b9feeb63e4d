// Package numeric provides size-preserving tagged numeric and character
// values, together with the readers that extract them from a byte context
// and the renderers that turn them back into display strings.
//
// This mirrors the teacher's encoding package (fixed-width values read
// through an endian.EndianEngine) but generalizes it from "float64 metric
// values" to the full integer/float/character value space an annotated
// byte buffer can hold.
package numeric

import (
	"fmt"
	"math/big"

	"github.com/h2gb/h2core/errs"
)

// Kind identifies which of the ten integer variants a value holds.
type Kind uint8

const (
	KindU8 Kind = iota
	KindU16
	KindU32
	KindU64
	KindU128
	KindI8
	KindI16
	KindI32
	KindI64
	KindI128
)

// String returns the variant's name, e.g. "U32".
func (k Kind) String() string {
	switch k {
	case KindU8:
		return "U8"
	case KindU16:
		return "U16"
	case KindU32:
		return "U32"
	case KindU64:
		return "U64"
	case KindU128:
		return "U128"
	case KindI8:
		return "I8"
	case KindI16:
		return "I16"
	case KindI32:
		return "I32"
	case KindI64:
		return "I64"
	case KindI128:
		return "I128"
	default:
		return "Unknown"
	}
}

// ParseKind reverses Kind.String, failing with errs.ErrSerialization for
// any other input.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "U8":
		return KindU8, nil
	case "U16":
		return KindU16, nil
	case "U32":
		return KindU32, nil
	case "U64":
		return KindU64, nil
	case "U128":
		return KindU128, nil
	case "I8":
		return KindI8, nil
	case "I16":
		return KindI16, nil
	case "I32":
		return KindI32, nil
	case "I64":
		return KindI64, nil
	case "I128":
		return KindI128, nil
	default:
		return 0, fmt.Errorf("%w: unrecognized integer kind %q", errs.ErrSerialization, s)
	}
}

// Signed reports whether the variant is a signed integer kind.
func (k Kind) Signed() bool {
	return k >= KindI8
}

// NaturalSize returns the variant's natural byte width.
func (k Kind) NaturalSize() int {
	switch k {
	case KindU8, KindI8:
		return 1
	case KindU16, KindI16:
		return 2
	case KindU32, KindI32:
		return 4
	case KindU64, KindI64:
		return 8
	case KindU128, KindI128:
		return 16
	default:
		return 0
	}
}

// Integer is a tagged sum over the ten signed/unsigned integer widths.
//
// It carries its own reported byte size separately from its Kind's natural
// width, because a reader such as U24 widens its result into the U32 slot
// while keeping a 3-byte declared size (spec: readers that read a
// non-power-of-two width still produce a value whose Size() reflects what
// was actually read).
//
// For 128-bit variants, the value is split across hi/lo 64-bit halves:
// hi holds the most significant 64 bits (sign-extended for I128), lo the
// least significant 64 bits (always treated as unsigned bits).
type Integer struct {
	kind Kind
	size int
	hi   uint64
	lo   uint64
}

func newSized(kind Kind, size int, hi, lo uint64) Integer {
	return Integer{kind: kind, size: size, hi: hi, lo: lo}
}

// NewU8 constructs a U8 integer.
func NewU8(v uint8) Integer { return newSized(KindU8, 1, 0, uint64(v)) }

// NewU16 constructs a U16 integer.
func NewU16(v uint16) Integer { return newSized(KindU16, 2, 0, uint64(v)) }

// NewU32 constructs a U32 integer with its natural 4-byte size.
func NewU32(v uint32) Integer { return newSized(KindU32, 4, 0, uint64(v)) }

// NewU32Sized constructs a U32 integer with an explicit declared size,
// for readers (like U24) that widen into the U32 slot.
func NewU32Sized(v uint32, size int) Integer { return newSized(KindU32, size, 0, uint64(v)) }

// NewU64 constructs a U64 integer.
func NewU64(v uint64) Integer { return newSized(KindU64, 8, 0, v) }

// NewU128 constructs a U128 integer from big/little 64-bit halves.
func NewU128(hi, lo uint64) Integer { return newSized(KindU128, 16, hi, lo) }

// NewI8 constructs an I8 integer.
func NewI8(v int8) Integer { return newSized(KindI8, 1, 0, uint64(uint8(v))) }

// NewI16 constructs an I16 integer.
func NewI16(v int16) Integer { return newSized(KindI16, 2, 0, uint64(uint16(v))) }

// NewI32 constructs an I32 integer.
func NewI32(v int32) Integer { return newSized(KindI32, 4, 0, uint64(uint32(v))) }

// NewI64 constructs an I64 integer.
func NewI64(v int64) Integer { return newSized(KindI64, 8, 0, uint64(v)) }

// NewI128 constructs an I128 integer from a signed high half and unsigned
// low half.
func NewI128(hi int64, lo uint64) Integer { return newSized(KindI128, 16, uint64(hi), lo) } //nolint:gosec

// Kind returns the integer's variant.
func (i Integer) Kind() Kind { return i.kind }

// Size returns the reported byte size of the value as it was read, which
// may differ from Kind().NaturalSize() (see U24).
func (i Integer) Size() int { return i.size }

// Hi returns the high 64 bits, meaningful only for 128-bit variants.
func (i Integer) Hi() uint64 { return i.hi }

// Lo returns the low 64 bits (or the whole value, for <=64-bit variants).
func (i Integer) Lo() uint64 { return i.lo }

// Equal reports whether two Integers have the same variant and value.
// Integer{U8, 1} and Integer{U16, 1} are NOT equal, by design: width is
// part of identity. Use Compare for numeric-only comparison.
func (i Integer) Equal(other Integer) bool {
	return i.kind == other.kind && i.hi == other.hi && i.lo == other.lo
}

// AsU64 projects the value onto an unsigned 64-bit integer.
//
// It fails with errs.ErrOutOfRange for 128-bit variants (which cannot fit)
// and for negative signed values (a sign mismatch).
func (i Integer) AsU64() (uint64, error) {
	if i.kind == KindU128 || i.kind == KindI128 {
		return 0, fmt.Errorf("%w: %s cannot be projected to u64", errs.ErrOutOfRange, i.kind)
	}

	if i.kind.Signed() {
		sv := i.asSigned64()
		if sv < 0 {
			return 0, fmt.Errorf("%w: negative %s value %d has no unsigned projection", errs.ErrOutOfRange, i.kind, sv)
		}

		return uint64(sv), nil
	}

	return i.lo, nil
}

// AsI64 projects the value onto a signed 64-bit integer.
//
// It fails with errs.ErrOutOfRange for 128-bit variants and for unsigned
// 64-bit values that overflow int64.
func (i Integer) AsI64() (int64, error) {
	if i.kind == KindU128 || i.kind == KindI128 {
		return 0, fmt.Errorf("%w: %s cannot be projected to i64", errs.ErrOutOfRange, i.kind)
	}

	if !i.kind.Signed() {
		if i.kind == KindU64 && i.lo > uint64(1<<63-1) {
			return 0, fmt.Errorf("%w: u64 value %d overflows i64", errs.ErrOutOfRange, i.lo)
		}

		return int64(i.lo), nil //nolint:gosec
	}

	return i.asSigned64(), nil
}

// asSigned64 sign-extends a <=64-bit signed value stored in lo.
func (i Integer) asSigned64() int64 {
	switch i.kind {
	case KindI8:
		return int64(int8(i.lo)) //nolint:gosec
	case KindI16:
		return int64(int16(i.lo)) //nolint:gosec
	case KindI32:
		return int64(int32(i.lo)) //nolint:gosec
	default:
		return int64(i.lo) //nolint:gosec
	}
}

// BigInt returns the value as an exact arbitrary-precision integer. This
// is the basis for Compare, which must handle 128-bit values that AsU64/
// AsI64 deliberately reject.
func (i Integer) BigInt() *big.Int {
	if i.kind != KindU128 && i.kind != KindI128 {
		if i.kind.Signed() {
			return big.NewInt(i.asSigned64())
		}

		return new(big.Int).SetUint64(i.lo)
	}

	lo := new(big.Int).SetUint64(i.lo)
	hi := new(big.Int).SetUint64(i.hi)
	hi.Lsh(hi, 64)
	v := new(big.Int).Or(hi, lo)

	if i.kind == KindI128 && int64(i.hi) < 0 { //nolint:gosec
		// Two's complement: subtract 2^128.
		mod := new(big.Int).Lsh(big.NewInt(1), 128)
		v.Sub(v, mod)
	}

	return v
}

// Compare returns -1, 0, or 1 for i<other, i==other, i>other numerically,
// regardless of variant width. Unlike Equal, Integer::U8(1) and
// Integer::U32(1) compare equal here by design (see Equal).
func (i Integer) Compare(other Integer) int {
	return i.BigInt().Cmp(other.BigInt())
}

// CanProjectU64 reports whether AsU64 would succeed without erroring.
func (i Integer) CanProjectU64() bool {
	_, err := i.AsU64()
	return err == nil
}
