package htype

import (
	"fmt"

	"github.com/h2gb/h2core/alignment"
	"github.com/h2gb/h2core/bytectx"
	"github.com/h2gb/h2core/endian"
)

// uuidType reads a 16-byte value and renders it as a standard UUID
// string, optionally tagged with its recognised version.
type uuidType struct {
	engine         endian.EndianEngine
	includeVersion bool
}

// UUID constructs a 16-byte UUID node. When includeVersion is set, the
// display is suffixed with a parenthesised version tag, e.g.
// "... (UUIDv4 / Random)".
func UUID(e endian.EndianEngine, includeVersion bool) H2Type {
	return newType(alignment.None(), uuidType{engine: e, includeVersion: includeVersion})
}

func (t uuidType) resolve(ctx bytectx.Context, start int) (variantResult, error) {
	c := ctx.At(start)

	b, err := c.ReadBytes(16)
	if err != nil {
		return variantResult{}, err
	}

	// UUID byte layout is big-endian regardless of the reader's engine;
	// a little-endian reader reverses all 16 bytes before the canonical
	// big-endian string form is built.
	ordered := make([]byte, 16)
	copy(ordered, b)

	if !isBigEndian(t.engine) {
		for i := 0; i < 16; i++ {
			ordered[i] = b[15-i]
		}
	}

	s := fmt.Sprintf("%08x-%04x-%04x-%04x-%012x",
		ordered[0:4], ordered[4:6], ordered[6:8], ordered[8:10], ordered[10:16])

	if t.includeVersion {
		s += " (" + versionTag(ordered) + ")"
	}

	return variantResult{baseSize: 16, display: s, asString: &s}, nil
}

func isBigEndian(e endian.EndianEngine) bool {
	return e == endian.GetBigEndianEngine()
}

// versionTag classifies a UUID by its version nibble (byte 6, high bits)
// and the special-case all-zero "Nil UUID".
func versionTag(b []byte) string {
	allZero := true

	for _, x := range b {
		if x != 0 {
			allZero = false
			break
		}
	}

	if allZero {
		return "Nil UUID"
	}

	switch b[6] >> 4 {
	case 1:
		return "UUIDv1 / MAC"
	case 2:
		return "UUIDv2 / DCE"
	case 3:
		return "UUIDv3 / MD5"
	case 4:
		return "UUIDv4 / Random"
	case 5:
		return "UUIDv5 / SHA1"
	default:
		return "Invalid UUID"
	}
}
