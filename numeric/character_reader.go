package numeric

import (
	"fmt"

	"github.com/h2gb/h2core/bytectx"
	"github.com/h2gb/h2core/endian"
	"github.com/h2gb/h2core/errs"
)

// CharacterReaderKind identifies which character encoding a CharacterReader
// decodes.
type CharacterReaderKind uint8

const (
	CharacterReaderASCII CharacterReaderKind = iota
	CharacterReaderUTF8
	CharacterReaderUTF16
	CharacterReaderUTF32
)

// String returns the variant's name, e.g. "UTF16".
func (k CharacterReaderKind) String() string {
	switch k {
	case CharacterReaderASCII:
		return "ASCII"
	case CharacterReaderUTF8:
		return "UTF8"
	case CharacterReaderUTF16:
		return "UTF16"
	case CharacterReaderUTF32:
		return "UTF32"
	default:
		return "Unknown"
	}
}

// ParseCharacterReaderKind reverses CharacterReaderKind.String, failing
// with errs.ErrSerialization for any other input.
func ParseCharacterReaderKind(s string) (CharacterReaderKind, error) {
	switch s {
	case "ASCII":
		return CharacterReaderASCII, nil
	case "UTF8":
		return CharacterReaderUTF8, nil
	case "UTF16":
		return CharacterReaderUTF16, nil
	case "UTF32":
		return CharacterReaderUTF32, nil
	default:
		return 0, fmt.Errorf("%w: unrecognized character reader kind %q", errs.ErrSerialization, s)
	}
}

// CharacterReader is a serializable description of "how to decode one
// Character at an offset".
//
// ASCII and UTF-32 have a fixed size; UTF-8 (a 1-4 byte sequence) and
// UTF-16 (2 bytes, or 4 for a surrogate pair) have a size that is only
// known after a successful read, and Size reports -1 for those.
type CharacterReader struct {
	kind       CharacterReaderKind
	engine     endian.EndianEngine // used by UTF-16/UTF-32 only
	permissive bool                // ASCII only: accept bytes >= 0x80
}

// ASCII reads a single byte as an ASCII character. In strict mode, bytes
// with the high bit set fail with errs.ErrInvalidEncoding; in permissive
// mode they are accepted and decoded as the matching Latin-1 code point.
func ASCII(permissive bool) CharacterReader {
	return CharacterReader{kind: CharacterReaderASCII, permissive: permissive}
}

// UTF8 decodes a variable-length (1-4 byte) UTF-8 code point.
func UTF8() CharacterReader { return CharacterReader{kind: CharacterReaderUTF8} }

// UTF16 decodes a UTF-16 code point (2 or 4 bytes for a surrogate pair)
// using the given byte order.
func UTF16(e endian.EndianEngine) CharacterReader {
	return CharacterReader{kind: CharacterReaderUTF16, engine: e}
}

// UTF32 decodes a 4-byte UTF-32 code point using the given byte order.
func UTF32(e endian.EndianEngine) CharacterReader {
	return CharacterReader{kind: CharacterReaderUTF32, engine: e}
}

// Kind returns this reader's encoding.
func (r CharacterReader) Kind() CharacterReaderKind { return r.kind }

// Size returns the reader's fixed byte size, or -1 for UTF-8 and UTF-16,
// whose size is known only after a successful Read.
func (r CharacterReader) Size() int {
	switch r.kind {
	case CharacterReaderASCII:
		return 1
	case CharacterReaderUTF16:
		return -1 // 2 or 4, depending on surrogate pairing
	case CharacterReaderUTF32:
		return 4
	default: // UTF8
		return -1
	}
}

// Read decodes one Character from ctx, advancing the cursor by whatever
// size the encoding actually consumed.
func (r CharacterReader) Read(ctx *bytectx.Context) (Character, error) {
	switch r.kind {
	case CharacterReaderASCII:
		b, err := ctx.ReadU8()
		if err != nil {
			return Character{}, err
		}

		if b >= 0x80 && !r.permissive {
			return Character{}, fmt.Errorf("%w: byte 0x%02x is not valid strict ASCII", errs.ErrInvalidEncoding, b)
		}

		return NewCharacter(rune(b), 1), nil
	case CharacterReaderUTF16:
		n, rn, err := ctx.ReadUTF16(r.engine)
		if err != nil {
			return Character{}, err
		}

		return NewCharacter(rn, n), nil
	case CharacterReaderUTF32:
		n, rn, err := ctx.ReadUTF32(r.engine)
		if err != nil {
			return Character{}, err
		}

		return NewCharacter(rn, n), nil
	default: // UTF8
		n, rn, err := ctx.ReadUTF8()
		if err != nil {
			return Character{}, err
		}

		return NewCharacter(rn, n), nil
	}
}
