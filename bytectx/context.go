// Package bytectx provides a cursor over a borrowed byte slice with
// endian-aware primitive reads.
//
// A Context never copies or owns the bytes it reads from; it is only valid
// for as long as the caller keeps the backing slice alive. Every read that
// would cross the end of the slice fails with errs.ErrOutOfBounds rather
// than returning a short or zero-padded result.
package bytectx

import (
	"fmt"
	"math"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/h2gb/h2core/endian"
	"github.com/h2gb/h2core/errs"
)

// Context is a cursor over a borrowed byte slice.
//
// The zero value is not usable; construct one with New or NewAt.
type Context struct {
	data []byte
	pos  int
}

// New creates a Context positioned at the start of data.
func New(data []byte) Context {
	return Context{data: data}
}

// NewAt creates a Context positioned at offset within data.
func NewAt(data []byte, offset int) Context {
	return Context{data: data, pos: offset}
}

// At returns a new Context over the same bytes, repositioned at offset.
// The receiver is not modified.
func (c Context) At(offset int) Context {
	return Context{data: c.data, pos: offset}
}

// Pos returns the current cursor position.
func (c Context) Pos() int {
	return c.pos
}

// Len returns the total length of the backing byte slice.
func (c Context) Len() int {
	return len(c.data)
}

// Remaining returns the number of bytes available from the current
// position to the end of the backing slice.
func (c Context) Remaining() int {
	return len(c.data) - c.pos
}

// Bytes returns the entire backing slice. The caller must not modify it.
func (c Context) Bytes() []byte {
	return c.data
}

func (c *Context) checkBounds(n int) error {
	if n < 0 || c.pos < 0 || c.pos+n > len(c.data) {
		return fmt.Errorf("%w: need %d bytes at offset %d, have %d", errs.ErrOutOfBounds, n, c.pos, len(c.data))
	}

	return nil
}

// ReadBytes returns a borrowed sub-slice of n bytes starting at the current
// position and advances the cursor by n.
func (c *Context) ReadBytes(n int) ([]byte, error) {
	if err := c.checkBounds(n); err != nil {
		return nil, err
	}

	b := c.data[c.pos : c.pos+n]
	c.pos += n

	return b, nil
}

// PeekBytes is like ReadBytes but does not advance the cursor.
func (c Context) PeekBytes(n int) ([]byte, error) {
	if err := c.checkBounds(n); err != nil {
		return nil, err
	}

	return c.data[c.pos : c.pos+n], nil
}

// ReadU8 reads one unsigned byte and advances the cursor.
func (c *Context) ReadU8() (uint8, error) {
	b, err := c.ReadBytes(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// ReadI8 reads one signed byte and advances the cursor.
func (c *Context) ReadI8() (int8, error) {
	v, err := c.ReadU8()
	return int8(v), err //nolint:gosec
}

// ReadU16 reads a 2-byte unsigned integer using engine's byte order.
func (c *Context) ReadU16(engine endian.EndianEngine) (uint16, error) {
	b, err := c.ReadBytes(2)
	if err != nil {
		return 0, err
	}

	return engine.Uint16(b), nil
}

// ReadI16 reads a 2-byte signed integer using engine's byte order.
func (c *Context) ReadI16(engine endian.EndianEngine) (int16, error) {
	v, err := c.ReadU16(engine)
	return int16(v), err //nolint:gosec
}

// ReadU24 reads a 3-byte big-endian unsigned integer, widened into a
// uint32. U24 has no little-endian form in this engine, matching the
// reader's contract in the numeric package.
func (c *Context) ReadU24(engine endian.EndianEngine) (uint32, error) {
	b, err := c.ReadBytes(3)
	if err != nil {
		return 0, err
	}

	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2]), nil
}

// ReadU32 reads a 4-byte unsigned integer using engine's byte order.
func (c *Context) ReadU32(engine endian.EndianEngine) (uint32, error) {
	b, err := c.ReadBytes(4)
	if err != nil {
		return 0, err
	}

	return engine.Uint32(b), nil
}

// ReadI32 reads a 4-byte signed integer using engine's byte order.
func (c *Context) ReadI32(engine endian.EndianEngine) (int32, error) {
	v, err := c.ReadU32(engine)
	return int32(v), err //nolint:gosec
}

// ReadU64 reads an 8-byte unsigned integer using engine's byte order.
func (c *Context) ReadU64(engine endian.EndianEngine) (uint64, error) {
	b, err := c.ReadBytes(8)
	if err != nil {
		return 0, err
	}

	return engine.Uint64(b), nil
}

// ReadI64 reads an 8-byte signed integer using engine's byte order.
func (c *Context) ReadI64(engine endian.EndianEngine) (int64, error) {
	v, err := c.ReadU64(engine)
	return int64(v), err //nolint:gosec
}

// ReadU128 reads a 16-byte unsigned integer using engine's byte order,
// returned as (high, low) 64-bit halves in big-endian-of-halves order
// (Hi holds the most significant 64 bits regardless of engine).
func (c *Context) ReadU128(engine endian.EndianEngine) (hi uint64, lo uint64, err error) {
	b, err := c.ReadBytes(16)
	if err != nil {
		return 0, 0, err
	}

	if isBigEndian(engine) {
		return engine.Uint64(b[0:8]), engine.Uint64(b[8:16]), nil
	}

	return engine.Uint64(b[8:16]), engine.Uint64(b[0:8]), nil
}

// ReadI128 reads a 16-byte signed integer the same way as ReadU128.
func (c *Context) ReadI128(engine endian.EndianEngine) (hi int64, lo uint64, err error) {
	h, l, err := c.ReadU128(engine)
	return int64(h), l, err //nolint:gosec
}

// ReadF32 reads a 4-byte IEEE-754 float using engine's byte order.
func (c *Context) ReadF32(engine endian.EndianEngine) (float32, error) {
	v, err := c.ReadU32(engine)
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(v), nil
}

// ReadF64 reads an 8-byte IEEE-754 float using engine's byte order.
func (c *Context) ReadF64(engine endian.EndianEngine) (float64, error) {
	v, err := c.ReadU64(engine)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(v), nil
}

// ReadUTF8 decodes one UTF-8 code point starting at the current position
// and advances the cursor by the number of bytes consumed (1-4).
//
// It fails with ErrOutOfBounds if the leading byte declares a sequence
// that would cross the end of the slice, and ErrInvalidEncoding if the
// bytes present do not form a valid sequence. Neither failure mode
// advances the cursor or returns a partial character.
func (c *Context) ReadUTF8() (int, rune, error) {
	if c.pos >= len(c.data) {
		return 0, 0, fmt.Errorf("%w: no bytes remaining for utf-8 read", errs.ErrOutOfBounds)
	}

	lead := c.data[c.pos]
	size := utf8DecodedLen(lead)
	if size == 0 {
		return 0, 0, fmt.Errorf("%w: invalid utf-8 leading byte 0x%02x", errs.ErrInvalidEncoding, lead)
	}

	if c.pos+size > len(c.data) {
		return 0, 0, fmt.Errorf("%w: utf-8 sequence of %d bytes at offset %d exceeds buffer", errs.ErrOutOfBounds, size, c.pos)
	}

	chunk := c.data[c.pos : c.pos+size]

	r, n := utf8.DecodeRune(chunk)
	if r == utf8.RuneError && n <= 1 {
		return 0, 0, fmt.Errorf("%w: malformed utf-8 sequence at offset %d", errs.ErrInvalidEncoding, c.pos)
	}

	c.pos += size

	return size, r, nil
}

// utf8DecodedLen returns the expected byte length of a UTF-8 sequence from
// its leading byte, or 0 if the leading byte can't start a sequence.
func utf8DecodedLen(lead byte) int {
	switch {
	case lead&0x80 == 0x00:
		return 1
	case lead&0xE0 == 0xC0:
		return 2
	case lead&0xF0 == 0xE0:
		return 3
	case lead&0xF8 == 0xF0:
		return 4
	default:
		return 0
	}
}

// ReadUTF16 decodes one UTF-16 code point (2 or 4 bytes, handling
// surrogate pairs) using engine's byte order and advances the cursor.
func (c *Context) ReadUTF16(engine endian.EndianEngine) (int, rune, error) {
	u1, err := c.ReadU16(engine)
	if err != nil {
		return 0, 0, err
	}

	if !utf16.IsSurrogate(rune(u1)) {
		return 2, rune(u1), nil
	}

	b, err := c.PeekBytes(2)
	if err != nil {
		// Consumed the first unit already; a lone high surrogate at the
		// end of the buffer is invalid encoding, not merely short input.
		return 0, 0, fmt.Errorf("%w: truncated utf-16 surrogate pair", errs.ErrInvalidEncoding)
	}

	u2 := engine.Uint16(b)
	r := utf16.DecodeRune(rune(u1), rune(u2))
	if r == utf8.RuneError {
		return 0, 0, fmt.Errorf("%w: invalid utf-16 surrogate pair 0x%04x 0x%04x", errs.ErrInvalidEncoding, u1, u2)
	}

	c.pos += 2

	return 4, r, nil
}

// ReadUTF32 decodes one UTF-32 code point (4 bytes) using engine's byte
// order and advances the cursor.
func (c *Context) ReadUTF32(engine endian.EndianEngine) (int, rune, error) {
	v, err := c.ReadU32(engine)
	if err != nil {
		return 0, 0, err
	}

	r := rune(v)
	if !utf8.ValidRune(r) {
		return 0, 0, fmt.Errorf("%w: invalid utf-32 code point 0x%08x", errs.ErrInvalidEncoding, v)
	}

	return 4, r, nil
}

func isBigEndian(engine endian.EndianEngine) bool {
	return engine == endian.GetBigEndianEngine()
}
