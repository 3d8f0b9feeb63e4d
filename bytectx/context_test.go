package bytectx

import (
	"testing"

	"github.com/h2gb/h2core/endian"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadU8Boundary(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}

	ctx := NewAt(data, len(data)-1)
	v, err := ctx.ReadU8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x03), v)

	ctx2 := NewAt(data, len(data))
	_, err = ctx2.ReadU8()
	require.Error(t, err)
}

func TestReadU16Boundary(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}

	ctx := NewAt(data, len(data)-1)
	_, err := ctx.ReadU16(endian.GetBigEndianEngine())
	require.Error(t, err)

	ctx2 := NewAt(data, len(data)-2)
	v, err := ctx2.ReadU16(endian.GetBigEndianEngine())
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0203), v)
}

func TestReadU32BigEndian(t *testing.T) {
	data := []byte{0x01, 0x23, 0x45, 0x67}
	ctx := New(data)

	v, err := ctx.ReadU32(endian.GetBigEndianEngine())
	require.NoError(t, err)
	assert.Equal(t, uint32(0x01234567), v)
	assert.Equal(t, 4, ctx.Pos())
}

func TestAtDoesNotMutateReceiver(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	ctx := New(data)

	_, _ = ctx.ReadU8()
	moved := ctx.At(3)

	assert.Equal(t, 1, ctx.Pos())
	assert.Equal(t, 3, moved.Pos())
}

func TestReadUTF8Snowflake(t *testing.T) {
	data := []byte{0xE2, 0x9D, 0x84}
	ctx := New(data)

	n, r, err := ctx.ReadUTF8()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, '❄', r)
	assert.Equal(t, 3, ctx.Pos())
}

func TestReadUTF8TruncatedFailsWithoutPartialChar(t *testing.T) {
	// Leading byte declares a 3-byte sequence but only 2 bytes remain.
	data := []byte{0xE2, 0x9D}
	ctx := New(data)

	_, _, err := ctx.ReadUTF8()
	require.Error(t, err)
	assert.Equal(t, 0, ctx.Pos())
}

func TestReadUTF8InvalidLeadingByte(t *testing.T) {
	data := []byte{0xFF}
	ctx := New(data)

	_, _, err := ctx.ReadUTF8()
	require.Error(t, err)
}

func TestReadUTF16SurrogatePair(t *testing.T) {
	// U+1F600 GRINNING FACE, big-endian UTF-16 surrogate pair.
	data := []byte{0xD8, 0x3D, 0xDE, 0x00}
	ctx := New(data)

	n, r, err := ctx.ReadUTF16(endian.GetBigEndianEngine())
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, rune(0x1F600), r)
}

func TestReadBytesOutOfBounds(t *testing.T) {
	data := []byte{0x01, 0x02}
	ctx := New(data)

	_, err := ctx.ReadBytes(3)
	require.Error(t, err)
}
