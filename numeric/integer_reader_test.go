package numeric

import (
	"testing"

	"github.com/h2gb/h2core/bytectx"
	"github.com/h2gb/h2core/endian"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestU32BigEndianRead(t *testing.T) {
	data := []byte{0x01, 0x23, 0x45, 0x67}
	ctx := bytectx.New(data)

	v, err := U32(endian.GetBigEndianEngine()).Read(&ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x01234567), v.Lo())
	assert.Equal(t, 4, v.Size())
}

func TestU24WidensIntoU32WithDeclaredSize3(t *testing.T) {
	data := []byte{0x12, 0x34, 0x56, 0xFF}
	ctx := bytectx.New(data)

	v, err := U24().Read(&ctx)
	require.NoError(t, err)
	assert.Equal(t, KindU32, v.Kind())
	assert.Equal(t, 3, v.Size())
	assert.Equal(t, uint64(0x123456), v.Lo())
	assert.Equal(t, 3, ctx.Pos())
}

func TestI8ReadBoundary(t *testing.T) {
	data := []byte{0xFF}
	ctx := bytectx.New(data)

	v, err := I8().Read(&ctx)
	require.NoError(t, err)
	got, err := v.AsI64()
	require.NoError(t, err)
	assert.Equal(t, int64(-1), got)
}

func TestU128ReadBigEndian(t *testing.T) {
	data := make([]byte, 16)
	data[15] = 0x01
	data[0] = 0x02
	ctx := bytectx.New(data)

	v, err := U128(endian.GetBigEndianEngine()).Read(&ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x02)<<56, v.Hi())
	assert.Equal(t, uint64(0x01), v.Lo())
}
