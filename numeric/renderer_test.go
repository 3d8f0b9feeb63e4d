package numeric

import (
	"testing"

	"github.com/h2gb/h2core/bytectx"
	"github.com/h2gb/h2core/endian"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRendererDisplayGrammar mirrors the engine's documented display
// grammar for a U32 big-endian value 0x01234567.
func TestRendererDisplayGrammar(t *testing.T) {
	data := []byte{0x01, 0x23, 0x45, 0x67}
	ctx := bytectx.New(data)

	v, err := U32(endian.GetBigEndianEngine()).Read(&ctx)
	require.NoError(t, err)

	hex, err := NewRenderer(RendererHex).RenderInteger(v)
	require.NoError(t, err)
	assert.Equal(t, "0x01234567", hex)

	def, err := NewRenderer(RendererDefault).RenderInteger(v)
	require.NoError(t, err)
	assert.Equal(t, "19088743", def)

	oct, err := NewRenderer(RendererOctal).RenderInteger(v)
	require.NoError(t, err)
	assert.Equal(t, "0o110642547", oct)

	bin, err := NewRenderer(RendererBinary).RenderInteger(v)
	require.NoError(t, err)
	assert.Equal(t, "0b00000001001000110100010101100111", bin)

	sci, err := NewRenderer(RendererScientific).RenderInteger(v)
	require.NoError(t, err)
	assert.Equal(t, "1.9088743e7", sci)
}

func TestRendererHexPadsToDeclaredSize(t *testing.T) {
	u8, err := NewRenderer(RendererHex).RenderInteger(NewU8(4))
	require.NoError(t, err)
	assert.Equal(t, "0x04", u8)

	u24 := NewU32Sized(4, 3)
	hex24, err := NewRenderer(RendererHex).RenderInteger(u24)
	require.NoError(t, err)
	assert.Equal(t, "0x000004", hex24)
}

func TestRendererBoolean(t *testing.T) {
	tr, err := NewRenderer(RendererBoolean).RenderInteger(NewU8(1))
	require.NoError(t, err)
	assert.Equal(t, "true", tr)

	fa, err := NewRenderer(RendererBoolean).RenderInteger(NewU8(0))
	require.NoError(t, err)
	assert.Equal(t, "false", fa)
}

func TestRendererBinaryUnsupportedOnFloat(t *testing.T) {
	_, err := NewRenderer(RendererBinary).RenderFloat(NewF32(1.5))
	require.Error(t, err)
}

func TestRendererBooleanUnsupportedOnCharacter(t *testing.T) {
	_, err := NewRenderer(RendererBoolean).RenderCharacter(NewCharacter('A', 1))
	require.Error(t, err)
}

func TestRendererScientificFloat(t *testing.T) {
	s, err := NewRenderer(RendererScientific).RenderFloat(NewF32(3.14))
	require.NoError(t, err)
	assert.Equal(t, "3.14e0", s)

	d, err := NewRenderer(RendererDefault).RenderFloat(NewF32(3.14))
	require.NoError(t, err)
	assert.Equal(t, "3.14", d)
}

func TestRendererCharacterPrettyEscapes(t *testing.T) {
	letter, err := NewRenderer(RendererCharacter).RenderCharacter(NewCharacter('A', 1))
	require.NoError(t, err)
	assert.Equal(t, "'A'", letter)

	nl, err := NewRenderer(RendererCharacter).RenderCharacter(NewCharacter('\n', 1))
	require.NoError(t, err)
	assert.Equal(t, "'\\n'", nl)

	ctrl, err := NewRenderer(RendererCharacter).RenderCharacter(NewCharacter(0x1F, 1))
	require.NoError(t, err)
	assert.Equal(t, "'\\x1f'", ctrl)
}

func TestRendererSnowflakeCharacter(t *testing.T) {
	data := []byte{0xE2, 0x9D, 0x84}
	ctx := bytectx.New(data)

	c, err := UTF8().Read(&ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Size())

	s, err := NewRenderer(RendererCharacter).RenderCharacter(c)
	require.NoError(t, err)
	assert.Equal(t, "'❄'", s)
}
