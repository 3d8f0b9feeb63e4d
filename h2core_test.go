package h2core

import (
	"testing"

	"github.com/h2gb/h2core/action"
	"github.com/h2gb/h2core/endian"
	"github.com/h2gb/h2core/htype"
	"github.com/h2gb/h2core/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackageDocExampleRoundTrips(t *testing.T) {
	p := NewProject("demo", "1.0")

	createBuf := action.NewBufferCreateFromBytes("b", []byte{0, 1, 2, 4}, 0x80000000)
	createLayer := action.NewLayerCreate("b", "L")
	require.NoError(t, createBuf.Apply(p))
	require.NoError(t, createLayer.Apply(p))

	b, ok := p.BufferGet("b")
	require.True(t, ok)

	typ := htype.Integer(numeric.U32(endian.GetBigEndianEngine()), numeric.NewRenderer(numeric.RendererDefault))
	resolved, err := b.Peek(typ, 0, "value")
	require.NoError(t, err)

	createEntry := action.NewEntryCreate("b", "L", resolved, typ)
	require.NoError(t, createEntry.Apply(p))

	require.NoError(t, createEntry.Undo(p))
	require.NoError(t, createLayer.Undo(p))
	require.NoError(t, createBuf.Undo(p))

	assert.Empty(t, p.BufferNames())
}

func TestNewDictionaryLoadsEnum(t *testing.T) {
	d := NewDictionary()
	require.NoError(t, d.LoadEnumCSV("colors", "1,Red\n2,Green\n"))
	assert.True(t, d.EnumExists("colors"))
}
