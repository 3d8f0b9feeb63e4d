package project

import (
	"errors"
	"testing"

	"github.com/h2gb/h2core/bytectx"
	"github.com/h2gb/h2core/endian"
	"github.com/h2gb/h2core/errs"
	"github.com/h2gb/h2core/htype"
	"github.com/h2gb/h2core/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferByteRange(t *testing.T) {
	b := NewBuffer([]byte{1, 2, 3, 4}, 0x1000)

	got, err := b.ByteRange(1, 3)
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 3}, got)

	_, err = b.ByteRange(0, 5)
	require.ErrorIs(t, err, errs.ErrOutOfBounds)
}

func TestBufferPeekDoesNotRecordEntry(t *testing.T) {
	b := NewBuffer([]byte{0, 0, 0, 1}, 0)
	typ := htype.Integer(numeric.U32(endian.GetBigEndianEngine()), numeric.NewRenderer(numeric.RendererDefault))

	r, err := b.Peek(typ, 0, "value")
	require.NoError(t, err)
	assert.Equal(t, "1", r.Display)

	layer, err := b.LayerAdd("main")
	require.NoError(t, err)
	assert.Equal(t, 0, layer.Len())
}

func TestBufferContentHashStableAndDistinguishing(t *testing.T) {
	a := NewBuffer([]byte{1, 2, 3}, 0)
	b := NewBuffer([]byte{1, 2, 3}, 0x9999)
	c := NewBuffer([]byte{1, 2, 4}, 0)

	assert.Equal(t, a.ContentHash(), b.ContentHash())
	assert.NotEqual(t, a.ContentHash(), c.ContentHash())
}

func TestBufferRebaseReturnsPrevious(t *testing.T) {
	b := NewBuffer([]byte{1}, 0x1000)
	old := b.Rebase(0x2000)
	assert.Equal(t, uint64(0x1000), old)
	assert.Equal(t, uint64(0x2000), b.BaseAddress())
}

func TestBufferLayerAddRejectsDuplicateName(t *testing.T) {
	b := NewBuffer([]byte{1, 2}, 0)
	_, err := b.LayerAdd("main")
	require.NoError(t, err)

	_, err = b.LayerAdd("main")
	require.ErrorIs(t, err, errs.ErrNameExists)
}

func TestBufferLayerRemoveRejectsNonEmpty(t *testing.T) {
	b := NewBuffer([]byte{1, 2, 3, 4}, 0)
	l, err := b.LayerAdd("main")
	require.NoError(t, err)

	ctx := bytectx.New(b.Bytes())
	r, err := htype.Resolve(htype.Integer(numeric.U8(), numeric.NewRenderer(numeric.RendererDefault)), ctx, 0, "a")
	require.NoError(t, err)
	require.NoError(t, l.EntryInsert(Entry{Resolved: r}))

	_, err = b.LayerRemove("main")
	require.ErrorIs(t, err, errs.ErrLayerNonEmpty)
}

func TestBufferCloneShallowHasNoLayers(t *testing.T) {
	b := NewBuffer([]byte{1, 2, 3}, 0x500)
	_, err := b.LayerAdd("main")
	require.NoError(t, err)

	clone := b.CloneShallow()
	assert.False(t, clone.HasLayers())
	assert.Equal(t, b.BaseAddress(), clone.BaseAddress())
	assert.Equal(t, b.Bytes(), clone.Bytes())

	// Independent backing arrays: mutating the clone must not affect the original.
	clone.Bytes()[0] = 0xFF
	assert.Equal(t, byte(1), b.Bytes()[0])
}

func TestLayerEntryInsertAndOverlap(t *testing.T) {
	l := NewLayer("main", 8)
	ctx := bytectx.New([]byte{1, 2, 3, 4, 5, 6, 7, 8})

	r1, err := htype.Resolve(htype.Integer(numeric.U32(endian.GetBigEndianEngine()), numeric.NewRenderer(numeric.RendererDefault)), ctx, 0, "a")
	require.NoError(t, err)
	require.NoError(t, l.EntryInsert(Entry{Resolved: r1}))

	r2, err := htype.Resolve(htype.Integer(numeric.U8(), numeric.NewRenderer(numeric.RendererDefault)), ctx, 2, "b")
	require.NoError(t, err)
	err = l.EntryInsert(Entry{Resolved: r2})
	require.ErrorIs(t, err, errs.ErrOverlappingEntry)
}

func TestLayerCommentOutOfBoundsFails(t *testing.T) {
	l := NewLayer("main", 4)
	_, err := l.CommentSet(4, "oops")
	require.ErrorIs(t, err, errs.ErrOutOfBounds)

	prev, err := l.CommentSet(0, "hello")
	require.NoError(t, err)
	assert.Empty(t, prev)

	prev, err = l.CommentSet(0, "world")
	require.NoError(t, err)
	assert.Equal(t, "hello", prev)
}

func TestProjectBufferLifecycle(t *testing.T) {
	p := New("demo", "1.0")
	require.NoError(t, p.BufferAdd("b", NewBuffer([]byte{1, 2}, 0)))

	err := p.BufferAdd("b", NewBuffer([]byte{3}, 0))
	require.ErrorIs(t, err, errs.ErrNameExists)

	b, ok := p.BufferGet("b")
	require.True(t, ok)

	_, err = b.LayerAdd("L")
	require.NoError(t, err)

	_, err = p.BufferRemove("b")
	require.ErrorIs(t, err, errs.ErrHasLayers)

	_, err = b.LayerRemove("L")
	require.NoError(t, err)

	removed, err := p.BufferRemove("b")
	require.NoError(t, err)
	assert.Same(t, b, removed)

	_, err = p.BufferRemove("b")
	require.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestProjectRenameBuffer(t *testing.T) {
	p := New("demo", "1.0")
	require.NoError(t, p.BufferAdd("old", NewBuffer([]byte{1}, 0)))
	require.NoError(t, p.BufferRename("old", "new"))

	_, ok := p.BufferGet("old")
	assert.False(t, ok)
	_, ok = p.BufferGet("new")
	assert.True(t, ok)
}
