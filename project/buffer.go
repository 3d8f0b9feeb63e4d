package project

import (
	"fmt"

	"github.com/h2gb/h2core/bytectx"
	"github.com/h2gb/h2core/errs"
	"github.com/h2gb/h2core/htype"
	"github.com/h2gb/h2core/internal/hash"
)

// Buffer owns a byte vector, a base address (an abstract address-space
// offset used only for display), and a name-to-Layer map of annotation
// streams over those bytes.
//
// Buffer is a plain data holder: every mutation method below has no
// built-in undo. Code that wants reversible edits should go through the
// action package instead of calling these methods directly.
type Buffer struct {
	data        []byte
	baseAddress uint64
	layers      map[string]*Layer
}

// NewBuffer creates a Buffer that owns a copy of data.
func NewBuffer(data []byte, baseAddress uint64) *Buffer {
	owned := make([]byte, len(data))
	copy(owned, data)

	return &Buffer{data: owned, baseAddress: baseAddress, layers: make(map[string]*Layer)}
}

// NewEmptyBuffer creates a Buffer of size zero-filled bytes.
func NewEmptyBuffer(size int, baseAddress uint64) *Buffer {
	return &Buffer{data: make([]byte, size), baseAddress: baseAddress, layers: make(map[string]*Layer)}
}

// Len returns the number of bytes the buffer owns.
func (b *Buffer) Len() int { return len(b.data) }

// Bytes returns the buffer's backing slice. The caller must not modify it.
func (b *Buffer) Bytes() []byte { return b.data }

// BaseAddress returns the buffer's current base address.
func (b *Buffer) BaseAddress() uint64 { return b.baseAddress }

// ContentHash returns a fast, non-cryptographic fingerprint of the
// buffer's current bytes. Two buffers with the same ContentHash are
// extremely likely (but not guaranteed) to hold identical bytes; it is
// meant for cheap dedup/change-detection checks, not integrity.
func (b *Buffer) ContentHash() uint64 { return hash.Bytes(b.data) }

// ByteRange returns the sub-slice [start, end), failing with
// errs.ErrOutOfBounds if the range crosses the buffer's length.
func (b *Buffer) ByteRange(start, end int) ([]byte, error) {
	if start < 0 || end < start || end > len(b.data) {
		return nil, fmt.Errorf("%w: range [%d, %d) outside buffer of length %d", errs.ErrOutOfBounds, start, end, len(b.data))
	}

	return b.data[start:end], nil
}

// Peek resolves typ at start against the buffer's bytes without recording
// the result in any layer. This is how a caller previews a type's display
// and size before committing it with an EntryCreate action.
func (b *Buffer) Peek(typ htype.H2Type, start int, fieldName string) (htype.ResolvedType, error) {
	ctx := bytectx.New(b.data)
	return htype.Resolve(typ, ctx, start, fieldName)
}

// Rebase sets a new base address and returns the previous one, so the
// change can be undone.
func (b *Buffer) Rebase(newBaseAddress uint64) uint64 {
	old := b.baseAddress
	b.baseAddress = newBaseAddress

	return old
}

// LayerAdd creates and registers a new empty layer. It fails with
// errs.ErrNameExists if a layer of that name already exists.
func (b *Buffer) LayerAdd(name string) (*Layer, error) {
	if _, ok := b.layers[name]; ok {
		return nil, fmt.Errorf("%w: layer %q", errs.ErrNameExists, name)
	}

	l := NewLayer(name, len(b.data))
	b.layers[name] = l

	return l, nil
}

// LayerRestore re-registers a previously removed layer object under its own
// name, preserving its comment map. It fails with errs.ErrNameExists if a
// layer of that name has since been created.
func (b *Buffer) LayerRestore(l *Layer) error {
	if _, ok := b.layers[l.name]; ok {
		return fmt.Errorf("%w: layer %q", errs.ErrNameExists, l.name)
	}

	b.layers[l.name] = l

	return nil
}

// LayerRemove deletes and returns the named layer. It fails with
// errs.ErrNotFound if the layer doesn't exist, or errs.ErrLayerNonEmpty if
// it still owns entries; LayerRemoveForce removes a populated layer.
func (b *Buffer) LayerRemove(name string) (*Layer, error) {
	l, ok := b.layers[name]
	if !ok {
		return nil, fmt.Errorf("%w: layer %q", errs.ErrNotFound, name)
	}

	if l.IsPopulated() {
		return nil, fmt.Errorf("%w: layer %q", errs.ErrLayerNonEmpty, name)
	}

	delete(b.layers, name)

	return l, nil
}

// LayerRemoveForce deletes and returns the named layer regardless of
// whether it still owns entries. It fails only with errs.ErrNotFound if
// the layer doesn't exist. Callers that need the removal reversible (the
// action package's LayerDelete) must hold on to the returned layer and
// re-register it via LayerRestore to undo.
func (b *Buffer) LayerRemoveForce(name string) (*Layer, error) {
	l, ok := b.layers[name]
	if !ok {
		return nil, fmt.Errorf("%w: layer %q", errs.ErrNotFound, name)
	}

	delete(b.layers, name)

	return l, nil
}

// LayerGet returns the named layer, if it exists.
func (b *Buffer) LayerGet(name string) (*Layer, bool) {
	l, ok := b.layers[name]
	return l, ok
}

// LayerNames returns the names of all registered layers.
func (b *Buffer) LayerNames() []string {
	names := make([]string, 0, len(b.layers))
	for name := range b.layers {
		names = append(names, name)
	}

	return names
}

// HasLayers reports whether the buffer owns any layers at all.
func (b *Buffer) HasLayers() bool { return len(b.layers) > 0 }

// CloneShallow returns a new Buffer with an independent copy of the bytes
// and base address, but no layers: layers are never carried across a clone.
func (b *Buffer) CloneShallow() *Buffer {
	return NewBuffer(b.data, b.baseAddress)
}
