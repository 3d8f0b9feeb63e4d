package action

import (
	"fmt"

	"github.com/h2gb/h2core/errs"
	"github.com/h2gb/h2core/project"
	"github.com/h2gb/h2core/transform"
)

// BufferTransform runs a buffer's bytes through a Transformer, replacing
// its contents. Forward state holds (name, transformer); backward state
// holds (name, the original bytes, the same transformer); undo restores
// the saved bytes rather than running the inverse transform.
//
// A transform is refused with errs.ErrHasLayers if the buffer owns any
// layers, since a transform can change the buffer's length and invalidate
// every entry's byte range.
type BufferTransform struct {
	name        string
	transformer transform.Transformer
	savedBytes  []byte

	applied bool
}

// NewBufferTransform constructs the action in its Forward state.
func NewBufferTransform(name string, transformer transform.Transformer) *BufferTransform {
	return &BufferTransform{name: name, transformer: transformer}
}

func (a *BufferTransform) Apply(p *project.Project) error {
	if a.applied {
		return fmt.Errorf("%w: BufferTransform already applied", errs.ErrInvariantViolation)
	}

	b, ok := p.BufferGet(a.name)
	if !ok {
		return fmt.Errorf("%w: buffer %q", errs.ErrNotFound, a.name)
	}

	if b.HasLayers() {
		return fmt.Errorf("%w: buffer %q", errs.ErrHasLayers, a.name)
	}

	original := b.Bytes()

	transformed, err := a.transformer.Transform(original)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrTransformFailed, err)
	}

	replacement := project.NewBuffer(transformed, b.BaseAddress())
	if _, err := p.BufferRemove(a.name); err != nil {
		return err
	}

	if err := p.BufferAdd(a.name, replacement); err != nil {
		return err
	}

	a.savedBytes = original
	a.applied = true

	return nil
}

func (a *BufferTransform) Undo(p *project.Project) error {
	if !a.applied {
		return fmt.Errorf("%w: BufferTransform not applied", errs.ErrInvariantViolation)
	}

	b, ok := p.BufferGet(a.name)
	if !ok {
		return fmt.Errorf("%w: buffer %q", errs.ErrNotFound, a.name)
	}

	restored := project.NewBuffer(a.savedBytes, b.BaseAddress())
	if _, err := p.BufferRemove(a.name); err != nil {
		return err
	}

	if err := p.BufferAdd(a.name, restored); err != nil {
		return err
	}

	a.savedBytes = nil
	a.applied = false

	return nil
}

// BufferExtract creates a new buffer from a byte range of an existing one.
// Forward state holds (name, source, start, end, baseAddress); backward
// state holds (name, source, start, end).
type BufferExtract struct {
	name, source string
	start, end   int
	baseAddress  uint64

	applied bool
}

// NewBufferExtract constructs the action in its Forward state.
func NewBufferExtract(name, source string, start, end int, baseAddress uint64) *BufferExtract {
	return &BufferExtract{name: name, source: source, start: start, end: end, baseAddress: baseAddress}
}

func (a *BufferExtract) Apply(p *project.Project) error {
	if a.applied {
		return fmt.Errorf("%w: BufferExtract already applied", errs.ErrInvariantViolation)
	}

	src, ok := p.BufferGet(a.source)
	if !ok {
		return fmt.Errorf("%w: buffer %q", errs.ErrNotFound, a.source)
	}

	slice, err := src.ByteRange(a.start, a.end)
	if err != nil {
		return err
	}

	if err := p.BufferAdd(a.name, project.NewBuffer(slice, a.baseAddress)); err != nil {
		return err
	}

	a.applied = true

	return nil
}

func (a *BufferExtract) Undo(p *project.Project) error {
	if !a.applied {
		return fmt.Errorf("%w: BufferExtract not applied", errs.ErrInvariantViolation)
	}

	if _, err := p.BufferRemove(a.name); err != nil {
		return err
	}

	a.applied = false

	return nil
}
