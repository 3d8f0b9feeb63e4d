package action

import (
	"fmt"

	"github.com/h2gb/h2core/errs"
	"github.com/h2gb/h2core/project"
)

// LayerCreate adds an empty layer to a buffer. Forward and backward state
// are identical: (buffer, name).
type LayerCreate struct {
	buffer, name string
	applied      bool
}

// NewLayerCreate constructs the action in its Forward state.
func NewLayerCreate(buffer, name string) *LayerCreate {
	return &LayerCreate{buffer: buffer, name: name}
}

func (a *LayerCreate) Apply(p *project.Project) error {
	if a.applied {
		return fmt.Errorf("%w: LayerCreate already applied", errs.ErrInvariantViolation)
	}

	b, ok := p.BufferGet(a.buffer)
	if !ok {
		return fmt.Errorf("%w: buffer %q", errs.ErrNotFound, a.buffer)
	}

	if _, err := b.LayerAdd(a.name); err != nil {
		return err
	}

	a.applied = true

	return nil
}

func (a *LayerCreate) Undo(p *project.Project) error {
	if !a.applied {
		return fmt.Errorf("%w: LayerCreate not applied", errs.ErrInvariantViolation)
	}

	b, ok := p.BufferGet(a.buffer)
	if !ok {
		return fmt.Errorf("%w: buffer %q", errs.ErrNotFound, a.buffer)
	}

	if _, err := b.LayerRemove(a.name); err != nil {
		return err
	}

	a.applied = false

	return nil
}

// LayerDelete removes a layer from a buffer, saving it (entries, comments,
// and all) into the action's backward payload so callers never need a
// separate "empty it first" step. Forward state holds (buffer, name);
// backward state additionally saves the removed layer so undo can restore
// it exactly, however many entries it owned.
type LayerDelete struct {
	buffer, name string
	saved        *project.Layer

	applied bool
}

// NewLayerDelete constructs the action in its Forward state.
func NewLayerDelete(buffer, name string) *LayerDelete {
	return &LayerDelete{buffer: buffer, name: name}
}

func (a *LayerDelete) Apply(p *project.Project) error {
	if a.applied {
		return fmt.Errorf("%w: LayerDelete already applied", errs.ErrInvariantViolation)
	}

	b, ok := p.BufferGet(a.buffer)
	if !ok {
		return fmt.Errorf("%w: buffer %q", errs.ErrNotFound, a.buffer)
	}

	l, err := b.LayerRemoveForce(a.name)
	if err != nil {
		return err
	}

	a.saved = l
	a.applied = true

	return nil
}

func (a *LayerDelete) Undo(p *project.Project) error {
	if !a.applied {
		return fmt.Errorf("%w: LayerDelete not applied", errs.ErrInvariantViolation)
	}

	b, ok := p.BufferGet(a.buffer)
	if !ok {
		return fmt.Errorf("%w: buffer %q", errs.ErrNotFound, a.buffer)
	}

	if err := b.LayerRestore(a.saved); err != nil {
		return err
	}

	a.saved = nil
	a.applied = false

	return nil
}
