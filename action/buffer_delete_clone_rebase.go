package action

import (
	"fmt"

	"github.com/h2gb/h2core/errs"
	"github.com/h2gb/h2core/project"
)

// BufferDelete removes a buffer, failing with errs.ErrHasLayers if it
// still owns layers. Forward state holds (name); backward state holds
// (name, bytes, baseAddress) so the buffer can be recreated identically.
type BufferDelete struct {
	name        string
	data        []byte
	baseAddress uint64

	applied bool
}

// NewBufferDelete constructs the action in its Forward state.
func NewBufferDelete(name string) *BufferDelete {
	return &BufferDelete{name: name}
}

func (a *BufferDelete) Apply(p *project.Project) error {
	if a.applied {
		return fmt.Errorf("%w: BufferDelete already applied", errs.ErrInvariantViolation)
	}

	b, err := p.BufferRemove(a.name)
	if err != nil {
		return err
	}

	a.data = b.Bytes()
	a.baseAddress = b.BaseAddress()
	a.applied = true

	return nil
}

func (a *BufferDelete) Undo(p *project.Project) error {
	if !a.applied {
		return fmt.Errorf("%w: BufferDelete not applied", errs.ErrInvariantViolation)
	}

	if err := p.BufferAdd(a.name, project.NewBuffer(a.data, a.baseAddress)); err != nil {
		return err
	}

	a.applied = false

	return nil
}

// BufferCloneShallow copies a buffer's bytes and base address (but not its
// layers) under a new name. Forward state holds (from, to); backward state
// holds (to, from) so undo just removes the clone.
type BufferCloneShallow struct {
	from, to string
	applied  bool
}

// NewBufferCloneShallow constructs the action in its Forward state.
func NewBufferCloneShallow(from, to string) *BufferCloneShallow {
	return &BufferCloneShallow{from: from, to: to}
}

func (a *BufferCloneShallow) Apply(p *project.Project) error {
	if a.applied {
		return fmt.Errorf("%w: BufferCloneShallow already applied", errs.ErrInvariantViolation)
	}

	src, ok := p.BufferGet(a.from)
	if !ok {
		return fmt.Errorf("%w: buffer %q", errs.ErrNotFound, a.from)
	}

	if err := p.BufferAdd(a.to, src.CloneShallow()); err != nil {
		return err
	}

	a.applied = true

	return nil
}

func (a *BufferCloneShallow) Undo(p *project.Project) error {
	if !a.applied {
		return fmt.Errorf("%w: BufferCloneShallow not applied", errs.ErrInvariantViolation)
	}

	if _, err := p.BufferRemove(a.to); err != nil {
		return err
	}

	a.applied = false

	return nil
}

// BufferRebase changes a buffer's base address. Forward state holds (name,
// newBaseAddress); backward state holds (name, oldBaseAddress).
type BufferRebase struct {
	name     string
	baseAddr uint64
	applied  bool
}

// NewBufferRebase constructs the action in its Forward state.
func NewBufferRebase(name string, newBaseAddress uint64) *BufferRebase {
	return &BufferRebase{name: name, baseAddr: newBaseAddress}
}

func (a *BufferRebase) Apply(p *project.Project) error {
	if a.applied {
		return fmt.Errorf("%w: BufferRebase already applied", errs.ErrInvariantViolation)
	}

	b, ok := p.BufferGet(a.name)
	if !ok {
		return fmt.Errorf("%w: buffer %q", errs.ErrNotFound, a.name)
	}

	old := b.Rebase(a.baseAddr)
	a.baseAddr = old
	a.applied = true

	return nil
}

func (a *BufferRebase) Undo(p *project.Project) error {
	if !a.applied {
		return fmt.Errorf("%w: BufferRebase not applied", errs.ErrInvariantViolation)
	}

	b, ok := p.BufferGet(a.name)
	if !ok {
		return fmt.Errorf("%w: buffer %q", errs.ErrNotFound, a.name)
	}

	old := b.Rebase(a.baseAddr)
	a.baseAddr = old
	a.applied = false

	return nil
}
