package action

import (
	"fmt"

	"github.com/h2gb/h2core/errs"
	"github.com/h2gb/h2core/project"
)

// BufferCreateEmpty creates a zero-filled buffer of a fixed size. Forward
// state holds (name, size, baseAddress); backward state holds (name).
type BufferCreateEmpty struct {
	name        string
	size        int
	baseAddress uint64

	applied bool
}

// NewBufferCreateEmpty constructs the action in its Forward state.
func NewBufferCreateEmpty(name string, size int, baseAddress uint64) *BufferCreateEmpty {
	return &BufferCreateEmpty{name: name, size: size, baseAddress: baseAddress}
}

func (a *BufferCreateEmpty) Apply(p *project.Project) error {
	if a.applied {
		return fmt.Errorf("%w: BufferCreateEmpty already applied", errs.ErrInvariantViolation)
	}

	if a.size == 0 {
		return fmt.Errorf("%w: buffer %q", errs.ErrZeroSize, a.name)
	}

	if err := p.BufferAdd(a.name, project.NewEmptyBuffer(a.size, a.baseAddress)); err != nil {
		return err
	}

	a.applied = true

	return nil
}

func (a *BufferCreateEmpty) Undo(p *project.Project) error {
	if !a.applied {
		return fmt.Errorf("%w: BufferCreateEmpty not applied", errs.ErrInvariantViolation)
	}

	b, err := p.BufferRemove(a.name)
	if err != nil {
		return err
	}

	a.size = b.Len()
	a.baseAddress = b.BaseAddress()
	a.applied = false

	return nil
}

// BufferCreateFromBytes creates a buffer that owns a copy of the given
// bytes. Forward state holds (name, bytes, baseAddress); backward state
// holds (name).
type BufferCreateFromBytes struct {
	name        string
	data        []byte
	baseAddress uint64

	applied bool
}

// NewBufferCreateFromBytes constructs the action in its Forward state.
func NewBufferCreateFromBytes(name string, data []byte, baseAddress uint64) *BufferCreateFromBytes {
	return &BufferCreateFromBytes{name: name, data: data, baseAddress: baseAddress}
}

func (a *BufferCreateFromBytes) Apply(p *project.Project) error {
	if a.applied {
		return fmt.Errorf("%w: BufferCreateFromBytes already applied", errs.ErrInvariantViolation)
	}

	if err := p.BufferAdd(a.name, project.NewBuffer(a.data, a.baseAddress)); err != nil {
		return err
	}

	a.applied = true

	return nil
}

func (a *BufferCreateFromBytes) Undo(p *project.Project) error {
	if !a.applied {
		return fmt.Errorf("%w: BufferCreateFromBytes not applied", errs.ErrInvariantViolation)
	}

	b, err := p.BufferRemove(a.name)
	if err != nil {
		return err
	}

	a.data = b.Bytes()
	a.baseAddress = b.BaseAddress()
	a.applied = false

	return nil
}
