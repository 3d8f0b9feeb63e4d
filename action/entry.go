package action

import (
	"fmt"

	"github.com/h2gb/h2core/errs"
	"github.com/h2gb/h2core/htype"
	"github.com/h2gb/h2core/project"
)

// EntryCreate inserts an already-resolved entry into a layer, failing with
// errs.ErrOverlappingEntry if its aligned range overlaps an existing one.
// Forward state holds (buffer, layer, resolved, origin); backward state
// holds (buffer, layer, offset).
type EntryCreate struct {
	buffer, layer string
	resolved      htype.ResolvedType
	origin        htype.H2Type

	applied bool
}

// NewEntryCreate constructs the action in its Forward state.
func NewEntryCreate(buffer, layer string, resolved htype.ResolvedType, origin htype.H2Type) *EntryCreate {
	return &EntryCreate{buffer: buffer, layer: layer, resolved: resolved, origin: origin}
}

func (a *EntryCreate) Apply(p *project.Project) error {
	if a.applied {
		return fmt.Errorf("%w: EntryCreate already applied", errs.ErrInvariantViolation)
	}

	l, err := findLayer(p, a.buffer, a.layer)
	if err != nil {
		return err
	}

	if err := l.EntryInsert(project.Entry{Resolved: a.resolved, Origin: a.origin}); err != nil {
		return err
	}

	a.applied = true

	return nil
}

func (a *EntryCreate) Undo(p *project.Project) error {
	if !a.applied {
		return fmt.Errorf("%w: EntryCreate not applied", errs.ErrInvariantViolation)
	}

	l, err := findLayer(p, a.buffer, a.layer)
	if err != nil {
		return err
	}

	if _, ok := l.EntryRemove(a.resolved.AlignedStart); !ok {
		return fmt.Errorf("%w: entry at offset %d", errs.ErrNotFound, a.resolved.AlignedStart)
	}

	a.applied = false

	return nil
}

// EntryDelete removes the entry covering an offset. Forward state holds
// (buffer, layer, offset); backward state additionally saves the removed
// entry so undo can restore it exactly.
type EntryDelete struct {
	buffer, layer string
	offset        int
	saved         project.Entry

	applied bool
}

// NewEntryDelete constructs the action in its Forward state.
func NewEntryDelete(buffer, layer string, offset int) *EntryDelete {
	return &EntryDelete{buffer: buffer, layer: layer, offset: offset}
}

func (a *EntryDelete) Apply(p *project.Project) error {
	if a.applied {
		return fmt.Errorf("%w: EntryDelete already applied", errs.ErrInvariantViolation)
	}

	l, err := findLayer(p, a.buffer, a.layer)
	if err != nil {
		return err
	}

	entry, ok := l.EntryRemove(a.offset)
	if !ok {
		return fmt.Errorf("%w: entry at offset %d", errs.ErrNotFound, a.offset)
	}

	a.saved = entry
	a.applied = true

	return nil
}

func (a *EntryDelete) Undo(p *project.Project) error {
	if !a.applied {
		return fmt.Errorf("%w: EntryDelete not applied", errs.ErrInvariantViolation)
	}

	l, err := findLayer(p, a.buffer, a.layer)
	if err != nil {
		return err
	}

	if err := l.EntryInsert(a.saved); err != nil {
		return err
	}

	a.applied = false

	return nil
}

// EntrySetComment sets or clears the comment at an offset. Forward state
// holds (buffer, layer, offset, newComment); backward state holds
// (buffer, layer, offset, previousComment).
type EntrySetComment struct {
	buffer, layer string
	offset        int
	comment       string

	applied bool
}

// NewEntrySetComment constructs the action in its Forward state.
func NewEntrySetComment(buffer, layer string, offset int, comment string) *EntrySetComment {
	return &EntrySetComment{buffer: buffer, layer: layer, offset: offset, comment: comment}
}

func (a *EntrySetComment) Apply(p *project.Project) error {
	if a.applied {
		return fmt.Errorf("%w: EntrySetComment already applied", errs.ErrInvariantViolation)
	}

	l, err := findLayer(p, a.buffer, a.layer)
	if err != nil {
		return err
	}

	prev, err := l.CommentSet(a.offset, a.comment)
	if err != nil {
		return err
	}

	a.comment = prev
	a.applied = true

	return nil
}

func (a *EntrySetComment) Undo(p *project.Project) error {
	if !a.applied {
		return fmt.Errorf("%w: EntrySetComment not applied", errs.ErrInvariantViolation)
	}

	l, err := findLayer(p, a.buffer, a.layer)
	if err != nil {
		return err
	}

	prev, err := l.CommentSet(a.offset, a.comment)
	if err != nil {
		return err
	}

	a.comment = prev
	a.applied = false

	return nil
}

func findLayer(p *project.Project, bufferName, layerName string) (*project.Layer, error) {
	b, ok := p.BufferGet(bufferName)
	if !ok {
		return nil, fmt.Errorf("%w: buffer %q", errs.ErrNotFound, bufferName)
	}

	l, ok := b.LayerGet(layerName)
	if !ok {
		return nil, fmt.Errorf("%w: layer %q", errs.ErrNotFound, layerName)
	}

	return l, nil
}
