package project

import (
	"fmt"

	"github.com/h2gb/h2core/errs"
)

// Project is the root container: a name, a version tag, and a name-to-Buffer
// map. All buffer/layer/entry lifecycles live underneath a Project.
type Project struct {
	name    string
	version string
	buffers map[string]*Buffer
}

// New creates an empty project with the given name and version tag.
func New(name, version string) *Project {
	return &Project{name: name, version: version, buffers: make(map[string]*Buffer)}
}

// Name returns the project's current name.
func (p *Project) Name() string { return p.name }

// Rename sets a new name and returns the previous one.
func (p *Project) Rename(newName string) string {
	old := p.name
	p.name = newName

	return old
}

// Version returns the project's version tag.
func (p *Project) Version() string { return p.version }

// BufferAdd registers an already-constructed buffer under name. It fails
// with errs.ErrNameExists if a buffer of that name is already present.
func (p *Project) BufferAdd(name string, b *Buffer) error {
	if _, ok := p.buffers[name]; ok {
		return fmt.Errorf("%w: buffer %q", errs.ErrNameExists, name)
	}

	p.buffers[name] = b

	return nil
}

// BufferRemove deletes and returns the named buffer. It fails with
// errs.ErrNotFound if absent, or errs.ErrHasLayers if the buffer still owns
// one or more layers.
func (p *Project) BufferRemove(name string) (*Buffer, error) {
	b, ok := p.buffers[name]
	if !ok {
		return nil, fmt.Errorf("%w: buffer %q", errs.ErrNotFound, name)
	}

	if b.HasLayers() {
		return nil, fmt.Errorf("%w: buffer %q", errs.ErrHasLayers, name)
	}

	delete(p.buffers, name)

	return b, nil
}

// BufferGet returns the named buffer, if it exists.
func (p *Project) BufferGet(name string) (*Buffer, bool) {
	b, ok := p.buffers[name]
	return b, ok
}

// BufferNames returns the names of all registered buffers.
func (p *Project) BufferNames() []string {
	names := make([]string, 0, len(p.buffers))
	for name := range p.buffers {
		names = append(names, name)
	}

	return names
}

// BufferRename moves a buffer from one name to another. It fails with
// errs.ErrNotFound if from doesn't exist, or errs.ErrNameExists if to
// already does.
func (p *Project) BufferRename(from, to string) error {
	b, ok := p.buffers[from]
	if !ok {
		return fmt.Errorf("%w: buffer %q", errs.ErrNotFound, from)
	}

	if _, ok := p.buffers[to]; ok {
		return fmt.Errorf("%w: buffer %q", errs.ErrNameExists, to)
	}

	delete(p.buffers, from)
	p.buffers[to] = b

	return nil
}
