package action

import (
	"fmt"

	"github.com/h2gb/h2core/errs"
	"github.com/h2gb/h2core/project"
)

// ProjectRename renames the project. Forward state holds (newName);
// backward state holds (oldName). It has no failure modes: any string is
// a legal project name.
type ProjectRename struct {
	name    string
	applied bool
}

// NewProjectRename constructs the action in its Forward state.
func NewProjectRename(newName string) *ProjectRename {
	return &ProjectRename{name: newName}
}

func (a *ProjectRename) Apply(p *project.Project) error {
	if a.applied {
		return fmt.Errorf("%w: ProjectRename already applied", errs.ErrInvariantViolation)
	}

	old := p.Rename(a.name)
	a.name = old
	a.applied = true

	return nil
}

func (a *ProjectRename) Undo(p *project.Project) error {
	if !a.applied {
		return fmt.Errorf("%w: ProjectRename not applied", errs.ErrInvariantViolation)
	}

	old := p.Rename(a.name)
	a.name = old
	a.applied = false

	return nil
}
