package action

import "github.com/h2gb/h2core/project"

// Null does nothing in either direction. It exists as a no-op placeholder
// for action logs that need a harmless sentinel entry.
type Null struct{}

func (Null) Apply(_ *project.Project) error { return nil }
func (Null) Undo(_ *project.Project) error  { return nil }
