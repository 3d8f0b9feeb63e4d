// Package action implements reversible edits over a project.Project. Every
// Action is a two-state machine: it starts in its Forward state, Apply
// transitions it to its Backward state (performing the edit and saving what
// Undo needs), and Undo transitions it back to Forward (reverting the edit
// and saving what a subsequent Apply needs). Calling Apply or Undo while in
// the wrong state is a programmer error and fails with
// errs.ErrInvariantViolation.
package action

import "github.com/h2gb/h2core/project"

// Action is a reversible edit to a Project.
type Action interface {
	// Apply performs the edit. It must only be called while the action is
	// in its Forward state.
	Apply(p *project.Project) error

	// Undo reverts the edit. It must only be called while the action is in
	// its Backward state.
	Undo(p *project.Project) error
}
