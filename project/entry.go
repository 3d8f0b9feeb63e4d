// Package project implements the in-memory object model a Project holds:
// Buffers of owned bytes, Layers of annotated Entries over those bytes, and
// the Project that names and collects them.
//
// Nothing in this package mutates state outside of what its own methods
// document; callers that want undo/redo should route every change through
// the action package instead of calling these methods directly.
package project

import "github.com/h2gb/h2core/htype"

// Entry is a resolved type together with the H2Type node that produced it,
// kept so the entry can be re-resolved (e.g. after a transform) or inspected
// for debugging. Comments live separately, in the owning Layer's sparse
// comment map, keyed by the same offset as the entry's aligned start.
type Entry struct {
	Resolved htype.ResolvedType
	Origin   htype.H2Type
}

