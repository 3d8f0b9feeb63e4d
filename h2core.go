// Package h2core is the engine behind an interactive binary-analysis
// workbench: it lays declarative type descriptions over raw bytes, keeps
// the results as named, layered annotations inside a project, and records
// every mutation as a reversible Action.
//
// # Core Features
//
//   - A composable H2Type tree (integers, floats, characters, enums,
//     bitmasks, network addresses, UUIDs, blobs, arrays, structs, and
//     length-tag-value triples) that resolves against a byte buffer into
//     an immutable ResolvedType
//   - A gap-tolerant IntervalMap ("bumpy vector") for non-overlapping
//     byte-range annotations
//   - Buffers, Layers, and Entries collected under a named Project
//   - A full undo/redo log: every edit is an Action with exactly two
//     states, Forward and Backward
//   - Reversible byte transforms (hex, base32/64, deflate,
//     XOR, AES-CBC, RC4) that a buffer's bytes can be run through
//
// # Basic Usage
//
// Building a project, annotating a buffer, and undoing the edit:
//
//	import (
//	    "github.com/h2gb/h2core/action"
//	    "github.com/h2gb/h2core/endian"
//	    "github.com/h2gb/h2core/htype"
//	    "github.com/h2gb/h2core/numeric"
//	    "github.com/h2gb/h2core/project"
//	)
//
//	p := project.New("demo", "1.0")
//
//	createBuf := action.NewBufferCreateFromBytes("b", []byte{0, 1, 2, 4}, 0x80000000)
//	createLayer := action.NewLayerCreate("b", "L")
//	_ = createBuf.Apply(p)
//	_ = createLayer.Apply(p)
//
//	b, _ := p.BufferGet("b")
//	typ := htype.Integer(numeric.U32(endian.GetBigEndianEngine()), numeric.NewRenderer(numeric.RendererDefault))
//	resolved, _ := b.Peek(typ, 0, "value")
//
//	createEntry := action.NewEntryCreate("b", "L", resolved, typ)
//	_ = createEntry.Apply(p)
//
//	// ... and to undo:
//	_ = createEntry.Undo(p)
package h2core

import (
	"github.com/h2gb/h2core/dictionary"
	"github.com/h2gb/h2core/project"
)

// NewProject creates an empty Project with the given name and version tag.
func NewProject(name, version string) *project.Project {
	return project.New(name, version)
}

// NewDictionary creates an empty Dictionary ready to have enum and bitmask
// tables loaded into it.
func NewDictionary() *dictionary.Dictionary {
	return dictionary.New()
}
