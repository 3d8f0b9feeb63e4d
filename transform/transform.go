// Package transform implements byte transforms that a Buffer's contents
// can be run through (and, for two-way transforms, run back through to
// recover the original bytes). Every transform in this package is two-way.
//
// Every Transformer is a small, serializable descriptor rather than a
// stream: Transform and Untransform each take a whole byte slice and
// return a whole byte slice, since buffers are bounded in-memory objects,
// not streams.
package transform

import "github.com/h2gb/h2core/errs"

// Transformer converts a buffer's bytes to and, for two-way transforms,
// from another representation.
type Transformer interface {
	// Transform converts data forward.
	Transform(data []byte) ([]byte, error)

	// Untransform converts data backward. It returns errs.ErrTransformFailed
	// if called on a one-way transform.
	Untransform(data []byte) ([]byte, error)

	// CanTransform reports whether data is a plausible input for Transform.
	CanTransform(data []byte) bool

	// IsTwoWay reports whether Untransform can ever succeed for this
	// transform.
	IsTwoWay() bool
}

// errUnsupported is the error the codec transforms wrap when their input
// cannot be decoded or encoded.
var errUnsupported = errs.ErrTransformFailed
