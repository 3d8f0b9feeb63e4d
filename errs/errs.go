// Package errs defines the sentinel errors returned across h2core.
//
// Every package wraps one of these sentinels with fmt.Errorf("%w: ...", ...)
// to add detail, so callers can always test the failure kind with
// errors.Is regardless of the message text.
package errs

import "errors"

// Read-path errors (bytectx, numeric).
var (
	// ErrOutOfBounds is returned when a read or index would cross the end
	// of the available bytes.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrInvalidEncoding is returned when a UTF-8/16/32 sequence is
	// malformed.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrOutOfRange is returned when a conversion cannot succeed, such as
	// projecting a 128-bit integer into 64 bits.
	ErrOutOfRange = errors.New("out of range")

	// ErrUnsupportedRendering is returned when a renderer does not accept
	// the kind of value it was given.
	ErrUnsupportedRendering = errors.New("unsupported rendering")
)

// Dictionary errors.
var (
	// ErrDictionaryMissing is returned when an EnumLookup or Bitmask type
	// references a dictionary name that hasn't been loaded.
	ErrDictionaryMissing = errors.New("dictionary missing")

	// ErrBadCSV is returned when a dictionary CSV source is malformed.
	ErrBadCSV = errors.New("malformed csv")
)

// Type-resolution errors (htype).
var (
	// ErrInvalidType is returned when an H2Type node is constructed with
	// values that violate its categorical constraints (e.g. a Bitmask
	// reader wider than 63 bits).
	ErrInvalidType = errors.New("invalid type")
)

// Interval map / project errors.
var (
	// ErrOverlappingEntry is returned when an insert would overlap an
	// already-covered byte range.
	ErrOverlappingEntry = errors.New("overlapping entry")

	// ErrNotFound is returned when a named buffer, layer, or entry is
	// absent.
	ErrNotFound = errors.New("not found")

	// ErrNameExists is returned when a create would duplicate an existing
	// name.
	ErrNameExists = errors.New("name exists")

	// ErrHasLayers is returned when deleting a buffer that still owns
	// layers.
	ErrHasLayers = errors.New("buffer has layers")

	// ErrLayerNonEmpty is returned when deleting a layer that still owns
	// entries, for implementations that choose not to save the layer
	// atomically.
	ErrLayerNonEmpty = errors.New("layer is not empty")

	// ErrZeroSize is returned when creating an empty buffer of size zero.
	ErrZeroSize = errors.New("zero size")
)

// Serialization errors.
var (
	// ErrSerialization is returned when a tagged wire payload is malformed
	// or names a variant/engine/kind the receiving package doesn't
	// recognize.
	ErrSerialization = errors.New("serialization error")
)

// Action-log errors.
var (
	// ErrInvariantViolation signals a programmer bug: an Action's state
	// doesn't match the direction being requested (apply on a Backward
	// state, or undo on a Forward state).
	ErrInvariantViolation = errors.New("invariant violation")
)

// Transform errors.
var (
	// ErrTransformFailed is returned when a transform precondition fails:
	// bad padding, wrong key length, undecodable input.
	ErrTransformFailed = errors.New("transform failed")
)
