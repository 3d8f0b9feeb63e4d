package htype

import (
	"fmt"

	"github.com/h2gb/h2core/alignment"
	"github.com/h2gb/h2core/bytectx"
	"github.com/h2gb/h2core/errs"
	"github.com/h2gb/h2core/numeric"
)

// blobType represents an opaque run of declared-length bytes, displayed
// as "Binary blob (N bytes)" rather than interpreted further.
type blobType struct {
	length         int
	lengthRenderer numeric.Renderer
}

// Blob constructs an opaque byte range of the given length. Zero-length
// blobs are rejected at construction, per the engine's edge-case rules.
func Blob(length int, lengthRenderer numeric.Renderer) (H2Type, error) {
	if length <= 0 {
		return H2Type{}, fmt.Errorf("%w: blob length must be at least 1, got %d", errs.ErrInvalidType, length)
	}

	return newType(alignment.None(), blobType{length: length, lengthRenderer: lengthRenderer}), nil
}

// BlobAligned is Blob with an explicit Alignment.
func BlobAligned(align alignment.Alignment, length int, lengthRenderer numeric.Renderer) (H2Type, error) {
	if length <= 0 {
		return H2Type{}, fmt.Errorf("%w: blob length must be at least 1, got %d", errs.ErrInvalidType, length)
	}

	return newType(align, blobType{length: length, lengthRenderer: lengthRenderer}), nil
}

func (t blobType) resolve(ctx bytectx.Context, start int) (variantResult, error) {
	c := ctx.At(start)
	if _, err := c.PeekBytes(t.length); err != nil {
		return variantResult{}, err
	}

	lengthDisplay, err := t.lengthRenderer.RenderInteger(numeric.NewU64(uint64(t.length))) //nolint:gosec
	if err != nil {
		return variantResult{}, err
	}

	display := fmt.Sprintf("Binary blob (%s bytes)", lengthDisplay)

	return variantResult{baseSize: t.length, display: display}, nil
}
