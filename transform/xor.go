package transform

import (
	"fmt"

	"github.com/h2gb/h2core/errs"
)

// XorByConstant XORs every byte against a repeating key. It is its own
// inverse, so Transform and Untransform are identical.
type XorByConstant struct {
	Key []byte
}

func (x XorByConstant) apply(data []byte) ([]byte, error) {
	if len(x.Key) == 0 {
		return nil, fmt.Errorf("%w: xor key must not be empty", errs.ErrTransformFailed)
	}

	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ x.Key[i%len(x.Key)]
	}

	return out, nil
}

func (x XorByConstant) Transform(data []byte) ([]byte, error)   { return x.apply(data) }
func (x XorByConstant) Untransform(data []byte) ([]byte, error) { return x.apply(data) }

func (x XorByConstant) CanTransform(_ []byte) bool { return len(x.Key) > 0 }
func (XorByConstant) IsTwoWay() bool               { return true }

// keyLenError is used by the stream/block ciphers for their key-length errors.
func keyLenError(name string, got, want int) error {
	return fmt.Errorf("%w: %s requires a %d-byte key, got %d", errs.ErrTransformFailed, name, want, got)
}
