package transform

import (
	"encoding/hex"
	"fmt"
)

// Hex takes hex-text-encoded bytes and decodes them to raw bytes; the
// reverse direction re-encodes raw bytes as lowercase hex text.
type Hex struct{}

func (Hex) Transform(data []byte) ([]byte, error) {
	out := make([]byte, hex.DecodedLen(len(data)))
	n, err := hex.Decode(out, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errUnsupported, err)
	}

	return out[:n], nil
}

func (Hex) Untransform(data []byte) ([]byte, error) {
	out := make([]byte, hex.EncodedLen(len(data)))
	hex.Encode(out, data)

	return out, nil
}

func (Hex) CanTransform(data []byte) bool {
	_, err := hex.DecodeString(string(data))
	return err == nil
}

func (Hex) IsTwoWay() bool { return true }
