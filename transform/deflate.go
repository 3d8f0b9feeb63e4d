package transform

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
)

// Deflate takes raw DEFLATE-compressed bytes and inflates them; the reverse
// direction compresses raw bytes with DEFLATE at the default level.
type Deflate struct{}

func (Deflate) Transform(data []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errUnsupported, err)
	}

	return out, nil
}

func (Deflate) Untransform(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errUnsupported, err)
	}

	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("%w: %v", errUnsupported, err)
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", errUnsupported, err)
	}

	return buf.Bytes(), nil
}

func (d Deflate) CanTransform(data []byte) bool {
	_, err := d.Transform(data)
	return err == nil
}

func (Deflate) IsTwoWay() bool { return true }
