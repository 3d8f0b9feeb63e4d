package transform

import (
	"encoding/base32"
	"encoding/base64"
	"fmt"
)

// Base32 takes standard-alphabet base32 text and decodes it to raw bytes;
// the reverse direction re-encodes raw bytes as base32 text.
type Base32 struct{}

func (Base32) Transform(data []byte) ([]byte, error) {
	out, err := base32.StdEncoding.DecodeString(string(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errUnsupported, err)
	}

	return out, nil
}

func (Base32) Untransform(data []byte) ([]byte, error) {
	return []byte(base32.StdEncoding.EncodeToString(data)), nil
}

func (Base32) CanTransform(data []byte) bool {
	_, err := base32.StdEncoding.DecodeString(string(data))
	return err == nil
}

func (Base32) IsTwoWay() bool { return true }

// Base64 takes standard-alphabet base64 text and decodes it to raw bytes;
// the reverse direction re-encodes raw bytes as base64 text.
type Base64 struct{}

func (Base64) Transform(data []byte) ([]byte, error) {
	out, err := base64.StdEncoding.DecodeString(string(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errUnsupported, err)
	}

	return out, nil
}

func (Base64) Untransform(data []byte) ([]byte, error) {
	return []byte(base64.StdEncoding.EncodeToString(data)), nil
}

func (Base64) CanTransform(data []byte) bool {
	_, err := base64.StdEncoding.DecodeString(string(data))
	return err == nil
}

func (Base64) IsTwoWay() bool { return true }
