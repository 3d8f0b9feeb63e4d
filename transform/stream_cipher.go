package transform

import (
	"crypto/rc4"
)

// StreamCipher decrypts/encrypts with RC4 under a fixed key. RC4 is
// symmetric, so Transform and Untransform run the identical keystream XOR.
type StreamCipher struct {
	Key []byte
}

func (s StreamCipher) apply(data []byte) ([]byte, error) {
	c, err := rc4.NewCipher(s.Key)
	if err != nil {
		return nil, keyLenError("RC4", len(s.Key), 5)
	}

	out := make([]byte, len(data))
	c.XORKeyStream(out, data)

	return out, nil
}

func (s StreamCipher) Transform(data []byte) ([]byte, error)   { return s.apply(data) }
func (s StreamCipher) Untransform(data []byte) ([]byte, error) { return s.apply(data) }

func (s StreamCipher) CanTransform(_ []byte) bool {
	_, err := rc4.NewCipher(s.Key)
	return err == nil
}

func (StreamCipher) IsTwoWay() bool { return true }
