package transform

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/h2gb/h2core/errs"
)

// BlockCipher decrypts/encrypts with AES in CBC mode under a fixed key and
// IV. Input to Transform must be a multiple of the AES block size.
type BlockCipher struct {
	Key []byte
	IV  []byte
}

func (b BlockCipher) newBlockAndIV() (cipher.Block, error) {
	block, err := aes.NewCipher(b.Key)
	if err != nil {
		return nil, keyLenError("AES", len(b.Key), 16)
	}

	if len(b.IV) != block.BlockSize() {
		return nil, fmt.Errorf("%w: AES-CBC requires a %d-byte IV, got %d", errs.ErrTransformFailed, block.BlockSize(), len(b.IV))
	}

	return block, nil
}

// Transform decrypts data (ciphertext -> plaintext).
func (b BlockCipher) Transform(data []byte) ([]byte, error) {
	block, err := b.newBlockAndIV()
	if err != nil {
		return nil, err
	}

	if len(data)%block.BlockSize() != 0 {
		return nil, fmt.Errorf("%w: ciphertext length %d is not a multiple of the block size %d", errs.ErrTransformFailed, len(data), block.BlockSize())
	}

	out := make([]byte, len(data))
	cipher.NewCBCDecrypter(block, b.IV).CryptBlocks(out, data)

	return out, nil
}

// Untransform encrypts data (plaintext -> ciphertext).
func (b BlockCipher) Untransform(data []byte) ([]byte, error) {
	block, err := b.newBlockAndIV()
	if err != nil {
		return nil, err
	}

	if len(data)%block.BlockSize() != 0 {
		return nil, fmt.Errorf("%w: plaintext length %d is not a multiple of the block size %d", errs.ErrTransformFailed, len(data), block.BlockSize())
	}

	out := make([]byte, len(data))
	cipher.NewCBCEncrypter(block, b.IV).CryptBlocks(out, data)

	return out, nil
}

func (b BlockCipher) CanTransform(data []byte) bool {
	block, err := b.newBlockAndIV()
	if err != nil {
		return false
	}

	return len(data)%block.BlockSize() == 0
}

func (BlockCipher) IsTwoWay() bool { return true }
