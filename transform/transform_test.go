package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, tr Transformer, original []byte, encoded []byte) {
	t.Helper()

	got, err := tr.Transform(encoded)
	require.NoError(t, err)
	assert.Equal(t, original, got)

	back, err := tr.Untransform(original)
	require.NoError(t, err)
	assert.Equal(t, encoded, back)
}

func TestNullIdentity(t *testing.T) {
	roundTrip(t, Null{}, []byte("abc"), []byte("abc"))
}

func TestHexRoundTrip(t *testing.T) {
	roundTrip(t, Hex{}, []byte{0xDE, 0xAD, 0xBE, 0xEF}, []byte("deadbeef"))
}

func TestHexRejectsBadInput(t *testing.T) {
	_, err := Hex{}.Transform([]byte("not hex!!"))
	require.Error(t, err)
	assert.False(t, Hex{}.CanTransform([]byte("zz")))
}

func TestBase32RoundTrip(t *testing.T) {
	roundTrip(t, Base32{}, []byte("hello"), []byte("NBSWY3DP"))
}

func TestBase64RoundTrip(t *testing.T) {
	roundTrip(t, Base64{}, []byte("hello"), []byte("aGVsbG8="))
}

func TestDeflateRoundTrip(t *testing.T) {
	original := []byte("the quick brown fox jumps over the lazy dog, the quick brown fox")

	compressed, err := Deflate{}.Untransform(original)
	require.NoError(t, err)

	decompressed, err := Deflate{}.Transform(compressed)
	require.NoError(t, err)
	assert.Equal(t, original, decompressed)
}

func TestXorByConstantIsSelfInverse(t *testing.T) {
	x := XorByConstant{Key: []byte{0x42}}
	original := []byte{1, 2, 3, 4}

	encoded, err := x.Transform(original)
	require.NoError(t, err)

	decoded, err := x.Untransform(encoded)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestXorByConstantRejectsEmptyKey(t *testing.T) {
	_, err := XorByConstant{}.Transform([]byte{1})
	require.Error(t, err)
}

func TestBlockCipherRoundTrip(t *testing.T) {
	key := []byte("0123456789abcdef")
	iv := []byte("abcdef0123456789")
	b := BlockCipher{Key: key, IV: iv}

	plaintext := []byte("sixteen byte msg")

	ciphertext, err := b.Untransform(plaintext)
	require.NoError(t, err)

	decrypted, err := b.Transform(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestBlockCipherRejectsBadKeyLength(t *testing.T) {
	b := BlockCipher{Key: []byte("short"), IV: make([]byte, 16)}
	_, err := b.Transform(make([]byte, 16))
	require.Error(t, err)
}

func TestStreamCipherRoundTrip(t *testing.T) {
	s := StreamCipher{Key: []byte("secretkey")}
	plaintext := []byte("attack at dawn")

	ciphertext, err := s.Transform(plaintext)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, ciphertext)

	decrypted, err := s.Untransform(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}
