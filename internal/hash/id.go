// Package hash provides fast, non-cryptographic content hashing used for
// cheap identity checks over buffer contents.
package hash

import "github.com/cespare/xxhash/v2"

// Bytes computes the xxHash64 of the given byte slice.
//
// This is used to give a buffer a fast content fingerprint so callers can
// compare two buffers for byte-identical content without a full compare.
// It is not a cryptographic hash and must not be used for integrity or
// security purposes.
func Bytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}
