// Package endian provides byte order utilities for reading binary data out
// of an analysis buffer.
//
// This package extends Go's standard encoding/binary package by combining
// ByteOrder and AppendByteOrder interfaces into a unified EndianEngine interface.
// Every reader in the numeric package and every multi-byte read in bytectx
// takes an EndianEngine so a single byte buffer can be annotated with a mix
// of big- and little-endian fields.
//
// # Basic Usage
//
//	import "github.com/h2gb/h2core/endian"
//
//	engine := endian.GetBigEndianEngine()
//	ctx := bytectx.New(data)
//	v, err := ctx.ReadU32(engine)
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"github.com/h2gb/h2core/errs"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library, making it fully compatible with existing Go code while
// providing access to both read/write and append operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. For a little-endian system, the LSB (0x00) is first.
	// For a big-endian system, the MSB (0x01) is first.
	var i uint16 = 0x0100

	// Create a byte slice pointing to the memory address of 'i'.
	// We only need the first byte.
	b := (*[2]byte)(unsafe.Pointer(&i))

	// Check the first byte at the lowest memory address
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

func CompareNativeEndian(engine EndianEngine) bool {
	return engine == CheckEndianness()
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// Name returns the tag a serializer should use for engine: "" for a nil
// engine (a reader with no byte order, like U8 or strict ASCII), "big" or
// "little" for the two recognized singletons. Any other EndianEngine
// implementation fails, since the package only ever hands out those two.
func Name(engine EndianEngine) (string, error) {
	switch engine {
	case nil:
		return "", nil
	case GetBigEndianEngine():
		return "big", nil
	case GetLittleEndianEngine():
		return "little", nil
	default:
		return "", fmt.Errorf("%w: unrecognized endian engine", errs.ErrSerialization)
	}
}

// FromName reverses Name: "" yields a nil engine, "big"/"little" yield the
// matching singleton, anything else fails.
func FromName(name string) (EndianEngine, error) {
	switch name {
	case "":
		return nil, nil
	case "big":
		return GetBigEndianEngine(), nil
	case "little":
		return GetLittleEndianEngine(), nil
	default:
		return nil, fmt.Errorf("%w: unrecognized endian name %q", errs.ErrSerialization, name)
	}
}
