package htype

import (
	"fmt"
	"net"

	"github.com/h2gb/h2core/alignment"
	"github.com/h2gb/h2core/bytectx"
	"github.com/h2gb/h2core/endian"
)

// ipv4Type reads a 4-byte address and renders it in dotted-decimal form.
type ipv4Type struct {
	engine endian.EndianEngine
}

// IPv4 constructs a 4-byte IPv4 address node.
func IPv4(e endian.EndianEngine) H2Type {
	return newType(alignment.None(), ipv4Type{engine: e})
}

func (t ipv4Type) resolve(ctx bytectx.Context, start int) (variantResult, error) {
	c := ctx.At(start)

	v, err := c.ReadU32(t.engine)
	if err != nil {
		return variantResult{}, err
	}

	ip := net.IPv4(byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
	s := ip.String()

	return variantResult{baseSize: 4, display: s, asString: &s}, nil
}

// ipv6Type reads a 16-byte address and renders it in canonical colon-hex
// form.
type ipv6Type struct {
	engine endian.EndianEngine
}

// IPv6 constructs a 16-byte IPv6 address node.
func IPv6(e endian.EndianEngine) H2Type {
	return newType(alignment.None(), ipv6Type{engine: e})
}

func (t ipv6Type) resolve(ctx bytectx.Context, start int) (variantResult, error) {
	c := ctx.At(start)

	hi, lo, err := c.ReadU128(t.engine)
	if err != nil {
		return variantResult{}, err
	}

	b := make([]byte, 16)
	for i := 0; i < 8; i++ {
		b[i] = byte(hi >> (56 - 8*i))
		b[8+i] = byte(lo >> (56 - 8*i))
	}

	s := net.IP(b).String()

	return variantResult{baseSize: 16, display: s, asString: &s}, nil
}

// macType reads a fixed-width MAC address (6 or 8 bytes, EUI-48/EUI-64)
// and renders it as colon-separated uppercase hex.
type macType struct {
	size int
}

// MAC6 constructs a 6-byte EUI-48 MAC address node.
func MAC6() H2Type { return newType(alignment.None(), macType{size: 6}) }

// MAC8 constructs an 8-byte EUI-64 MAC address node.
func MAC8() H2Type { return newType(alignment.None(), macType{size: 8}) }

func (t macType) resolve(ctx bytectx.Context, start int) (variantResult, error) {
	c := ctx.At(start)

	b, err := c.ReadBytes(t.size)
	if err != nil {
		return variantResult{}, err
	}

	parts := make([]string, len(b))
	for i, x := range b {
		parts[i] = fmt.Sprintf("%02X", x)
	}

	s := joinColon(parts)

	return variantResult{baseSize: t.size, display: s, asString: &s}, nil
}

func joinColon(parts []string) string {
	s := ""
	for i, p := range parts {
		if i > 0 {
			s += ":"
		}

		s += p
	}

	return s
}

// rgbType reads a 3-byte value and renders it as "#RRGGBB".
type rgbType struct{}

// RGB constructs a 3-byte RGB color node.
func RGB() H2Type { return newType(alignment.None(), rgbType{}) }

func (t rgbType) resolve(ctx bytectx.Context, start int) (variantResult, error) {
	c := ctx.At(start)

	b, err := c.ReadBytes(3)
	if err != nil {
		return variantResult{}, err
	}

	s := fmt.Sprintf("#%02X%02X%02X", b[0], b[1], b[2])

	return variantResult{baseSize: 3, display: s, asString: &s}, nil
}
