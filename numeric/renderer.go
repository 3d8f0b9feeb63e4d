package numeric

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/h2gb/h2core/errs"
	"github.com/h2gb/h2core/internal/options"
)

// RendererKind selects a rendering strategy. A single Renderer value can
// be applied to an Integer, a Float, or a Character; combinations that
// don't make sense for the chosen kind (Binary of a Float, Boolean of a
// Character) fail with errs.ErrUnsupportedRendering rather than panicking.
type RendererKind uint8

const (
	RendererDefault RendererKind = iota
	RendererHex
	RendererOctal
	RendererBinary
	RendererScientific
	RendererBoolean
	RendererCharacter
)

// String returns the variant's name, e.g. "Hex".
func (k RendererKind) String() string {
	switch k {
	case RendererDefault:
		return "Default"
	case RendererHex:
		return "Hex"
	case RendererOctal:
		return "Octal"
	case RendererBinary:
		return "Binary"
	case RendererScientific:
		return "Scientific"
	case RendererBoolean:
		return "Boolean"
	case RendererCharacter:
		return "Character"
	default:
		return "Unknown"
	}
}

// ParseRendererKind reverses RendererKind.String, failing with
// errs.ErrSerialization for any other input.
func ParseRendererKind(s string) (RendererKind, error) {
	switch s {
	case "Default":
		return RendererDefault, nil
	case "Hex":
		return RendererHex, nil
	case "Octal":
		return RendererOctal, nil
	case "Binary":
		return RendererBinary, nil
	case "Scientific":
		return RendererScientific, nil
	case "Boolean":
		return RendererBoolean, nil
	case "Character":
		return RendererCharacter, nil
	default:
		return 0, fmt.Errorf("%w: unrecognized renderer kind %q", errs.ErrSerialization, s)
	}
}

// Renderer is a serializable description of how to turn a value into a
// display string, parameterised by a RendererKind-specific option set
// (see rendererConfig).
type Renderer struct {
	kind RendererKind
	cfg  rendererConfig
}

// NewRenderer constructs a Renderer of the given kind. Hex defaults to
// uppercase, prefixed, and padded to the value's declared size; Octal
// defaults to prefixed and unpadded; Binary defaults to prefixed and
// padded to the value's declared size in bits. Pass RendererOptions to
// override any of these.
func NewRenderer(kind RendererKind, opts ...RendererOption) Renderer {
	cfg := defaultRendererConfig()
	_ = options.Apply(&cfg, opts...) // NoError-wrapped options never fail

	return Renderer{kind: kind, cfg: cfg}
}

// RenderInteger renders an Integer. Hex/Octal/Binary pad to a width
// derived from the integer's declared Size(), not its Kind's natural
// width, so a U24 value pads as 3 bytes even though it's stored in a U32
// slot.
func (r Renderer) RenderInteger(v Integer) (string, error) {
	switch r.kind {
	case RendererDefault:
		return v.BigInt().String(), nil
	case RendererHex:
		return r.renderHex(v), nil
	case RendererOctal:
		return r.renderOctal(v), nil
	case RendererBinary:
		return r.renderBinary(v), nil
	case RendererScientific:
		return scientific(new(big.Float).SetInt(v.BigInt())), nil
	case RendererBoolean:
		return strconv.FormatBool(v.Hi() != 0 || v.Lo() != 0), nil
	default: // RendererCharacter
		return "", fmt.Errorf("%w: character renderer cannot render an integer", errs.ErrUnsupportedRendering)
	}
}

// renderHex renders v's unsigned bit pattern in hex, honoring the
// configured case, prefix, and width.
func (r Renderer) renderHex(v Integer) string {
	width := v.Size() * 2
	if r.cfg.hexWidth > 0 {
		width = r.cfg.hexWidth
	}

	digits := unsignedBigInt(v).Text(16)
	if r.cfg.hexUppercase {
		digits = strings.ToUpper(digits)
	}

	digits = fmt.Sprintf("%0*s", width, digits)

	if r.cfg.hexPrefix {
		return "0x" + digits
	}

	return digits
}

// renderOctal renders v's unsigned bit pattern in octal, honoring the
// configured prefix and padding.
func (r Renderer) renderOctal(v Integer) string {
	digits := unsignedBigInt(v).Text(8)
	if r.cfg.octalPadded {
		digits = fmt.Sprintf("%0*s", octalDigitWidth(v.Size()*8), digits)
	}

	if r.cfg.octalPrefix {
		return "0o" + digits
	}

	return digits
}

// renderBinary renders v's unsigned bit pattern in binary, honoring the
// configured prefix and padding.
func (r Renderer) renderBinary(v Integer) string {
	width := 0
	if r.cfg.binaryPadded {
		width = v.Size() * 8
	}

	digits := fmt.Sprintf("%0*s", width, unsignedBigInt(v).Text(2))

	if r.cfg.binaryPrefix {
		return "0b" + digits
	}

	return digits
}

// octalDigitWidth returns the number of base-8 digits needed to hold bits
// bits of raw value.
func octalDigitWidth(bits int) int {
	return (bits + 2) / 3
}

// unsignedBigInt returns the integer's raw bit pattern as an unsigned
// value, which is what hex/octal/binary rendering operates on (a
// negative I32 renders as its two's-complement bit pattern, not with a
// minus sign).
func unsignedBigInt(v Integer) *big.Int {
	if v.Kind() != KindU128 && v.Kind() != KindI128 {
		return new(big.Int).SetUint64(v.Lo() & mask(v.Kind().NaturalSize()*8))
	}

	lo := new(big.Int).SetUint64(v.Lo())
	hi := new(big.Int).SetUint64(v.Hi())
	hi.Lsh(hi, 64)

	return new(big.Int).Or(hi, lo)
}

func mask(bits int) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}

	return (uint64(1) << bits) - 1
}

// RenderFloat renders a Float. Only Default and Scientific accept floats;
// every other kind fails with errs.ErrUnsupportedRendering.
func (r Renderer) RenderFloat(v Float) (string, error) {
	switch r.kind {
	case RendererDefault:
		bits := 64
		if v.Kind() == FloatKindF32 {
			bits = 32
		}

		return strconv.FormatFloat(v.AsF64(), 'f', -1, bits), nil
	case RendererScientific:
		// Mantissa precision of the source width: 24 bits for F32, 53 for F64.
		prec := uint(53)
		if v.Kind() == FloatKindF32 {
			prec = 24
		}

		return scientific(big.NewFloat(0).SetPrec(prec).SetFloat64(v.AsF64())), nil
	default:
		return "", fmt.Errorf("%w: %v cannot render a float", errs.ErrUnsupportedRendering, r.kind)
	}
}

// scientific renders a big.Float in lowercase-exponent scientific form,
// e.g. "3.14e0" or "1.9088743e7", matching the engine's display grammar.
func scientific(f *big.Float) string {
	s := f.Text('e', -1)
	// big.Float formats as "3.14e+00"; trim the sign and leading zero on
	// a positive exponent, and drop the leading zero on a negative one.
	idx := strings.IndexByte(s, 'e')
	if idx < 0 {
		return s
	}

	mantissa, exp := s[:idx], s[idx+1:]
	neg := strings.HasPrefix(exp, "-")
	exp = strings.TrimLeft(strings.TrimPrefix(strings.TrimPrefix(exp, "+"), "-"), "0")
	if exp == "" {
		exp = "0"
	}

	if neg {
		exp = "-" + exp
	}

	return mantissa + "e" + exp
}

// RenderCharacter renders a Character. Default and Character both accept
// characters: Default emits the bare rune, Character emits the quoted
// pretty form with control-byte escapes. Every other kind fails.
func (r Renderer) RenderCharacter(v Character) (string, error) {
	switch r.kind {
	case RendererDefault:
		return string(v.Rune()), nil
	case RendererCharacter:
		return "'" + escapeCharacter(v.Rune()) + "'", nil
	default:
		return "", fmt.Errorf("%w: %v cannot render a character", errs.ErrUnsupportedRendering, r.kind)
	}
}

// escapeCharacter renders a single code point the way it would appear
// inside a quoted Character literal.
func escapeCharacter(r rune) string {
	switch r {
	case 0x00:
		return `\0`
	case 0x07:
		return `\a`
	case 0x08:
		return `\b`
	case 0x09:
		return `\t`
	case 0x0A:
		return `\n`
	case 0x0B:
		return `\v`
	case 0x0C:
		return `\f`
	case 0x0D:
		return `\r`
	}

	if r < 0x20 {
		return fmt.Sprintf(`\x%02x`, r)
	}

	return string(r)
}
