package numeric

import "github.com/h2gb/h2core/internal/options"

// rendererConfig holds the per-RendererKind knobs NewRenderer can be
// tuned with via functional options. Only the fields relevant to the
// Renderer's kind are ever consulted.
type rendererConfig struct {
	hexUppercase bool
	hexPrefix    bool
	hexWidth     int // 0 means "derive from the value's declared Size()"

	octalPrefix bool
	octalPadded bool

	binaryPrefix bool
	binaryPadded bool
}

// defaultRendererConfig matches the engine's historical, pre-option
// behavior: Hex uppercase/prefixed/size-derived width, Octal prefixed and
// unpadded, Binary prefixed and padded to the value's bit width.
func defaultRendererConfig() rendererConfig {
	return rendererConfig{
		hexUppercase: true,
		hexPrefix:    true,
		octalPrefix:  true,
		binaryPrefix: true,
		binaryPadded: true,
	}
}

// RendererOption configures a Renderer at construction time.
type RendererOption = options.Option[*rendererConfig]

// WithHexUppercase sets whether Hex rendering uses uppercase digits.
func WithHexUppercase(uppercase bool) RendererOption {
	return options.NoError(func(c *rendererConfig) { c.hexUppercase = uppercase })
}

// WithHexPrefix sets whether Hex rendering carries the "0x" prefix.
func WithHexPrefix(prefix bool) RendererOption {
	return options.NoError(func(c *rendererConfig) { c.hexPrefix = prefix })
}

// WithHexWidth sets an explicit digit width for Hex rendering, overriding
// the default of the value's declared Size() in nibbles. A width of 0
// restores the default, size-derived behavior.
func WithHexWidth(width int) RendererOption {
	return options.NoError(func(c *rendererConfig) { c.hexWidth = width })
}

// WithOctalPrefix sets whether Octal rendering carries the "0o" prefix.
func WithOctalPrefix(prefix bool) RendererOption {
	return options.NoError(func(c *rendererConfig) { c.octalPrefix = prefix })
}

// WithOctalPadded sets whether Octal rendering pads to the value's bit
// width, rather than the shortest representation.
func WithOctalPadded(padded bool) RendererOption {
	return options.NoError(func(c *rendererConfig) { c.octalPadded = padded })
}

// WithBinaryPrefix sets whether Binary rendering carries the "0b" prefix.
func WithBinaryPrefix(prefix bool) RendererOption {
	return options.NoError(func(c *rendererConfig) { c.binaryPrefix = prefix })
}

// WithBinaryPadded sets whether Binary rendering pads to the value's bit
// width, rather than the shortest representation.
func WithBinaryPadded(padded bool) RendererOption {
	return options.NoError(func(c *rendererConfig) { c.binaryPadded = padded })
}
