package numeric

import (
	"encoding/json"
	"fmt"

	"github.com/h2gb/h2core/endian"
	"github.com/h2gb/h2core/errs"
)

// integerReaderWire is IntegerReader's exported tagged form.
type integerReaderWire struct {
	Kind   string `json:"kind"`
	Engine string `json:"engine,omitempty"`
	U24    bool   `json:"u24,omitempty"`
}

// MarshalJSON renders the reader as a tagged, self-describing object.
func (r IntegerReader) MarshalJSON() ([]byte, error) {
	name, err := endian.Name(r.engine)
	if err != nil {
		return nil, err
	}

	return json.Marshal(integerReaderWire{Kind: r.kind.String(), Engine: name, U24: r.u24})
}

// UnmarshalJSON reconstructs an IntegerReader from its tagged form.
func (r *IntegerReader) UnmarshalJSON(data []byte) error {
	var w integerReaderWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrSerialization, err)
	}

	kind, err := ParseKind(w.Kind)
	if err != nil {
		return err
	}

	engine, err := endian.FromName(w.Engine)
	if err != nil {
		return err
	}

	*r = IntegerReader{kind: kind, engine: engine, u24: w.U24}

	return nil
}

// floatReaderWire is FloatReader's exported tagged form.
type floatReaderWire struct {
	Kind   string `json:"kind"`
	Engine string `json:"engine,omitempty"`
}

// MarshalJSON renders the reader as a tagged, self-describing object.
func (r FloatReader) MarshalJSON() ([]byte, error) {
	name, err := endian.Name(r.engine)
	if err != nil {
		return nil, err
	}

	return json.Marshal(floatReaderWire{Kind: r.kind.String(), Engine: name})
}

// UnmarshalJSON reconstructs a FloatReader from its tagged form.
func (r *FloatReader) UnmarshalJSON(data []byte) error {
	var w floatReaderWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrSerialization, err)
	}

	kind, err := ParseFloatKind(w.Kind)
	if err != nil {
		return err
	}

	engine, err := endian.FromName(w.Engine)
	if err != nil {
		return err
	}

	*r = FloatReader{kind: kind, engine: engine}

	return nil
}

// characterReaderWire is CharacterReader's exported tagged form.
type characterReaderWire struct {
	Kind       string `json:"kind"`
	Engine     string `json:"engine,omitempty"`
	Permissive bool   `json:"permissive,omitempty"`
}

// MarshalJSON renders the reader as a tagged, self-describing object.
func (r CharacterReader) MarshalJSON() ([]byte, error) {
	name, err := endian.Name(r.engine)
	if err != nil {
		return nil, err
	}

	return json.Marshal(characterReaderWire{Kind: r.kind.String(), Engine: name, Permissive: r.permissive})
}

// UnmarshalJSON reconstructs a CharacterReader from its tagged form.
func (r *CharacterReader) UnmarshalJSON(data []byte) error {
	var w characterReaderWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrSerialization, err)
	}

	kind, err := ParseCharacterReaderKind(w.Kind)
	if err != nil {
		return err
	}

	engine, err := endian.FromName(w.Engine)
	if err != nil {
		return err
	}

	*r = CharacterReader{kind: kind, engine: engine, permissive: w.Permissive}

	return nil
}

// rendererWire is Renderer's exported tagged form. Option fields are
// omitted at their zero value, which is always the value UnmarshalJSON
// would have produced anyway, so omission is lossless.
type rendererWire struct {
	Kind string `json:"kind"`

	HexUppercase bool `json:"hex_uppercase,omitempty"`
	HexPrefix    bool `json:"hex_prefix,omitempty"`
	HexWidth     int  `json:"hex_width,omitempty"`

	OctalPrefix bool `json:"octal_prefix,omitempty"`
	OctalPadded bool `json:"octal_padded,omitempty"`

	BinaryPrefix bool `json:"binary_prefix,omitempty"`
	BinaryPadded bool `json:"binary_padded,omitempty"`
}

// MarshalJSON renders the renderer as a tagged, self-describing object.
func (r Renderer) MarshalJSON() ([]byte, error) {
	return json.Marshal(rendererWire{
		Kind:         r.kind.String(),
		HexUppercase: r.cfg.hexUppercase,
		HexPrefix:    r.cfg.hexPrefix,
		HexWidth:     r.cfg.hexWidth,
		OctalPrefix:  r.cfg.octalPrefix,
		OctalPadded:  r.cfg.octalPadded,
		BinaryPrefix: r.cfg.binaryPrefix,
		BinaryPadded: r.cfg.binaryPadded,
	})
}

// UnmarshalJSON reconstructs a Renderer from its tagged form.
func (r *Renderer) UnmarshalJSON(data []byte) error {
	var w rendererWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrSerialization, err)
	}

	kind, err := ParseRendererKind(w.Kind)
	if err != nil {
		return err
	}

	*r = Renderer{
		kind: kind,
		cfg: rendererConfig{
			hexUppercase: w.HexUppercase,
			hexPrefix:    w.HexPrefix,
			hexWidth:     w.HexWidth,
			octalPrefix:  w.OctalPrefix,
			octalPadded:  w.OctalPadded,
			binaryPrefix: w.BinaryPrefix,
			binaryPadded: w.BinaryPadded,
		},
	}

	return nil
}
