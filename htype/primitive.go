package htype

import (
	"github.com/h2gb/h2core/alignment"
	"github.com/h2gb/h2core/bytectx"
	"github.com/h2gb/h2core/numeric"
)

// integerType is a node that reads and renders a single Integer.
type integerType struct {
	reader   numeric.IntegerReader
	renderer numeric.Renderer
}

// Integer constructs a type node that reads and renders a single Integer.
func Integer(reader numeric.IntegerReader, renderer numeric.Renderer) H2Type {
	return newType(alignment.None(), integerType{reader: reader, renderer: renderer})
}

// IntegerAligned is Integer with an explicit Alignment.
func IntegerAligned(align alignment.Alignment, reader numeric.IntegerReader, renderer numeric.Renderer) H2Type {
	return newType(align, integerType{reader: reader, renderer: renderer})
}

func (t integerType) resolve(ctx bytectx.Context, start int) (variantResult, error) {
	c := ctx.At(start)

	v, err := t.reader.Read(&c)
	if err != nil {
		return variantResult{}, err
	}

	display, err := t.renderer.RenderInteger(v)
	if err != nil {
		return variantResult{}, err
	}

	return variantResult{
		baseSize:  t.reader.Size(),
		display:   display,
		asInteger: &v,
	}, nil
}

// floatType is a node that reads and renders a single Float.
type floatType struct {
	reader   numeric.FloatReader
	renderer numeric.Renderer
}

// Float constructs a type node that reads and renders a single Float.
func Float(reader numeric.FloatReader, renderer numeric.Renderer) H2Type {
	return newType(alignment.None(), floatType{reader: reader, renderer: renderer})
}

// FloatAligned is Float with an explicit Alignment.
func FloatAligned(align alignment.Alignment, reader numeric.FloatReader, renderer numeric.Renderer) H2Type {
	return newType(align, floatType{reader: reader, renderer: renderer})
}

func (t floatType) resolve(ctx bytectx.Context, start int) (variantResult, error) {
	c := ctx.At(start)

	v, err := t.reader.Read(&c)
	if err != nil {
		return variantResult{}, err
	}

	display, err := t.renderer.RenderFloat(v)
	if err != nil {
		return variantResult{}, err
	}

	return variantResult{
		baseSize: t.reader.Size(),
		display:  display,
		asFloat:  &v,
	}, nil
}

// characterType is a node that decodes and renders a single Character.
// Its base size is only known after the read (UTF-8 is variable-width).
type characterType struct {
	reader   numeric.CharacterReader
	renderer numeric.Renderer
}

// Character constructs a type node that decodes and renders a single
// Character.
func Character(reader numeric.CharacterReader, renderer numeric.Renderer) H2Type {
	return newType(alignment.None(), characterType{reader: reader, renderer: renderer})
}

// CharacterAligned is Character with an explicit Alignment.
func CharacterAligned(align alignment.Alignment, reader numeric.CharacterReader, renderer numeric.Renderer) H2Type {
	return newType(align, characterType{reader: reader, renderer: renderer})
}

func (t characterType) resolve(ctx bytectx.Context, start int) (variantResult, error) {
	c := ctx.At(start)

	v, err := t.reader.Read(&c)
	if err != nil {
		return variantResult{}, err
	}

	display, err := t.renderer.RenderCharacter(v)
	if err != nil {
		return variantResult{}, err
	}

	s := string(v.Rune())

	return variantResult{
		baseSize:    v.Size(),
		display:     display,
		asCharacter: &v,
		asString:    &s,
	}, nil
}
