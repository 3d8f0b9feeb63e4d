package htype

import (
	"fmt"

	"github.com/h2gb/h2core/alignment"
	"github.com/h2gb/h2core/bytectx"
	"github.com/h2gb/h2core/dictionary"
	"github.com/h2gb/h2core/errs"
	"github.com/h2gb/h2core/numeric"
)

// enumLookupType reads an integer and renders it as "Dict::Label" or
// "Dict::Unknown_0xNN" via a named enum table.
type enumLookupType struct {
	reader     numeric.IntegerReader
	dict       *dictionary.Dictionary
	dictName   string
}

// EnumLookup constructs a type node that reads an integer with reader and
// renders it against the named enum table in dict. It fails immediately
// (not deferred to resolve time) if the dictionary name isn't loaded.
func EnumLookup(reader numeric.IntegerReader, dict *dictionary.Dictionary, name string) (H2Type, error) {
	if !dict.EnumExists(name) {
		return H2Type{}, fmt.Errorf("%w: enum %q", errs.ErrDictionaryMissing, name)
	}

	return newType(alignment.None(), enumLookupType{reader: reader, dict: dict, dictName: name}), nil
}

func (t enumLookupType) resolve(ctx bytectx.Context, start int) (variantResult, error) {
	if t.dict == nil {
		return variantResult{}, fmt.Errorf("%w: enum %q not bound to a dictionary (call BindDictionary after deserializing)", errs.ErrDictionaryMissing, t.dictName)
	}

	c := ctx.At(start)

	v, err := t.reader.Read(&c)
	if err != nil {
		return variantResult{}, err
	}

	u, err := v.AsU64()
	if err != nil {
		return variantResult{}, err
	}

	display, err := t.dict.EnumRender(t.dictName, u)
	if err != nil {
		return variantResult{}, err
	}

	return variantResult{
		baseSize:  t.reader.Size(),
		display:   display,
		asInteger: &v,
	}, nil
}

// bitmaskType reads an integer and renders it as a pipe-joined list of
// named bits via a named bitmask table.
type bitmaskType struct {
	reader        numeric.IntegerReader
	dict          *dictionary.Dictionary
	dictName      string
	showNegatives bool
}

// Bitmask constructs a type node that reads an integer with reader and
// renders it against the named bitmask table in dict. The reader must be
// projectable to a value of at most 63 bits; it fails immediately if the
// dictionary name isn't loaded.
func Bitmask(reader numeric.IntegerReader, dict *dictionary.Dictionary, name string, showNegatives bool) (H2Type, error) {
	if !dict.BitmaskExists(name) {
		return H2Type{}, fmt.Errorf("%w: bitmask %q", errs.ErrDictionaryMissing, name)
	}

	if reader.Kind() == numeric.KindU128 || reader.Kind() == numeric.KindI128 {
		return H2Type{}, fmt.Errorf("%w: bitmask reader must fit in 63 bits", errs.ErrInvalidType)
	}

	return newType(alignment.None(), bitmaskType{
		reader: reader, dict: dict, dictName: name, showNegatives: showNegatives,
	}), nil
}

func (t bitmaskType) resolve(ctx bytectx.Context, start int) (variantResult, error) {
	if t.dict == nil {
		return variantResult{}, fmt.Errorf("%w: bitmask %q not bound to a dictionary (call BindDictionary after deserializing)", errs.ErrDictionaryMissing, t.dictName)
	}

	c := ctx.At(start)

	v, err := t.reader.Read(&c)
	if err != nil {
		return variantResult{}, err
	}

	u, err := v.AsU64()
	if err != nil {
		return variantResult{}, err
	}

	display, err := t.dict.BitmaskRender(t.dictName, u, t.showNegatives)
	if err != nil {
		return variantResult{}, err
	}

	return variantResult{
		baseSize:  t.reader.Size(),
		display:   display,
		asInteger: &v,
	}, nil
}
