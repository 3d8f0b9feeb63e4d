package htype

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/h2gb/h2core/alignment"
	"github.com/h2gb/h2core/dictionary"
	"github.com/h2gb/h2core/endian"
	"github.com/h2gb/h2core/errs"
	"github.com/h2gb/h2core/numeric"
)

// h2TypeWire is H2Type's exported tagged form: an alignment plus a
// variant discriminator and the variant's own payload shape.
type h2TypeWire struct {
	Alignment alignment.Alignment `json:"alignment"`
	Variant   string              `json:"variant"`
	Payload   json.RawMessage     `json:"payload,omitempty"`
}

// MarshalJSON renders t as a tagged, self-describing object. Every
// variant round-trips exactly except EnumLookup and Bitmask, whose
// *dictionary.Dictionary is a live process-wide resource and is not
// itself serialized: only the dictionary name travels on the wire, and
// BindDictionary must be called on the result before it is resolved.
func (t H2Type) MarshalJSON() ([]byte, error) {
	if t.v == nil {
		return nil, fmt.Errorf("%w: cannot marshal an empty H2Type", errs.ErrSerialization)
	}

	variant, payload, err := marshalVariant(t.v)
	if err != nil {
		return nil, err
	}

	return json.Marshal(h2TypeWire{Alignment: t.Alignment, Variant: variant, Payload: payload})
}

// UnmarshalJSON reconstructs an H2Type from its tagged form.
func (t *H2Type) UnmarshalJSON(data []byte) error {
	var w h2TypeWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrSerialization, err)
	}

	v, err := unmarshalVariant(w.Variant, w.Payload)
	if err != nil {
		return err
	}

	*t = H2Type{Alignment: w.Alignment, v: v}

	return nil
}

type readerRendererPayload[R any] struct {
	Reader   R               `json:"reader"`
	Renderer numeric.Renderer `json:"renderer"`
}

type enumLookupPayload struct {
	Reader   numeric.IntegerReader `json:"reader"`
	DictName string                `json:"dict_name"`
}

type bitmaskPayload struct {
	Reader        numeric.IntegerReader `json:"reader"`
	DictName      string                `json:"dict_name"`
	ShowNegatives bool                  `json:"show_negatives,omitempty"`
}

type enginePayload struct {
	Engine string `json:"engine,omitempty"`
}

type macPayload struct {
	Size int `json:"size"`
}

type uuidPayload struct {
	Engine         string `json:"engine,omitempty"`
	IncludeVersion bool   `json:"include_version,omitempty"`
}

type blobPayload struct {
	Length         int              `json:"length"`
	LengthRenderer numeric.Renderer `json:"length_renderer"`
}

type arrayPayload struct {
	Element H2Type `json:"element"`
	Count   int    `json:"count"`
}

type structFieldWire struct {
	Name string `json:"name"`
	Type H2Type `json:"type"`
}

type structPayload struct {
	Fields []structFieldWire `json:"fields"`
}

type ltvPayload struct {
	TypeField   H2Type            `json:"type_field"`
	LengthField H2Type            `json:"length_field"`
	ValueTypes  map[string]H2Type `json:"value_types,omitempty"`
	DefaultType *H2Type           `json:"default_type,omitempty"`
}

func marshalPayload(variant string, payload any) (string, json.RawMessage, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", nil, err
	}

	return variant, raw, nil
}

//nolint:cyclop
func marshalVariant(v variant) (string, json.RawMessage, error) {
	switch vv := v.(type) {
	case integerType:
		return marshalPayload("Integer", readerRendererPayload[numeric.IntegerReader]{Reader: vv.reader, Renderer: vv.renderer})
	case floatType:
		return marshalPayload("Float", readerRendererPayload[numeric.FloatReader]{Reader: vv.reader, Renderer: vv.renderer})
	case characterType:
		return marshalPayload("Character", readerRendererPayload[numeric.CharacterReader]{Reader: vv.reader, Renderer: vv.renderer})
	case enumLookupType:
		return marshalPayload("EnumLookup", enumLookupPayload{Reader: vv.reader, DictName: vv.dictName})
	case bitmaskType:
		return marshalPayload("Bitmask", bitmaskPayload{Reader: vv.reader, DictName: vv.dictName, ShowNegatives: vv.showNegatives})
	case ipv4Type:
		name, err := endian.Name(vv.engine)
		if err != nil {
			return "", nil, err
		}

		return marshalPayload("IPv4", enginePayload{Engine: name})
	case ipv6Type:
		name, err := endian.Name(vv.engine)
		if err != nil {
			return "", nil, err
		}

		return marshalPayload("IPv6", enginePayload{Engine: name})
	case macType:
		return marshalPayload("MAC", macPayload{Size: vv.size})
	case rgbType:
		return marshalPayload("RGB", struct{}{})
	case uuidType:
		name, err := endian.Name(vv.engine)
		if err != nil {
			return "", nil, err
		}

		return marshalPayload("UUID", uuidPayload{Engine: name, IncludeVersion: vv.includeVersion})
	case blobType:
		return marshalPayload("Blob", blobPayload{Length: vv.length, LengthRenderer: vv.lengthRenderer})
	case arrayType:
		return marshalPayload("Array", arrayPayload{Element: vv.element, Count: vv.count})
	case structType:
		fields := make([]structFieldWire, len(vv.fields))
		for i, f := range vv.fields {
			fields[i] = structFieldWire{Name: f.Name, Type: f.Type}
		}

		return marshalPayload("Struct", structPayload{Fields: fields})
	case lengthTagValueType:
		valueTypes := make(map[string]H2Type, len(vv.valueTypes))
		for code, typ := range vv.valueTypes {
			valueTypes[strconv.FormatUint(code, 10)] = typ
		}

		return marshalPayload("LengthTagValue", ltvPayload{
			TypeField: vv.typeField, LengthField: vv.lengthField,
			ValueTypes: valueTypes, DefaultType: vv.defaultType,
		})
	default:
		return "", nil, fmt.Errorf("%w: unrecognized H2Type variant %T", errs.ErrSerialization, v)
	}
}

//nolint:cyclop
func unmarshalVariant(name string, payload json.RawMessage) (variant, error) {
	switch name {
	case "Integer":
		var p readerRendererPayload[numeric.IntegerReader]
		if err := unmarshalPayload(payload, &p); err != nil {
			return nil, err
		}

		return integerType{reader: p.Reader, renderer: p.Renderer}, nil
	case "Float":
		var p readerRendererPayload[numeric.FloatReader]
		if err := unmarshalPayload(payload, &p); err != nil {
			return nil, err
		}

		return floatType{reader: p.Reader, renderer: p.Renderer}, nil
	case "Character":
		var p readerRendererPayload[numeric.CharacterReader]
		if err := unmarshalPayload(payload, &p); err != nil {
			return nil, err
		}

		return characterType{reader: p.Reader, renderer: p.Renderer}, nil
	case "EnumLookup":
		var p enumLookupPayload
		if err := unmarshalPayload(payload, &p); err != nil {
			return nil, err
		}

		return enumLookupType{reader: p.Reader, dictName: p.DictName}, nil
	case "Bitmask":
		var p bitmaskPayload
		if err := unmarshalPayload(payload, &p); err != nil {
			return nil, err
		}

		return bitmaskType{reader: p.Reader, dictName: p.DictName, showNegatives: p.ShowNegatives}, nil
	case "IPv4":
		var p enginePayload
		if err := unmarshalPayload(payload, &p); err != nil {
			return nil, err
		}

		e, err := endian.FromName(p.Engine)
		if err != nil {
			return nil, err
		}

		return ipv4Type{engine: e}, nil
	case "IPv6":
		var p enginePayload
		if err := unmarshalPayload(payload, &p); err != nil {
			return nil, err
		}

		e, err := endian.FromName(p.Engine)
		if err != nil {
			return nil, err
		}

		return ipv6Type{engine: e}, nil
	case "MAC":
		var p macPayload
		if err := unmarshalPayload(payload, &p); err != nil {
			return nil, err
		}

		return macType{size: p.Size}, nil
	case "RGB":
		return rgbType{}, nil
	case "UUID":
		var p uuidPayload
		if err := unmarshalPayload(payload, &p); err != nil {
			return nil, err
		}

		e, err := endian.FromName(p.Engine)
		if err != nil {
			return nil, err
		}

		return uuidType{engine: e, includeVersion: p.IncludeVersion}, nil
	case "Blob":
		var p blobPayload
		if err := unmarshalPayload(payload, &p); err != nil {
			return nil, err
		}

		return blobType{length: p.Length, lengthRenderer: p.LengthRenderer}, nil
	case "Array":
		var p arrayPayload
		if err := unmarshalPayload(payload, &p); err != nil {
			return nil, err
		}

		return arrayType{element: p.Element, count: p.Count}, nil
	case "Struct":
		var p structPayload
		if err := unmarshalPayload(payload, &p); err != nil {
			return nil, err
		}

		fields := make([]StructField, len(p.Fields))
		for i, f := range p.Fields {
			fields[i] = StructField{Name: f.Name, Type: f.Type}
		}

		return structType{fields: fields}, nil
	case "LengthTagValue":
		var p ltvPayload
		if err := unmarshalPayload(payload, &p); err != nil {
			return nil, err
		}

		valueTypes := make(map[uint64]H2Type, len(p.ValueTypes))

		for k, typ := range p.ValueTypes {
			code, err := strconv.ParseUint(k, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: non-integer LengthTagValue type-code %q", errs.ErrSerialization, k)
			}

			valueTypes[code] = typ
		}

		return lengthTagValueType{
			typeField: p.TypeField, lengthField: p.LengthField,
			valueTypes: valueTypes, defaultType: p.DefaultType,
		}, nil
	default:
		return nil, fmt.Errorf("%w: unrecognized H2Type variant %q", errs.ErrSerialization, name)
	}
}

func unmarshalPayload(payload json.RawMessage, out any) error {
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrSerialization, err)
	}

	return nil
}

// BindDictionary rebinds every EnumLookup/Bitmask node in t's tree
// (including nodes nested under Array/Struct/LengthTagValue) to dict, by
// the dictionary name captured at marshal time.
//
// A *dictionary.Dictionary is a live, process-wide resource and isn't
// itself serialized (see the dictionary package docs): a deserialized
// H2Type tree that contains enum or bitmask nodes must be passed through
// BindDictionary, against whichever Dictionary holds the matching tables,
// before it is resolved.
func (t H2Type) BindDictionary(dict *dictionary.Dictionary) H2Type {
	if t.v == nil {
		return t
	}

	return H2Type{Alignment: t.Alignment, v: bindVariant(t.v, dict)}
}

func bindVariant(v variant, dict *dictionary.Dictionary) variant {
	switch vv := v.(type) {
	case enumLookupType:
		vv.dict = dict
		return vv
	case bitmaskType:
		vv.dict = dict
		return vv
	case arrayType:
		vv.element = vv.element.BindDictionary(dict)
		return vv
	case structType:
		fields := make([]StructField, len(vv.fields))
		for i, f := range vv.fields {
			fields[i] = StructField{Name: f.Name, Type: f.Type.BindDictionary(dict)}
		}

		vv.fields = fields

		return vv
	case lengthTagValueType:
		vv.typeField = vv.typeField.BindDictionary(dict)
		vv.lengthField = vv.lengthField.BindDictionary(dict)

		valueTypes := make(map[uint64]H2Type, len(vv.valueTypes))
		for code, typ := range vv.valueTypes {
			valueTypes[code] = typ.BindDictionary(dict)
		}

		vv.valueTypes = valueTypes

		if vv.defaultType != nil {
			bound := vv.defaultType.BindDictionary(dict)
			vv.defaultType = &bound
		}

		return vv
	default:
		return v
	}
}
