package htype

import (
	"encoding/json"
	"testing"

	"github.com/h2gb/h2core/alignment"
	"github.com/h2gb/h2core/bytectx"
	"github.com/h2gb/h2core/dictionary"
	"github.com/h2gb/h2core/endian"
	"github.com/h2gb/h2core/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTrip serializes and deserializes typ, failing the test on error.
func roundTrip(t *testing.T, typ H2Type) H2Type {
	t.Helper()

	data, err := json.Marshal(typ)
	require.NoError(t, err)

	var got H2Type
	require.NoError(t, json.Unmarshal(data, &got))

	return got
}

// assertResolvesIdentically is the spec's round-trip property: serialize,
// deserialize, re-resolve against the same context, compare to resolving
// the original.
func assertResolvesIdentically(t *testing.T, typ H2Type, data []byte) {
	t.Helper()

	got := roundTrip(t, typ)

	want, err := Resolve(typ, bytectx.New(data), 0, "")
	require.NoError(t, err)

	gotResolved, err := Resolve(got, bytectx.New(data), 0, "")
	require.NoError(t, err)

	assert.Equal(t, want, gotResolved)
}

func TestH2TypeRoundTripIntegerPrimitive(t *testing.T) {
	typ := Integer(numeric.U32(endian.GetBigEndianEngine()), numeric.NewRenderer(numeric.RendererHex))
	assertResolvesIdentically(t, typ, []byte{0x01, 0x23, 0x45, 0x67})
}

func TestH2TypeRoundTripFloatAligned(t *testing.T) {
	typ := FloatAligned(alignment.Strict(8), numeric.F32Reader(endian.GetLittleEndianEngine()), numeric.NewRenderer(numeric.RendererDefault))
	assertResolvesIdentically(t, typ, []byte{0x00, 0x00, 0x80, 0x3F, 0, 0, 0, 0})
}

func TestH2TypeRoundTripCharacter(t *testing.T) {
	typ := Character(numeric.UTF8(), numeric.NewRenderer(numeric.RendererCharacter))
	assertResolvesIdentically(t, typ, []byte{0xE2, 0x9D, 0x84})
}

func TestH2TypeRoundTripNetworkAndBlob(t *testing.T) {
	ipv4 := IPv4(endian.GetBigEndianEngine())
	assertResolvesIdentically(t, ipv4, []byte{10, 0, 0, 1})

	mac := MAC6()
	assertResolvesIdentically(t, mac, []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x01})

	rgb := RGB()
	assertResolvesIdentically(t, rgb, []byte{0x10, 0x20, 0x30})

	uuidType := UUID(endian.GetBigEndianEngine(), true)
	assertResolvesIdentically(t, uuidType, make([]byte, 16))

	blob, err := Blob(4, numeric.NewRenderer(numeric.RendererDefault))
	require.NoError(t, err)
	assertResolvesIdentically(t, blob, []byte{1, 2, 3, 4})
}

func TestH2TypeRoundTripArrayAndStruct(t *testing.T) {
	element := Integer(numeric.U8(), numeric.NewRenderer(numeric.RendererDefault))
	arr := Array(element, 3)
	assertResolvesIdentically(t, arr, []byte{1, 2, 3})

	s := Struct([]StructField{
		{Name: "a", Type: Integer(numeric.U8(), numeric.NewRenderer(numeric.RendererDefault))},
		{Name: "b", Type: Integer(numeric.U16(endian.GetBigEndianEngine()), numeric.NewRenderer(numeric.RendererHex))},
	})
	assertResolvesIdentically(t, s, []byte{0xFF, 0x01, 0x02})
}

func TestH2TypeRoundTripLengthTagValue(t *testing.T) {
	typeField := Integer(numeric.U8(), numeric.NewRenderer(numeric.RendererDefault))
	lengthField := Integer(numeric.U8(), numeric.NewRenderer(numeric.RendererDefault))
	valueTypes := map[uint64]H2Type{
		1: Integer(numeric.U32(endian.GetBigEndianEngine()), numeric.NewRenderer(numeric.RendererDefault)),
	}

	ltv := LengthTagValue(typeField, lengthField, valueTypes, nil)
	assertResolvesIdentically(t, ltv, []byte{1, 4, 0x00, 0x00, 0x00, 0x2A})
}

// TestH2TypeRoundTripEnumLookupRequiresBindDictionary documents that an
// EnumLookup/Bitmask node's dictionary is a live resource that isn't
// itself serialized: the deserialized tree must be rebound before it can
// resolve, but once rebound it resolves identically to the original.
func TestH2TypeRoundTripEnumLookupRequiresBindDictionary(t *testing.T) {
	dict := dictionary.New()
	require.NoError(t, dict.LoadEnumCSV("Mode", "1,Hardcore\n"))

	typ, err := EnumLookup(numeric.U8(), dict, "Mode")
	require.NoError(t, err)

	data := []byte{1}

	got := roundTrip(t, typ)

	_, err = Resolve(got, bytectx.New(data), 0, "")
	require.Error(t, err) // dict not yet rebound

	got = got.BindDictionary(dict)

	want, err := Resolve(typ, bytectx.New(data), 0, "")
	require.NoError(t, err)

	gotResolved, err := Resolve(got, bytectx.New(data), 0, "")
	require.NoError(t, err)
	assert.Equal(t, want, gotResolved)
}

func TestH2TypeRoundTripBitmaskNestedInStructBindDictionary(t *testing.T) {
	dict := dictionary.New()
	require.NoError(t, dict.LoadBitmaskCSV("Flags", "0,A\n1,B\n"))

	bitmask, err := Bitmask(numeric.U8(), dict, "Flags", false)
	require.NoError(t, err)

	typ := Struct([]StructField{{Name: "flags", Type: bitmask}})

	data := []byte{0x3}

	got := roundTrip(t, typ).BindDictionary(dict)

	want, err := Resolve(typ, bytectx.New(data), 0, "")
	require.NoError(t, err)

	gotResolved, err := Resolve(got, bytectx.New(data), 0, "")
	require.NoError(t, err)
	assert.Equal(t, want, gotResolved)
}

func TestUnmarshalH2TypeRejectsUnknownVariant(t *testing.T) {
	var typ H2Type
	err := json.Unmarshal([]byte(`{"alignment":{"kind":"None"},"variant":"NotAThing"}`), &typ)
	require.Error(t, err)
}

func TestMarshalEmptyH2TypeFails(t *testing.T) {
	_, err := json.Marshal(H2Type{})
	require.Error(t, err)
}
