package htype

import (
	"testing"

	"github.com/h2gb/h2core/bytectx"
	"github.com/h2gb/h2core/dictionary"
	"github.com/h2gb/h2core/endian"
	"github.com/h2gb/h2core/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario 1 from the engine's documented test properties.
func TestScenarioHexU32BigEndian(t *testing.T) {
	data := []byte{0x01, 0x23, 0x45, 0x67}
	ctx := bytectx.New(data)

	typ := Integer(numeric.U32(endian.GetBigEndianEngine()), numeric.NewRenderer(numeric.RendererHex))
	r, err := Resolve(typ, ctx, 0, "")
	require.NoError(t, err)

	assert.Equal(t, "0x01234567", r.Display)
	require.NotNil(t, r.AsInteger)

	got, err := r.AsInteger.AsU64()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x01234567), got)
}

// Scenario 3: UTF-8 character, pretty renderer.
func TestScenarioUTF8Character(t *testing.T) {
	data := []byte{0xE2, 0x9D, 0x84}
	ctx := bytectx.New(data)

	typ := Character(numeric.UTF8(), numeric.NewRenderer(numeric.RendererCharacter))
	r, err := Resolve(typ, ctx, 0, "")
	require.NoError(t, err)

	assert.Equal(t, "'❄'", r.Display)
	assert.Equal(t, 3, r.BaseSize())
}

// Scenario 4: EnumLookup hit.
func TestScenarioEnumLookup(t *testing.T) {
	data := []byte{0x00, 0x00, 0x00, 0x01}
	ctx := bytectx.New(data)

	d := dictionary.New()
	require.NoError(t, d.LoadEnumCSV("TerrariaGameMode", "1,MediumCore\n"))

	typ, err := EnumLookup(numeric.U32(endian.GetBigEndianEngine()), d, "TerrariaGameMode")
	require.NoError(t, err)

	r, err := Resolve(typ, ctx, 0, "")
	require.NoError(t, err)
	assert.Equal(t, "TerrariaGameMode::MediumCore", r.Display)
}

// Scenario 5: Bitmask with two named bits set.
func TestScenarioBitmask(t *testing.T) {
	data := []byte{0x00, 0x06}
	ctx := bytectx.New(data)

	d := dictionary.New()
	require.NoError(t, d.LoadBitmaskCSV("TerrariaVisibility", "1,HIDE_SLOT_HEAD\n2,HIDE_SLOT_BODY\n"))

	typ, err := Bitmask(numeric.U16(endian.GetBigEndianEngine()), d, "TerrariaVisibility", false)
	require.NoError(t, err)

	r, err := Resolve(typ, ctx, 0, "")
	require.NoError(t, err)
	assert.Equal(t, "HIDE_SLOT_HEAD | HIDE_SLOT_BODY", r.Display)
}

func TestStructFieldOrderAndAlignment(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}
	ctx := bytectx.New(data)

	typ := Struct([]StructField{
		{Name: "a", Type: Integer(numeric.U8(), numeric.NewRenderer(numeric.RendererDefault))},
		{Name: "b", Type: Integer(numeric.U16(endian.GetBigEndianEngine()), numeric.NewRenderer(numeric.RendererDefault))},
	})

	r, err := Resolve(typ, ctx, 0, "")
	require.NoError(t, err)
	assert.Equal(t, "{ a: 1, b: 515 }", r.Display)
	assert.Equal(t, 3, r.BaseSize())
	assert.Len(t, r.Children, 2)
}

func TestArrayZeroLengthEdgeCase(t *testing.T) {
	data := []byte{0x01, 0x02}
	ctx := bytectx.New(data)

	typ := Array(Integer(numeric.U8(), numeric.NewRenderer(numeric.RendererDefault)), 0)
	r, err := Resolve(typ, ctx, 1, "")
	require.NoError(t, err)

	assert.Equal(t, "[ ]", r.Display)
	assert.Equal(t, 1, r.BaseStart)
	assert.Equal(t, 1, r.BaseEnd)
	assert.Equal(t, 1, r.AlignedStart)
	assert.Equal(t, 1, r.AlignedEnd)
	assert.Empty(t, r.Children)
}

func TestArrayOfIntegers(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	ctx := bytectx.New(data)

	typ := Array(Integer(numeric.U8(), numeric.NewRenderer(numeric.RendererDefault)), 4)
	r, err := Resolve(typ, ctx, 0, "")
	require.NoError(t, err)

	assert.Equal(t, "[ 1, 2, 3, 4 ]", r.Display)
	assert.Equal(t, 4, r.BaseSize())
}

func TestBlobRejectsZeroLength(t *testing.T) {
	_, err := Blob(0, numeric.NewRenderer(numeric.RendererDefault))
	require.Error(t, err)
}

func TestBlobDisplay(t *testing.T) {
	data := make([]byte, 16)
	ctx := bytectx.New(data)

	typ, err := Blob(16, numeric.NewRenderer(numeric.RendererDefault))
	require.NoError(t, err)

	r, err := Resolve(typ, ctx, 0, "")
	require.NoError(t, err)
	assert.Equal(t, "Binary blob (16 bytes)", r.Display)
}

func TestLengthTagValueKnownTypeCode(t *testing.T) {
	data := []byte{0x00, 0x01, 'A'}
	ctx := bytectx.New(data)

	valueTypes := map[uint64]H2Type{
		0: Integer(numeric.U8(), numeric.NewRenderer(numeric.RendererHex)),
	}

	typ := LengthTagValue(
		Integer(numeric.U8(), numeric.NewRenderer(numeric.RendererDefault)),
		Integer(numeric.U8(), numeric.NewRenderer(numeric.RendererDefault)),
		valueTypes,
		nil,
	)

	r, err := Resolve(typ, ctx, 0, "")
	require.NoError(t, err)
	assert.Equal(t, 3, r.BaseSize())
	assert.Contains(t, r.Display, "Type: 0")
	assert.Contains(t, r.Display, "Length: 1")
}

func TestLengthTagValueUnknownFallsBackToRawBytes(t *testing.T) {
	data := []byte{0x09, 0x02, 'A', 'B'}
	ctx := bytectx.New(data)

	typ := LengthTagValue(
		Integer(numeric.U8(), numeric.NewRenderer(numeric.RendererDefault)),
		Integer(numeric.U8(), numeric.NewRenderer(numeric.RendererDefault)),
		map[uint64]H2Type{},
		nil,
	)

	r, err := Resolve(typ, ctx, 0, "")
	require.NoError(t, err)
	assert.Equal(t, 4, r.BaseSize())
}

func TestRGBDisplay(t *testing.T) {
	data := []byte{0x41, 0x42, 0x43}
	ctx := bytectx.New(data)

	r, err := Resolve(RGB(), ctx, 0, "")
	require.NoError(t, err)
	assert.Equal(t, "#414243", r.Display)
}

func TestMAC6Display(t *testing.T) {
	data := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB}
	ctx := bytectx.New(data)

	r, err := Resolve(MAC6(), ctx, 0, "")
	require.NoError(t, err)
	assert.Equal(t, "01:23:45:67:89:AB", r.Display)
}

func TestUUIDNilAndVersioned(t *testing.T) {
	nilData := make([]byte, 16)
	ctx := bytectx.New(nilData)

	r, err := Resolve(UUID(endian.GetBigEndianEngine(), true), ctx, 0, "")
	require.NoError(t, err)
	assert.Equal(t, "00000000-0000-0000-0000-000000000000 (Nil UUID)", r.Display)

	random := []byte{0x29, 0x5c, 0xf0, 0x7f, 0xeb, 0xf2, 0x4d, 0x87, 0xa8, 0x1c, 0x0f, 0x64, 0xa0, 0xe2, 0xe0, 0x2f}
	ctx2 := bytectx.New(random)

	r2, err := Resolve(UUID(endian.GetBigEndianEngine(), true), ctx2, 0, "")
	require.NoError(t, err)
	assert.Equal(t, "295cf07f-ebf2-4d87-a81c-0f64a0e2e02f (UUIDv4 / Random)", r2.Display)
}
