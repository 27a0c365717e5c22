package encoding

import (
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/notion-sdk/notion-go/internal/codec"
)

// CborMarshaler writes payload maps as canonical CBOR, so that equal
// payloads produce equal snapshots.
type CborMarshaler struct {
}

func (c CborMarshaler) Marshal(v any) ([]byte, error) {
	return getCborEncoder().Marshal(v)
}

func (c CborMarshaler) NewEncoder(w io.Writer) codec.Encoder {
	return getCborEncoder().NewEncoder(w)
}

// CborUnmarshaler decodes CBOR maps into map[string]any, the shape the block
// and property factories read.
type CborUnmarshaler struct {
}

func (c CborUnmarshaler) Unmarshal(data []byte, dst any) error {
	return getCborDecoder().Unmarshal(data, dst)
}

func (c CborUnmarshaler) NewDecoder(r io.Reader) codec.Decoder {
	return getCborDecoder().NewDecoder(r)
}

func getCborEncoder() cbor.EncMode {
	em, err := cbor.EncOptions{
		Sort:    cbor.SortCanonical,
		Time:    cbor.TimeRFC3339,
		TimeTag: cbor.EncTagRequired,
	}.EncMode()
	if err != nil {
		panic(err)
	}

	return em
}

func getCborDecoder() cbor.DecMode {
	dm, err := cbor.DecOptions{
		DefaultMapType: mapType,
	}.DecMode()
	if err != nil {
		panic(err)
	}

	return dm
}
