package encoding

import (
	"io"

	"github.com/goccy/go-json"
	"github.com/notion-sdk/notion-go/internal/codec"
)

// JSONMarshaler is the wire codec of the API client.
type JSONMarshaler struct {
}

func (c JSONMarshaler) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (c JSONMarshaler) NewEncoder(w io.Writer) codec.Encoder {
	return json.NewEncoder(w)
}

type JSONUnmarshaler struct {
}

func (c JSONUnmarshaler) Unmarshal(data []byte, dst any) error {
	return json.Unmarshal(data, dst)
}

func (c JSONUnmarshaler) NewDecoder(r io.Reader) codec.Decoder {
	return json.NewDecoder(r)
}
