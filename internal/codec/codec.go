// Package codec defines the serialization seam between payload maps and
// bytes. pkg/encoding provides JSON and CBOR implementations; the HTTP
// connection and blocks.Decode/Encode accept any of them.
package codec

import "io"

type Encoder interface {
	Encode(v any) error
}

type Decoder interface {
	Decode(v any) error
}

// Marshaler encodes payload maps, as a whole or as a stream.
type Marshaler interface {
	Marshal(v any) ([]byte, error)
	NewEncoder(w io.Writer) Encoder
}

// Unmarshaler decodes bytes into dst, usually a *map[string]any.
type Unmarshaler interface {
	Unmarshal(data []byte, dst any) error
	NewDecoder(r io.Reader) Decoder
}
