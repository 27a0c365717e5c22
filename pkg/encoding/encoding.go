// Package encoding provides the codecs used to move payload maps in and out
// of bytes: JSON for the API and CBOR for compact snapshots.
package encoding

import (
	"reflect"

	"github.com/notion-sdk/notion-go/internal/codec"
)

var mapType = reflect.TypeOf(map[string]any(nil))

// Format names a codec pair.
type Format string

const (
	FormatJSON Format = "json"
	FormatCBOR Format = "cbor"
)

// Codec bundles the two halves of a format.
type Codec struct {
	Marshaler   codec.Marshaler
	Unmarshaler codec.Unmarshaler
}

// ForFormat returns the codec registered under f.
func ForFormat(f Format) (Codec, bool) {
	switch f {
	case FormatJSON:
		return Codec{Marshaler: JSONMarshaler{}, Unmarshaler: JSONUnmarshaler{}}, true
	case FormatCBOR:
		return Codec{Marshaler: CborMarshaler{}, Unmarshaler: CborUnmarshaler{}}, true
	}
	return Codec{}, false
}
