package constants

import "errors"

// Errors returned by the object model. They are always wrapped with the
// offending detail, match them with errors.Is.
var (
	ErrTypeMismatch         = errors.New("type mismatch")
	ErrUnsupportedOperation = errors.New("unsupported operation")
	ErrMalformedInput       = errors.New("malformed input")
	ErrUnknownType          = errors.New("unknown type")
)

// Errors returned by the HTTP client.
var (
	ErrNoToken     = errors.New("integration token not set")
	ErrNoBaseURL   = errors.New("base url not set")
	ErrAPI         = errors.New("notion api error")
	ErrNoMarshaler = errors.New("marshaler is not set")
	ErrNoID        = errors.New("object has no id")
)
