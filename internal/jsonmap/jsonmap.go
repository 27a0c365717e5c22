// Package jsonmap reads typed values out of decoded JSON objects.
//
// Every getter reports a missing or wrong-shaped value as an error wrapping
// constants.ErrMalformedInput. Optional getters accept an absent key (and a
// JSON null) and return the zero value instead.
package jsonmap

import (
	"fmt"
	"time"

	"github.com/notion-sdk/notion-go/pkg/constants"
)

func malformed(key string, format string, args ...any) error {
	return fmt.Errorf("%w: %q %s", constants.ErrMalformedInput, key, fmt.Sprintf(format, args...))
}

// Has reports whether key is present and not null.
func Has(m map[string]any, key string) bool {
	v, ok := m[key]
	return ok && v != nil
}

func String(m map[string]any, key string) (string, error) {
	v, ok := m[key]
	if !ok {
		return "", malformed(key, "is missing")
	}
	s, ok := v.(string)
	if !ok {
		return "", malformed(key, "must be a string, got %T", v)
	}
	return s, nil
}

func OptionalString(m map[string]any, key string) (string, error) {
	if !Has(m, key) {
		return "", nil
	}
	return String(m, key)
}

// NullableString distinguishes an absent or null value (nil) from an empty string.
func NullableString(m map[string]any, key string) (*string, error) {
	if !Has(m, key) {
		return nil, nil
	}
	s, err := String(m, key)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func Bool(m map[string]any, key string) (bool, error) {
	v, ok := m[key]
	if !ok {
		return false, malformed(key, "is missing")
	}
	b, ok := v.(bool)
	if !ok {
		return false, malformed(key, "must be a boolean, got %T", v)
	}
	return b, nil
}

func OptionalBool(m map[string]any, key string) (bool, error) {
	if !Has(m, key) {
		return false, nil
	}
	return Bool(m, key)
}

// NullableNumber accepts the numeric types produced by JSON and CBOR decoders.
func NullableNumber(m map[string]any, key string) (*float64, error) {
	if !Has(m, key) {
		return nil, nil
	}
	var f float64
	switch n := m[key].(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint64:
		f = float64(n)
	default:
		return nil, malformed(key, "must be a number, got %T", n)
	}
	return &f, nil
}

func Object(m map[string]any, key string) (map[string]any, error) {
	v, ok := m[key]
	if !ok {
		return nil, malformed(key, "is missing")
	}
	o, ok := v.(map[string]any)
	if !ok {
		return nil, malformed(key, "must be an object, got %T", v)
	}
	return o, nil
}

func OptionalObject(m map[string]any, key string) (map[string]any, error) {
	if !Has(m, key) {
		return nil, nil
	}
	return Object(m, key)
}

func Objects(m map[string]any, key string) ([]map[string]any, error) {
	v, ok := m[key]
	if !ok {
		return nil, malformed(key, "is missing")
	}
	return toObjects(key, v)
}

func OptionalObjects(m map[string]any, key string) ([]map[string]any, error) {
	if !Has(m, key) {
		return nil, nil
	}
	return Objects(m, key)
}

func toObjects(key string, v any) ([]map[string]any, error) {
	switch items := v.(type) {
	case []map[string]any:
		return items, nil
	case []any:
		objects := make([]map[string]any, 0, len(items))
		for i, item := range items {
			o, ok := item.(map[string]any)
			if !ok {
				return nil, malformed(key, "item %d must be an object, got %T", i, item)
			}
			objects = append(objects, o)
		}
		return objects, nil
	default:
		return nil, malformed(key, "must be an array, got %T", v)
	}
}

// Time parses an ISO-8601 timestamp. A missing or null key yields the zero time.
func Time(m map[string]any, key string) (time.Time, error) {
	if !Has(m, key) {
		return time.Time{}, nil
	}
	s, err := String(m, key)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, malformed(key, "is not an ISO-8601 timestamp: %v", err)
	}
	return t, nil
}

// FormatTime is the inverse of Time. Timestamps are written with millisecond
// precision like the API does, unless they carry a finer fraction.
func FormatTime(t time.Time) string {
	if t.Nanosecond()%int(time.Millisecond) != 0 {
		return t.Format(time.RFC3339Nano)
	}
	return t.Format(constants.TimestampLayout)
}
