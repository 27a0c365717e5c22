package properties

import (
	"fmt"

	"github.com/notion-sdk/notion-go/internal/jsonmap"
	"github.com/notion-sdk/notion-go/pkg/constants"
)

// PropertyType is the discriminant stored in the "type" field of a property value.
type PropertyType string

const (
	TypeCheckbox       PropertyType = "checkbox"
	TypeCreatedTime    PropertyType = "created_time"
	TypeDate           PropertyType = "date"
	TypeEmail          PropertyType = "email"
	TypeLastEditedTime PropertyType = "last_edited_time"
	TypeMultiSelect    PropertyType = "multi_select"
	TypeNumber         PropertyType = "number"
	TypePhoneNumber    PropertyType = "phone_number"
	TypeRichText       PropertyType = "rich_text"
	TypeSelect         PropertyType = "select"
	TypeStatus         PropertyType = "status"
	TypeTitle          PropertyType = "title"
	TypeURL            PropertyType = "url"
)

// PropertyMetadata identifies a property value. The name is not part of the
// value itself: pages key their properties by name.
type PropertyMetadata struct {
	id   string
	name string
	typ  PropertyType
}

func NewPropertyMetadata(id string, t PropertyType) PropertyMetadata {
	return PropertyMetadata{id: id, typ: t}
}

func PropertyMetadataFromMap(m map[string]any) (PropertyMetadata, error) {
	t, err := jsonmap.String(m, "type")
	if err != nil {
		return PropertyMetadata{}, err
	}
	meta := PropertyMetadata{typ: PropertyType(t)}
	if meta.id, err = jsonmap.OptionalString(m, "id"); err != nil {
		return PropertyMetadata{}, err
	}
	if meta.name, err = jsonmap.OptionalString(m, "name"); err != nil {
		return PropertyMetadata{}, err
	}
	return meta, nil
}

func (m PropertyMetadata) CheckType(expected PropertyType) error {
	if m.typ != expected {
		return fmt.Errorf("%w: property type is %q, expected %q", constants.ErrTypeMismatch, m.typ, expected)
	}
	return nil
}

func (m PropertyMetadata) ToMap() map[string]any {
	out := map[string]any{"type": string(m.typ)}
	if m.id != "" {
		out["id"] = m.id
	}
	return out
}

func (m PropertyMetadata) WithName(name string) PropertyMetadata {
	m.name = name
	return m
}

func (m PropertyMetadata) ID() string         { return m.id }
func (m PropertyMetadata) Name() string       { return m.name }
func (m PropertyMetadata) Type() PropertyType { return m.typ }

func metadataFromMap(m map[string]any, t PropertyType) (PropertyMetadata, error) {
	meta, err := PropertyMetadataFromMap(m)
	if err != nil {
		return PropertyMetadata{}, err
	}
	if err := meta.CheckType(t); err != nil {
		return PropertyMetadata{}, err
	}
	return meta, nil
}

func withValue(meta PropertyMetadata, value any) map[string]any {
	m := meta.ToMap()
	m[string(meta.typ)] = value
	return m
}
