package properties

import (
	"fmt"

	"github.com/notion-sdk/notion-go/internal/jsonmap"
	"github.com/notion-sdk/notion-go/pkg/constants"
)

// Property is implemented by every property value variant.
type Property interface {
	Metadata() PropertyMetadata
	// ToMap returns {"id", "type", <type>: value}.
	ToMap() map[string]any
}

func asProperty[T Property](p T, err error) (Property, error) {
	if err != nil {
		return nil, err
	}
	return p, nil
}

// FromMap hydrates the property variant named by the "type" field of m.
func FromMap(m map[string]any) (Property, error) {
	t, err := jsonmap.String(m, "type")
	if err != nil {
		return nil, err
	}

	switch PropertyType(t) {
	case TypeCheckbox:
		return asProperty(CheckboxFromMap(m))
	case TypeCreatedTime:
		return asProperty(CreatedTimeFromMap(m))
	case TypeDate:
		return asProperty(DateFromMap(m))
	case TypeEmail:
		return asProperty(EmailFromMap(m))
	case TypeLastEditedTime:
		return asProperty(LastEditedTimeFromMap(m))
	case TypeMultiSelect:
		return asProperty(MultiSelectFromMap(m))
	case TypeNumber:
		return asProperty(NumberFromMap(m))
	case TypePhoneNumber:
		return asProperty(PhoneNumberFromMap(m))
	case TypeRichText:
		return asProperty(RichTextFromMap(m))
	case TypeSelect:
		return asProperty(SelectFromMap(m))
	case TypeStatus:
		return asProperty(StatusFromMap(m))
	case TypeTitle:
		return asProperty(TitleFromMap(m))
	case TypeURL:
		return asProperty(URLFromMap(m))
	default:
		return nil, fmt.Errorf("%w: property %q", constants.ErrUnknownType, t)
	}
}

// IsKnownType reports whether FromMap can hydrate properties of type t.
func IsKnownType(t PropertyType) bool {
	switch t {
	case TypeCheckbox, TypeCreatedTime, TypeDate, TypeEmail, TypeLastEditedTime,
		TypeMultiSelect, TypeNumber, TypePhoneNumber, TypeRichText, TypeSelect,
		TypeStatus, TypeTitle, TypeURL:
		return true
	}
	return false
}

// FromNamedMap hydrates a property found under name in a page's properties.
func FromNamedMap(name string, m map[string]any) (Property, error) {
	named := make(map[string]any, len(m)+1)
	for k, v := range m {
		named[k] = v
	}
	named["name"] = name
	return FromMap(named)
}

// IsWritable reports whether values of type t can be sent in page requests.
// Timestamps are computed by the API.
func IsWritable(t PropertyType) bool {
	switch t {
	case TypeCreatedTime, TypeLastEditedTime:
		return false
	}
	return true
}
