package properties

import "github.com/notion-sdk/notion-go/internal/jsonmap"

// Number is a numeric property. An empty cell has no value.
type Number struct {
	metadata PropertyMetadata
	number   *float64
}

func NewNumber(n float64) Number {
	return Number{metadata: NewPropertyMetadata("", TypeNumber), number: &n}
}

func NumberFromMap(m map[string]any) (Number, error) {
	meta, err := metadataFromMap(m, TypeNumber)
	if err != nil {
		return Number{}, err
	}
	n, err := jsonmap.NullableNumber(m, string(TypeNumber))
	if err != nil {
		return Number{}, err
	}
	return Number{metadata: meta, number: n}, nil
}

func (p Number) ToMap() map[string]any {
	if p.number == nil {
		return withValue(p.metadata, nil)
	}
	return withValue(p.metadata, *p.number)
}

func (p Number) Metadata() PropertyMetadata { return p.metadata }

// Number returns the value and whether the cell is filled.
func (p Number) Number() (float64, bool) {
	if p.number == nil {
		return 0, false
	}
	return *p.number, true
}

func (p Number) ChangeNumber(n float64) Number {
	p.number = &n
	return p
}

func (p Number) Clear() Number {
	p.number = nil
	return p
}
