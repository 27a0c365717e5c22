package properties

import (
	"fmt"

	"github.com/notion-sdk/notion-go/internal/jsonmap"
)

type MultiSelect struct {
	metadata PropertyMetadata
	options  []Option
}

func NewMultiSelect(names ...string) MultiSelect {
	options := make([]Option, 0, len(names))
	for _, name := range names {
		options = append(options, Option{Name: name})
	}
	return MultiSelect{metadata: NewPropertyMetadata("", TypeMultiSelect), options: options}
}

func MultiSelectFromMap(m map[string]any) (MultiSelect, error) {
	meta, err := metadataFromMap(m, TypeMultiSelect)
	if err != nil {
		return MultiSelect{}, err
	}
	items, err := jsonmap.OptionalObjects(m, string(TypeMultiSelect))
	if err != nil {
		return MultiSelect{}, err
	}
	options := make([]Option, 0, len(items))
	for i, item := range items {
		o, err := OptionFromMap(item)
		if err != nil {
			return MultiSelect{}, fmt.Errorf("option %d: %w", i, err)
		}
		options = append(options, o)
	}
	return MultiSelect{metadata: meta, options: options}, nil
}

func (p MultiSelect) ToMap() map[string]any {
	items := make([]any, 0, len(p.options))
	for _, o := range p.options {
		items = append(items, o.ToMap())
	}
	return withValue(p.metadata, items)
}

func (p MultiSelect) Metadata() PropertyMetadata { return p.metadata }

func (p MultiSelect) Options() []Option {
	return append([]Option{}, p.options...)
}

func (p MultiSelect) ChangeOptions(options ...Option) MultiSelect {
	p.options = append([]Option{}, options...)
	return p
}

func (p MultiSelect) AddOption(o Option) MultiSelect {
	return p.ChangeOptions(append(p.Options(), o)...)
}
