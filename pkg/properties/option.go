package properties

import (
	"github.com/notion-sdk/notion-go/internal/jsonmap"
	"github.com/notion-sdk/notion-go/pkg/models"
)

// Option is a choice of a select, multi-select or status property. Requests
// may name an option without knowing its id.
type Option struct {
	ID    string
	Name  string
	Color models.Color
}

func OptionFromMap(m map[string]any) (Option, error) {
	var (
		o   Option
		err error
	)
	if o.Name, err = jsonmap.String(m, "name"); err != nil {
		return Option{}, err
	}
	if o.ID, err = jsonmap.OptionalString(m, "id"); err != nil {
		return Option{}, err
	}
	color, err := jsonmap.OptionalString(m, "color")
	if err != nil {
		return Option{}, err
	}
	o.Color = models.Color(color)
	return o, nil
}

func (o Option) ToMap() map[string]any {
	m := map[string]any{"name": o.Name}
	if o.ID != "" {
		m["id"] = o.ID
	}
	if o.Color != "" {
		m["color"] = string(o.Color)
	}
	return m
}

func optionFromMap(m map[string]any, t PropertyType) (*Option, error) {
	raw, err := jsonmap.OptionalObject(m, string(t))
	if err != nil || raw == nil {
		return nil, err
	}
	o, err := OptionFromMap(raw)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func optionToMap(o *Option) any {
	if o == nil {
		return nil
	}
	return o.ToMap()
}
