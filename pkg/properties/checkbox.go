package properties

import "github.com/notion-sdk/notion-go/internal/jsonmap"

type Checkbox struct {
	metadata PropertyMetadata
	checked  bool
}

func NewCheckbox(checked bool) Checkbox {
	return Checkbox{metadata: NewPropertyMetadata("", TypeCheckbox), checked: checked}
}

func CheckboxFromMap(m map[string]any) (Checkbox, error) {
	meta, err := metadataFromMap(m, TypeCheckbox)
	if err != nil {
		return Checkbox{}, err
	}
	checked, err := jsonmap.Bool(m, string(TypeCheckbox))
	if err != nil {
		return Checkbox{}, err
	}
	return Checkbox{metadata: meta, checked: checked}, nil
}

func (p Checkbox) ToMap() map[string]any {
	return withValue(p.metadata, p.checked)
}

func (p Checkbox) Metadata() PropertyMetadata { return p.metadata }
func (p Checkbox) IsChecked() bool            { return p.checked }

func (p Checkbox) Check() Checkbox {
	p.checked = true
	return p
}

func (p Checkbox) Uncheck() Checkbox {
	p.checked = false
	return p
}
