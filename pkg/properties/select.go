package properties

type Select struct {
	metadata PropertyMetadata
	option   *Option
}

func NewSelect(name string) Select {
	return Select{metadata: NewPropertyMetadata("", TypeSelect), option: &Option{Name: name}}
}

func SelectFromMap(m map[string]any) (Select, error) {
	meta, err := metadataFromMap(m, TypeSelect)
	if err != nil {
		return Select{}, err
	}
	o, err := optionFromMap(m, TypeSelect)
	if err != nil {
		return Select{}, err
	}
	return Select{metadata: meta, option: o}, nil
}

func (p Select) ToMap() map[string]any {
	return withValue(p.metadata, optionToMap(p.option))
}

func (p Select) Metadata() PropertyMetadata { return p.metadata }

// Option returns the selected option and whether one is selected.
func (p Select) Option() (Option, bool) {
	if p.option == nil {
		return Option{}, false
	}
	return *p.option, true
}

func (p Select) ChangeOption(o Option) Select {
	p.option = &o
	return p
}

func (p Select) Clear() Select {
	p.option = nil
	return p
}
