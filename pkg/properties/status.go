package properties

type Status struct {
	metadata PropertyMetadata
	option   *Option
}

func NewStatus(name string) Status {
	return Status{metadata: NewPropertyMetadata("", TypeStatus), option: &Option{Name: name}}
}

func StatusFromMap(m map[string]any) (Status, error) {
	meta, err := metadataFromMap(m, TypeStatus)
	if err != nil {
		return Status{}, err
	}
	o, err := optionFromMap(m, TypeStatus)
	if err != nil {
		return Status{}, err
	}
	return Status{metadata: meta, option: o}, nil
}

func (p Status) ToMap() map[string]any {
	return withValue(p.metadata, optionToMap(p.option))
}

func (p Status) Metadata() PropertyMetadata { return p.metadata }

func (p Status) Option() (Option, bool) {
	if p.option == nil {
		return Option{}, false
	}
	return *p.option, true
}

func (p Status) ChangeOption(o Option) Status {
	p.option = &o
	return p
}
