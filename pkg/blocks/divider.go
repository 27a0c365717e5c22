package blocks

// Divider is a horizontal rule.
type Divider struct {
	leafBlock
}

func NewDivider() Divider {
	return Divider{newLeafBlock(TypeDivider)}
}

func DividerFromMap(m map[string]any) (Divider, error) {
	b, _, err := leafBlockFromMap(m, TypeDivider)
	if err != nil {
		return Divider{}, err
	}
	return Divider{b}, nil
}

func (d Divider) ToMap() map[string]any {
	return d.toMap(map[string]any{})
}

func (d Divider) ToUpdateMap() map[string]any {
	return d.toUpdateMap(map[string]any{})
}

func (d Divider) Archive() Block {
	return Divider{d.archive()}
}
