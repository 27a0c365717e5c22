package blocks

// Breadcrumb shows the path to the page it is placed in. It has no content
// and cannot hold children.
type Breadcrumb struct {
	leafBlock
}

func NewBreadcrumb() Breadcrumb {
	return Breadcrumb{newLeafBlock(TypeBreadcrumb)}
}

func BreadcrumbFromMap(m map[string]any) (Breadcrumb, error) {
	b, _, err := leafBlockFromMap(m, TypeBreadcrumb)
	if err != nil {
		return Breadcrumb{}, err
	}
	return Breadcrumb{b}, nil
}

func (b Breadcrumb) ToMap() map[string]any {
	return b.toMap(map[string]any{})
}

func (b Breadcrumb) ToUpdateMap() map[string]any {
	return b.toUpdateMap(map[string]any{})
}

func (b Breadcrumb) Archive() Block {
	return Breadcrumb{b.archive()}
}
