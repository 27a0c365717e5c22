package blocks

import "github.com/notion-sdk/notion-go/internal/jsonmap"

// ChildPage is the block representing a sub-page. Its content lives in the
// page itself; the block only carries the title and cannot be created
// through the blocks endpoints.
type ChildPage struct {
	leafBlock
	title string
}

func ChildPageFromMap(m map[string]any) (ChildPage, error) {
	b, content, err := leafBlockFromMap(m, TypeChildPage)
	if err != nil {
		return ChildPage{}, err
	}
	title, err := jsonmap.String(content, "title")
	if err != nil {
		return ChildPage{}, err
	}
	return ChildPage{leafBlock: b, title: title}, nil
}

func (c ChildPage) Title() string {
	return c.title
}

func (c ChildPage) String() string {
	return c.title
}

func (c ChildPage) ToMap() map[string]any {
	return c.toMap(map[string]any{"title": c.title})
}

func (c ChildPage) ToUpdateMap() map[string]any {
	return c.toUpdateMap(map[string]any{"title": c.title})
}

func (c ChildPage) ChangeTitle(title string) ChildPage {
	c.metadata = c.metadata.Update()
	c.title = title
	return c
}

func (c ChildPage) Archive() Block {
	return ChildPage{leafBlock: c.archive(), title: c.title}
}
