package blocks

import (
	"github.com/notion-sdk/notion-go/internal/jsonmap"
	"github.com/notion-sdk/notion-go/pkg/models"
)

type TableOfContents struct {
	leafBlock
	color models.Color
}

func NewTableOfContents() TableOfContents {
	return TableOfContents{leafBlock: newLeafBlock(TypeTableOfContents)}
}

func TableOfContentsFromMap(m map[string]any) (TableOfContents, error) {
	b, content, err := leafBlockFromMap(m, TypeTableOfContents)
	if err != nil {
		return TableOfContents{}, err
	}
	color, err := jsonmap.OptionalString(content, "color")
	if err != nil {
		return TableOfContents{}, err
	}
	return TableOfContents{leafBlock: b, color: models.Color(color)}, nil
}

func (t TableOfContents) Color() models.Color {
	return t.color
}

func (t TableOfContents) content() map[string]any {
	c := map[string]any{}
	if t.color != "" {
		c["color"] = string(t.color)
	}
	return c
}

func (t TableOfContents) ToMap() map[string]any {
	return t.toMap(t.content())
}

func (t TableOfContents) ToUpdateMap() map[string]any {
	return t.toUpdateMap(t.content())
}

func (t TableOfContents) ChangeColor(color models.Color) TableOfContents {
	t.metadata = t.metadata.Update()
	t.color = color
	return t
}

func (t TableOfContents) Archive() Block {
	return TableOfContents{leafBlock: t.archive(), color: t.color}
}
