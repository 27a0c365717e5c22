package blocks

import (
	"github.com/notion-sdk/notion-go/internal/jsonmap"
	"github.com/notion-sdk/notion-go/pkg/models"
)

// Callout is highlighted text decorated with an icon.
type Callout struct {
	richTextBlock
	icon *models.Icon
}

func NewCallout() Callout {
	return Callout{richTextBlock: newRichTextBlock(TypeCallout, true)}
}

func NewCalloutFromString(icon models.Icon, content string) Callout {
	return Callout{
		richTextBlock: newRichTextBlock(TypeCallout, true, textFromString(content)),
		icon:          &icon,
	}
}

func CalloutFromMap(m map[string]any) (Callout, error) {
	b, content, err := richTextBlockFromMap(m, TypeCallout, true)
	if err != nil {
		return Callout{}, err
	}

	c := Callout{richTextBlock: b}
	im, err := jsonmap.OptionalObject(content, "icon")
	if err != nil {
		return Callout{}, err
	}
	if im != nil {
		icon, err := models.IconFromMap(im)
		if err != nil {
			return Callout{}, err
		}
		c.icon = &icon
	}
	return c, nil
}

func (c Callout) Icon() (models.Icon, bool) {
	if c.icon == nil {
		return models.Icon{}, false
	}
	return *c.icon, true
}

func (c Callout) withIconField(content map[string]any) map[string]any {
	if c.icon != nil {
		content["icon"] = c.icon.ToMap()
	}
	return content
}

func (c Callout) ToMap() map[string]any {
	m := c.metadata.ToMap()
	m[string(TypeCallout)] = c.withIconField(c.content(true))
	return m
}

func (c Callout) ToUpdateMap() map[string]any {
	return c.updateMap(c.withIconField(c.content(false)))
}

func (c Callout) ChangeIcon(icon models.Icon) Callout {
	c.metadata = c.metadata.Update()
	c.icon = &icon
	return c
}

func (c Callout) RemoveIcon() Callout {
	c.metadata = c.metadata.Update()
	c.icon = nil
	return c
}

func (c Callout) ChangeText(text ...models.RichText) Callout {
	return Callout{richTextBlock: c.withText(text), icon: c.icon}
}

func (c Callout) AddText(text models.RichText) Callout {
	return Callout{richTextBlock: c.addText(text), icon: c.icon}
}

func (c Callout) ChangeColor(color models.Color) Callout {
	return Callout{richTextBlock: c.withColor(color), icon: c.icon}
}

func (c Callout) WithChildren(children ...Block) Callout {
	return Callout{richTextBlock: c.changeChildren(children), icon: c.icon}
}

func (c Callout) AppendChild(child Block) Callout {
	return Callout{richTextBlock: c.addChild(child), icon: c.icon}
}

func (c Callout) AddChild(child Block) (Block, error) {
	return c.AppendChild(child), nil
}

func (c Callout) ChangeChildren(children ...Block) (Block, error) {
	return c.WithChildren(children...), nil
}

func (c Callout) Archive() Block {
	return Callout{richTextBlock: c.archive(), icon: c.icon}
}
