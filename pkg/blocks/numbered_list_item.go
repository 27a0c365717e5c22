package blocks

import "github.com/notion-sdk/notion-go/pkg/models"

// NumberedListItem is an item of an ordered list. Nested blocks form a sub-list.
type NumberedListItem struct {
	richTextBlock
}

func NewNumberedListItem() NumberedListItem {
	return NumberedListItem{newRichTextBlock(TypeNumberedListItem, true)}
}

func NewNumberedListItemFromString(content string) NumberedListItem {
	return NumberedListItem{newRichTextBlock(TypeNumberedListItem, true, textFromString(content))}
}

func NumberedListItemFromMap(m map[string]any) (NumberedListItem, error) {
	b, _, err := richTextBlockFromMap(m, TypeNumberedListItem, true)
	if err != nil {
		return NumberedListItem{}, err
	}
	return NumberedListItem{b}, nil
}

func (i NumberedListItem) ChangeText(text ...models.RichText) NumberedListItem {
	return NumberedListItem{i.withText(text)}
}

func (i NumberedListItem) AddText(text models.RichText) NumberedListItem {
	return NumberedListItem{i.addText(text)}
}

func (i NumberedListItem) ChangeColor(color models.Color) NumberedListItem {
	return NumberedListItem{i.withColor(color)}
}

// WithChildren replaces the nested blocks.
func (i NumberedListItem) WithChildren(children ...Block) NumberedListItem {
	return NumberedListItem{i.changeChildren(children)}
}

// AppendChild adds a nested block after the existing ones.
func (i NumberedListItem) AppendChild(child Block) NumberedListItem {
	return NumberedListItem{i.addChild(child)}
}

func (i NumberedListItem) AddChild(child Block) (Block, error) {
	return i.AppendChild(child), nil
}

func (i NumberedListItem) ChangeChildren(children ...Block) (Block, error) {
	return i.WithChildren(children...), nil
}

func (i NumberedListItem) Archive() Block {
	return NumberedListItem{i.archive()}
}
