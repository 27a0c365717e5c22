package blocks

import "github.com/notion-sdk/notion-go/pkg/models"

// BulletedListItem is an item of an unordered list. Nested blocks form a sub-list.
type BulletedListItem struct {
	richTextBlock
}

func NewBulletedListItem() BulletedListItem {
	return BulletedListItem{newRichTextBlock(TypeBulletedListItem, true)}
}

func NewBulletedListItemFromString(content string) BulletedListItem {
	return BulletedListItem{newRichTextBlock(TypeBulletedListItem, true, textFromString(content))}
}

func BulletedListItemFromMap(m map[string]any) (BulletedListItem, error) {
	b, _, err := richTextBlockFromMap(m, TypeBulletedListItem, true)
	if err != nil {
		return BulletedListItem{}, err
	}
	return BulletedListItem{b}, nil
}

func (i BulletedListItem) ChangeText(text ...models.RichText) BulletedListItem {
	return BulletedListItem{i.withText(text)}
}

func (i BulletedListItem) AddText(text models.RichText) BulletedListItem {
	return BulletedListItem{i.addText(text)}
}

func (i BulletedListItem) ChangeColor(color models.Color) BulletedListItem {
	return BulletedListItem{i.withColor(color)}
}

// WithChildren replaces the nested blocks.
func (i BulletedListItem) WithChildren(children ...Block) BulletedListItem {
	return BulletedListItem{i.changeChildren(children)}
}

// AppendChild adds a nested block after the existing ones.
func (i BulletedListItem) AppendChild(child Block) BulletedListItem {
	return BulletedListItem{i.addChild(child)}
}

func (i BulletedListItem) AddChild(child Block) (Block, error) {
	return i.AppendChild(child), nil
}

func (i BulletedListItem) ChangeChildren(children ...Block) (Block, error) {
	return i.WithChildren(children...), nil
}

func (i BulletedListItem) Archive() Block {
	return BulletedListItem{i.archive()}
}
