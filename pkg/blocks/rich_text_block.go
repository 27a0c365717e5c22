package blocks

import (
	"github.com/notion-sdk/notion-go/internal/jsonmap"
	"github.com/notion-sdk/notion-go/pkg/models"
)

// richTextBlock is the content shared by every block made of rich text,
// optionally followed by nested blocks. Variants embed it and wrap its
// copy-on-write helpers so that they return their own type.
type richTextBlock struct {
	metadata BlockMetadata
	text     []models.RichText
	children []Block
	color    models.Color
	nested   bool
}

func newRichTextBlock(t BlockType, nested bool, text ...models.RichText) richTextBlock {
	return richTextBlock{
		metadata: NewBlockMetadata(t),
		text:     copyTexts(text),
		children: []Block{},
		nested:   nested,
	}
}

func textFromString(content string) models.RichText {
	return models.NewTextRichText(content)
}

// richTextBlockFromMap hydrates the shared content and returns the variant
// object keyed by the type discriminant, so callers can read extra fields.
func richTextBlockFromMap(m map[string]any, t BlockType, nested bool) (richTextBlock, map[string]any, error) {
	meta, err := BlockMetadataFromMap(m)
	if err != nil {
		return richTextBlock{}, nil, err
	}
	if err := meta.CheckType(t); err != nil {
		return richTextBlock{}, nil, err
	}

	content, err := jsonmap.Object(m, string(t))
	if err != nil {
		return richTextBlock{}, nil, err
	}

	items, err := jsonmap.Objects(content, "rich_text")
	if err != nil {
		return richTextBlock{}, nil, err
	}
	text, err := models.RichTextsFromMaps(items)
	if err != nil {
		return richTextBlock{}, nil, err
	}

	color, err := jsonmap.OptionalString(content, "color")
	if err != nil {
		return richTextBlock{}, nil, err
	}

	children := []Block{}
	if nested {
		childItems, err := jsonmap.OptionalObjects(content, "children")
		if err != nil {
			return richTextBlock{}, nil, err
		}
		if children, err = FromMaps(childItems); err != nil {
			return richTextBlock{}, nil, err
		}
	}

	return richTextBlock{
		metadata: meta,
		text:     text,
		children: children,
		color:    models.Color(color),
		nested:   nested,
	}, content, nil
}

func (b richTextBlock) Metadata() BlockMetadata {
	return b.metadata
}

func (b richTextBlock) Text() []models.RichText {
	return copyTexts(b.text)
}

func (b richTextBlock) Children() []Block {
	return copyBlocks(b.children)
}

func (b richTextBlock) Color() models.Color {
	return b.color
}

// String returns the plain text of the block.
func (b richTextBlock) String() string {
	return models.MultipleToString(b.text...)
}

func (b richTextBlock) content(withChildren bool) map[string]any {
	c := map[string]any{
		"rich_text": models.RichTextsToMaps(b.text),
	}
	if b.color != "" {
		c["color"] = string(b.color)
	}
	if withChildren && b.nested {
		c["children"] = ToMaps(b.children...)
	}
	return c
}

func (b richTextBlock) ToMap() map[string]any {
	m := b.metadata.ToMap()
	m[string(b.metadata.typ)] = b.content(true)
	return m
}

func (b richTextBlock) ToUpdateMap() map[string]any {
	return b.updateMap(b.content(false))
}

func (b richTextBlock) updateMap(content map[string]any) map[string]any {
	return map[string]any{
		string(b.metadata.typ): content,
		"archived":             b.metadata.archived,
	}
}

func (b richTextBlock) withText(text []models.RichText) richTextBlock {
	b.metadata = b.metadata.Update()
	b.text = copyTexts(text)
	return b
}

func (b richTextBlock) addText(text models.RichText) richTextBlock {
	texts := make([]models.RichText, 0, len(b.text)+1)
	texts = append(texts, b.text...)
	return b.withText(append(texts, text))
}

func (b richTextBlock) withColor(c models.Color) richTextBlock {
	b.metadata = b.metadata.Update()
	b.color = c
	return b
}

func (b richTextBlock) addChild(child Block) richTextBlock {
	children := make([]Block, 0, len(b.children)+1)
	children = append(children, b.children...)
	b.children = append(children, child)
	b.metadata = b.metadata.UpdateHasChildren(true)
	return b
}

func (b richTextBlock) changeChildren(children []Block) richTextBlock {
	b.children = copyBlocks(children)
	b.metadata = b.metadata.UpdateHasChildren(len(children) > 0)
	return b
}

func (b richTextBlock) archive() richTextBlock {
	b.metadata = b.metadata.Archive()
	return b
}
