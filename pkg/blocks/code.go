package blocks

import (
	"github.com/notion-sdk/notion-go/internal/jsonmap"
	"github.com/notion-sdk/notion-go/pkg/models"
)

// DefaultCodeLanguage is used when a code block is created without a language.
const DefaultCodeLanguage = "plain text"

// Code is a block of source code in a given language, with an optional caption.
type Code struct {
	richTextBlock
	language string
	caption  []models.RichText
}

func NewCode() Code {
	return Code{
		richTextBlock: newRichTextBlock(TypeCode, false),
		language:      DefaultCodeLanguage,
		caption:       []models.RichText{},
	}
}

func NewCodeFromString(language, content string) Code {
	return Code{
		richTextBlock: newRichTextBlock(TypeCode, false, textFromString(content)),
		language:      language,
		caption:       []models.RichText{},
	}
}

func CodeFromMap(m map[string]any) (Code, error) {
	b, content, err := richTextBlockFromMap(m, TypeCode, false)
	if err != nil {
		return Code{}, err
	}

	language, err := jsonmap.String(content, "language")
	if err != nil {
		return Code{}, err
	}
	items, err := jsonmap.OptionalObjects(content, "caption")
	if err != nil {
		return Code{}, err
	}
	caption, err := models.RichTextsFromMaps(items)
	if err != nil {
		return Code{}, err
	}

	return Code{richTextBlock: b, language: language, caption: caption}, nil
}

func (c Code) Language() string {
	return c.language
}

func (c Code) Caption() []models.RichText {
	return copyTexts(c.caption)
}

func (c Code) withFields(content map[string]any) map[string]any {
	content["language"] = c.language
	content["caption"] = models.RichTextsToMaps(c.caption)
	return content
}

func (c Code) ToMap() map[string]any {
	m := c.metadata.ToMap()
	m[string(TypeCode)] = c.withFields(c.content(true))
	return m
}

func (c Code) ToUpdateMap() map[string]any {
	return c.updateMap(c.withFields(c.content(false)))
}

func (c Code) ChangeLanguage(language string) Code {
	c.metadata = c.metadata.Update()
	c.language = language
	return c
}

func (c Code) ChangeCaption(caption ...models.RichText) Code {
	c.metadata = c.metadata.Update()
	c.caption = copyTexts(caption)
	return c
}

func (c Code) ChangeText(text ...models.RichText) Code {
	return Code{richTextBlock: c.withText(text), language: c.language, caption: c.caption}
}

func (c Code) AddText(text models.RichText) Code {
	return Code{richTextBlock: c.addText(text), language: c.language, caption: c.caption}
}

func (c Code) AddChild(Block) (Block, error) {
	return nil, errNoChildren(TypeCode)
}

func (c Code) ChangeChildren(...Block) (Block, error) {
	return nil, errNoChildren(TypeCode)
}

func (c Code) Archive() Block {
	return Code{richTextBlock: c.archive(), language: c.language, caption: c.caption}
}
