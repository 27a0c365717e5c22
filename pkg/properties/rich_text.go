package properties

import "github.com/notion-sdk/notion-go/pkg/models"

// RichTextProperty is a text cell. It is named after its type tag to avoid
// clashing with models.RichText.
type RichTextProperty struct {
	metadata PropertyMetadata
	text     []models.RichText
}

func NewRichText(text ...models.RichText) RichTextProperty {
	return RichTextProperty{metadata: NewPropertyMetadata("", TypeRichText), text: copyTexts(text)}
}

func NewRichTextFromString(text string) RichTextProperty {
	return NewRichText(models.NewTextRichText(text))
}

func RichTextFromMap(m map[string]any) (RichTextProperty, error) {
	meta, err := metadataFromMap(m, TypeRichText)
	if err != nil {
		return RichTextProperty{}, err
	}
	text, err := textsFromMap(m, TypeRichText)
	if err != nil {
		return RichTextProperty{}, err
	}
	return RichTextProperty{metadata: meta, text: text}, nil
}

func (p RichTextProperty) ToMap() map[string]any {
	return withValue(p.metadata, models.RichTextsToMaps(p.text))
}

func (p RichTextProperty) Metadata() PropertyMetadata { return p.metadata }
func (p RichTextProperty) Text() []models.RichText    { return copyTexts(p.text) }
func (p RichTextProperty) String() string             { return models.MultipleToString(p.text...) }

func (p RichTextProperty) ChangeText(text ...models.RichText) RichTextProperty {
	p.text = copyTexts(text)
	return p
}
