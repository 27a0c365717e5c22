package properties

import (
	"github.com/notion-sdk/notion-go/internal/jsonmap"
	"github.com/notion-sdk/notion-go/pkg/models"
)

// Title is the name of a page. Every page has exactly one title property.
type Title struct {
	metadata PropertyMetadata
	title    []models.RichText
}

func NewTitle(title ...models.RichText) Title {
	return Title{metadata: NewPropertyMetadata("title", TypeTitle), title: copyTexts(title)}
}

func NewTitleFromString(title string) Title {
	return NewTitle(models.NewTextRichText(title))
}

func TitleFromMap(m map[string]any) (Title, error) {
	meta, err := metadataFromMap(m, TypeTitle)
	if err != nil {
		return Title{}, err
	}
	title, err := textsFromMap(m, TypeTitle)
	if err != nil {
		return Title{}, err
	}
	return Title{metadata: meta, title: title}, nil
}

func (p Title) ToMap() map[string]any {
	return withValue(p.metadata, models.RichTextsToMaps(p.title))
}

func (p Title) Metadata() PropertyMetadata { return p.metadata }
func (p Title) Title() []models.RichText   { return copyTexts(p.title) }
func (p Title) String() string             { return models.MultipleToString(p.title...) }

func (p Title) ChangeTitle(title ...models.RichText) Title {
	p.title = copyTexts(title)
	return p
}

func textsFromMap(m map[string]any, t PropertyType) ([]models.RichText, error) {
	items, err := jsonmap.OptionalObjects(m, string(t))
	if err != nil {
		return nil, err
	}
	texts, err := models.RichTextsFromMaps(items)
	if err != nil {
		return nil, err
	}
	return texts, nil
}

func copyTexts(texts []models.RichText) []models.RichText {
	if len(texts) == 0 {
		return []models.RichText{}
	}
	out := make([]models.RichText, len(texts))
	copy(out, texts)
	return out
}
