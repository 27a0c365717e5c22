package blocks

import (
	"github.com/notion-sdk/notion-go/internal/jsonmap"
	"github.com/notion-sdk/notion-go/pkg/models"
)

// Bookmark is a link preview with an optional caption.
type Bookmark struct {
	leafBlock
	url     string
	caption []models.RichText
}

func NewBookmark(url string) Bookmark {
	return Bookmark{
		leafBlock: newLeafBlock(TypeBookmark),
		url:       url,
		caption:   []models.RichText{},
	}
}

func BookmarkFromMap(m map[string]any) (Bookmark, error) {
	b, content, err := leafBlockFromMap(m, TypeBookmark)
	if err != nil {
		return Bookmark{}, err
	}
	url, err := jsonmap.String(content, "url")
	if err != nil {
		return Bookmark{}, err
	}
	items, err := jsonmap.OptionalObjects(content, "caption")
	if err != nil {
		return Bookmark{}, err
	}
	caption, err := models.RichTextsFromMaps(items)
	if err != nil {
		return Bookmark{}, err
	}
	return Bookmark{leafBlock: b, url: url, caption: caption}, nil
}

func (b Bookmark) URL() string {
	return b.url
}

func (b Bookmark) Caption() []models.RichText {
	return copyTexts(b.caption)
}

func (b Bookmark) content() map[string]any {
	return map[string]any{
		"url":     b.url,
		"caption": models.RichTextsToMaps(b.caption),
	}
}

func (b Bookmark) ToMap() map[string]any {
	return b.toMap(b.content())
}

func (b Bookmark) ToUpdateMap() map[string]any {
	return b.toUpdateMap(b.content())
}

func (b Bookmark) ChangeURL(url string) Bookmark {
	b.metadata = b.metadata.Update()
	b.url = url
	return b
}

func (b Bookmark) ChangeCaption(caption ...models.RichText) Bookmark {
	b.metadata = b.metadata.Update()
	b.caption = copyTexts(caption)
	return b
}

func (b Bookmark) Archive() Block {
	return Bookmark{leafBlock: b.archive(), url: b.url, caption: b.caption}
}
