package blocks

import "github.com/notion-sdk/notion-go/internal/jsonmap"

// Embed renders the content behind url inside the page.
type Embed struct {
	leafBlock
	url string
}

func NewEmbed(url string) Embed {
	return Embed{leafBlock: newLeafBlock(TypeEmbed), url: url}
}

func EmbedFromMap(m map[string]any) (Embed, error) {
	b, content, err := leafBlockFromMap(m, TypeEmbed)
	if err != nil {
		return Embed{}, err
	}
	url, err := jsonmap.String(content, "url")
	if err != nil {
		return Embed{}, err
	}
	return Embed{leafBlock: b, url: url}, nil
}

func (e Embed) URL() string {
	return e.url
}

func (e Embed) ToMap() map[string]any {
	return e.toMap(map[string]any{"url": e.url})
}

func (e Embed) ToUpdateMap() map[string]any {
	return e.toUpdateMap(map[string]any{"url": e.url})
}

func (e Embed) ChangeURL(url string) Embed {
	e.metadata = e.metadata.Update()
	e.url = url
	return e
}

func (e Embed) Archive() Block {
	return Embed{leafBlock: e.archive(), url: e.url}
}
