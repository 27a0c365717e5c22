package properties

import "github.com/notion-sdk/notion-go/internal/jsonmap"

// URL is a web address property. An empty value is sent as null.
type URL struct {
	metadata PropertyMetadata
	url      string
}

func NewURL(url string) URL {
	return URL{metadata: NewPropertyMetadata("", TypeURL), url: url}
}

func URLFromMap(m map[string]any) (URL, error) {
	meta, err := metadataFromMap(m, TypeURL)
	if err != nil {
		return URL{}, err
	}
	url, err := jsonmap.NullableString(m, string(TypeURL))
	if err != nil {
		return URL{}, err
	}
	p := URL{metadata: meta}
	if url != nil {
		p.url = *url
	}
	return p, nil
}

func (p URL) ToMap() map[string]any {
	return withValue(p.metadata, nullIfEmpty(p.url))
}

func (p URL) Metadata() PropertyMetadata { return p.metadata }
func (p URL) URL() string                { return p.url }

func (p URL) ChangeURL(url string) URL {
	p.url = url
	return p
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
