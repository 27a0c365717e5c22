package blocks

import "github.com/notion-sdk/notion-go/pkg/models"

// Quote is a block of quoted text.
type Quote struct {
	richTextBlock
}

func NewQuote() Quote {
	return Quote{newRichTextBlock(TypeQuote, true)}
}

func NewQuoteFromString(content string) Quote {
	return Quote{newRichTextBlock(TypeQuote, true, textFromString(content))}
}

func QuoteFromMap(m map[string]any) (Quote, error) {
	b, _, err := richTextBlockFromMap(m, TypeQuote, true)
	if err != nil {
		return Quote{}, err
	}
	return Quote{b}, nil
}

func (q Quote) ChangeText(text ...models.RichText) Quote {
	return Quote{q.withText(text)}
}

func (q Quote) AddText(text models.RichText) Quote {
	return Quote{q.addText(text)}
}

func (q Quote) ChangeColor(color models.Color) Quote {
	return Quote{q.withColor(color)}
}

// WithChildren replaces the nested blocks.
func (q Quote) WithChildren(children ...Block) Quote {
	return Quote{q.changeChildren(children)}
}

// AppendChild adds a nested block after the existing ones.
func (q Quote) AppendChild(child Block) Quote {
	return Quote{q.addChild(child)}
}

func (q Quote) AddChild(child Block) (Block, error) {
	return q.AppendChild(child), nil
}

func (q Quote) ChangeChildren(children ...Block) (Block, error) {
	return q.WithChildren(children...), nil
}

func (q Quote) Archive() Block {
	return Quote{q.archive()}
}
