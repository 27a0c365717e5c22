package blocks

import "github.com/notion-sdk/notion-go/pkg/models"

// Paragraph is a block of text.
type Paragraph struct {
	richTextBlock
}

func NewParagraph() Paragraph {
	return Paragraph{newRichTextBlock(TypeParagraph, true)}
}

func NewParagraphFromString(content string) Paragraph {
	return Paragraph{newRichTextBlock(TypeParagraph, true, textFromString(content))}
}

func ParagraphFromMap(m map[string]any) (Paragraph, error) {
	b, _, err := richTextBlockFromMap(m, TypeParagraph, true)
	if err != nil {
		return Paragraph{}, err
	}
	return Paragraph{b}, nil
}

func (p Paragraph) ChangeText(text ...models.RichText) Paragraph {
	return Paragraph{p.withText(text)}
}

func (p Paragraph) AddText(text models.RichText) Paragraph {
	return Paragraph{p.addText(text)}
}

func (p Paragraph) ChangeColor(color models.Color) Paragraph {
	return Paragraph{p.withColor(color)}
}

// WithChildren replaces the nested blocks.
func (p Paragraph) WithChildren(children ...Block) Paragraph {
	return Paragraph{p.changeChildren(children)}
}

// AppendChild adds a nested block after the existing ones.
func (p Paragraph) AppendChild(child Block) Paragraph {
	return Paragraph{p.addChild(child)}
}

func (p Paragraph) AddChild(child Block) (Block, error) {
	return p.AppendChild(child), nil
}

func (p Paragraph) ChangeChildren(children ...Block) (Block, error) {
	return p.WithChildren(children...), nil
}

func (p Paragraph) Archive() Block {
	return Paragraph{p.archive()}
}
