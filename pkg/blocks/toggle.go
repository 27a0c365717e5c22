package blocks

import "github.com/notion-sdk/notion-go/pkg/models"

// Toggle is a collapsible block whose children are hidden until expanded.
type Toggle struct {
	richTextBlock
}

func NewToggle() Toggle {
	return Toggle{newRichTextBlock(TypeToggle, true)}
}

func NewToggleFromString(content string) Toggle {
	return Toggle{newRichTextBlock(TypeToggle, true, textFromString(content))}
}

func ToggleFromMap(m map[string]any) (Toggle, error) {
	b, _, err := richTextBlockFromMap(m, TypeToggle, true)
	if err != nil {
		return Toggle{}, err
	}
	return Toggle{b}, nil
}

func (t Toggle) ChangeText(text ...models.RichText) Toggle {
	return Toggle{t.withText(text)}
}

func (t Toggle) AddText(text models.RichText) Toggle {
	return Toggle{t.addText(text)}
}

func (t Toggle) ChangeColor(color models.Color) Toggle {
	return Toggle{t.withColor(color)}
}

// WithChildren replaces the nested blocks.
func (t Toggle) WithChildren(children ...Block) Toggle {
	return Toggle{t.changeChildren(children)}
}

// AppendChild adds a nested block after the existing ones.
func (t Toggle) AppendChild(child Block) Toggle {
	return Toggle{t.addChild(child)}
}

func (t Toggle) AddChild(child Block) (Block, error) {
	return t.AppendChild(child), nil
}

func (t Toggle) ChangeChildren(children ...Block) (Block, error) {
	return t.WithChildren(children...), nil
}

func (t Toggle) Archive() Block {
	return Toggle{t.archive()}
}
