package blocks

import (
	"github.com/notion-sdk/notion-go/internal/jsonmap"
	"github.com/notion-sdk/notion-go/pkg/models"
)

// ToDo is a checkbox followed by rich text.
type ToDo struct {
	richTextBlock
	checked bool
}

func NewToDo() ToDo {
	return ToDo{richTextBlock: newRichTextBlock(TypeToDo, true)}
}

func NewToDoFromString(content string) ToDo {
	return ToDo{richTextBlock: newRichTextBlock(TypeToDo, true, textFromString(content))}
}

func ToDoFromMap(m map[string]any) (ToDo, error) {
	b, content, err := richTextBlockFromMap(m, TypeToDo, true)
	if err != nil {
		return ToDo{}, err
	}
	checked, err := jsonmap.OptionalBool(content, "checked")
	if err != nil {
		return ToDo{}, err
	}
	return ToDo{richTextBlock: b, checked: checked}, nil
}

func (t ToDo) IsChecked() bool {
	return t.checked
}

func (t ToDo) ToMap() map[string]any {
	m := t.metadata.ToMap()
	content := t.content(true)
	content["checked"] = t.checked
	m[string(TypeToDo)] = content
	return m
}

func (t ToDo) ToUpdateMap() map[string]any {
	content := t.content(false)
	content["checked"] = t.checked
	return t.updateMap(content)
}

func (t ToDo) Check() ToDo {
	t.metadata = t.metadata.Update()
	t.checked = true
	return t
}

func (t ToDo) Uncheck() ToDo {
	t.metadata = t.metadata.Update()
	t.checked = false
	return t
}

func (t ToDo) ChangeText(text ...models.RichText) ToDo {
	return ToDo{richTextBlock: t.withText(text), checked: t.checked}
}

func (t ToDo) AddText(text models.RichText) ToDo {
	return ToDo{richTextBlock: t.addText(text), checked: t.checked}
}

func (t ToDo) ChangeColor(color models.Color) ToDo {
	return ToDo{richTextBlock: t.withColor(color), checked: t.checked}
}

func (t ToDo) WithChildren(children ...Block) ToDo {
	return ToDo{richTextBlock: t.changeChildren(children), checked: t.checked}
}

func (t ToDo) AppendChild(child Block) ToDo {
	return ToDo{richTextBlock: t.addChild(child), checked: t.checked}
}

func (t ToDo) AddChild(child Block) (Block, error) {
	return t.AppendChild(child), nil
}

func (t ToDo) ChangeChildren(children ...Block) (Block, error) {
	return t.WithChildren(children...), nil
}

func (t ToDo) Archive() Block {
	return ToDo{richTextBlock: t.archive(), checked: t.checked}
}
