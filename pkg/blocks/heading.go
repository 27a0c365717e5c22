package blocks

import (
	"github.com/notion-sdk/notion-go/internal/jsonmap"
	"github.com/notion-sdk/notion-go/pkg/models"
)

// heading is the content shared by the three heading levels. A toggleable
// heading folds nested blocks under it; other headings are leaves.
type heading struct {
	richTextBlock
	// toggleable is nil when the payload did not carry is_toggleable.
	toggleable *bool
}

func newHeading(t BlockType, text ...models.RichText) heading {
	return heading{richTextBlock: newRichTextBlock(t, false, text...)}
}

func headingFromMap(m map[string]any, t BlockType) (heading, error) {
	var toggleable *bool
	if content, ok := m[string(t)].(map[string]any); ok && jsonmap.Has(content, "is_toggleable") {
		on, err := jsonmap.Bool(content, "is_toggleable")
		if err != nil {
			return heading{}, err
		}
		toggleable = &on
	}

	b, _, err := richTextBlockFromMap(m, t, toggleable != nil && *toggleable)
	if err != nil {
		return heading{}, err
	}
	return heading{richTextBlock: b, toggleable: toggleable}, nil
}

func (h heading) IsToggleable() bool {
	return h.toggleable != nil && *h.toggleable
}

func (h heading) headingContent(withChildren bool) map[string]any {
	c := h.content(withChildren)
	if h.toggleable != nil {
		c["is_toggleable"] = *h.toggleable
	}
	return c
}

func (h heading) ToMap() map[string]any {
	m := h.metadata.ToMap()
	m[string(h.metadata.typ)] = h.headingContent(true)
	return m
}

func (h heading) ToUpdateMap() map[string]any {
	return h.updateMap(h.headingContent(false))
}

func (h heading) with(b richTextBlock) heading {
	h.richTextBlock = b
	return h
}

// withToggleable drops the children of a heading that stops folding.
func (h heading) withToggleable(on bool) heading {
	h.toggleable = &on
	h.nested = on
	if !on {
		h.richTextBlock = h.changeChildren(nil)
	}
	return h
}

func (h heading) appendChild(child Block) (heading, error) {
	if !h.IsToggleable() {
		return heading{}, errNoChildren(h.metadata.typ)
	}
	return h.with(h.addChild(child)), nil
}

func (h heading) replaceChildren(children []Block) (heading, error) {
	if !h.IsToggleable() {
		return heading{}, errNoChildren(h.metadata.typ)
	}
	return h.with(h.changeChildren(children)), nil
}

// Heading1 is a top level heading.
type Heading1 struct {
	heading
}

func NewHeading1() Heading1 {
	return Heading1{newHeading(TypeHeading1)}
}

func NewHeading1FromString(content string) Heading1 {
	return Heading1{newHeading(TypeHeading1, textFromString(content))}
}

func Heading1FromMap(m map[string]any) (Heading1, error) {
	h, err := headingFromMap(m, TypeHeading1)
	if err != nil {
		return Heading1{}, err
	}
	return Heading1{h}, nil
}

func (h Heading1) ChangeText(text ...models.RichText) Heading1 {
	return Heading1{h.with(h.withText(text))}
}

func (h Heading1) AddText(text models.RichText) Heading1 {
	return Heading1{h.with(h.addText(text))}
}

func (h Heading1) ChangeColor(color models.Color) Heading1 {
	return Heading1{h.with(h.withColor(color))}
}

func (h Heading1) ChangeToggleable(toggleable bool) Heading1 {
	return Heading1{h.withToggleable(toggleable)}
}

func (h Heading1) AddChild(child Block) (Block, error) {
	out, err := h.appendChild(child)
	if err != nil {
		return nil, err
	}
	return Heading1{out}, nil
}

func (h Heading1) ChangeChildren(children ...Block) (Block, error) {
	out, err := h.replaceChildren(children)
	if err != nil {
		return nil, err
	}
	return Heading1{out}, nil
}

func (h Heading1) Archive() Block {
	return Heading1{h.with(h.archive())}
}

// Heading2 is a second level heading.
type Heading2 struct {
	heading
}

func NewHeading2() Heading2 {
	return Heading2{newHeading(TypeHeading2)}
}

func NewHeading2FromString(content string) Heading2 {
	return Heading2{newHeading(TypeHeading2, textFromString(content))}
}

func Heading2FromMap(m map[string]any) (Heading2, error) {
	h, err := headingFromMap(m, TypeHeading2)
	if err != nil {
		return Heading2{}, err
	}
	return Heading2{h}, nil
}

func (h Heading2) ChangeText(text ...models.RichText) Heading2 {
	return Heading2{h.with(h.withText(text))}
}

func (h Heading2) AddText(text models.RichText) Heading2 {
	return Heading2{h.with(h.addText(text))}
}

func (h Heading2) ChangeColor(color models.Color) Heading2 {
	return Heading2{h.with(h.withColor(color))}
}

func (h Heading2) ChangeToggleable(toggleable bool) Heading2 {
	return Heading2{h.withToggleable(toggleable)}
}

func (h Heading2) AddChild(child Block) (Block, error) {
	out, err := h.appendChild(child)
	if err != nil {
		return nil, err
	}
	return Heading2{out}, nil
}

func (h Heading2) ChangeChildren(children ...Block) (Block, error) {
	out, err := h.replaceChildren(children)
	if err != nil {
		return nil, err
	}
	return Heading2{out}, nil
}

func (h Heading2) Archive() Block {
	return Heading2{h.with(h.archive())}
}

// Heading3 is a third level heading.
type Heading3 struct {
	heading
}

func NewHeading3() Heading3 {
	return Heading3{newHeading(TypeHeading3)}
}

func NewHeading3FromString(content string) Heading3 {
	return Heading3{newHeading(TypeHeading3, textFromString(content))}
}

func Heading3FromMap(m map[string]any) (Heading3, error) {
	h, err := headingFromMap(m, TypeHeading3)
	if err != nil {
		return Heading3{}, err
	}
	return Heading3{h}, nil
}

func (h Heading3) ChangeText(text ...models.RichText) Heading3 {
	return Heading3{h.with(h.withText(text))}
}

func (h Heading3) AddText(text models.RichText) Heading3 {
	return Heading3{h.with(h.addText(text))}
}

func (h Heading3) ChangeColor(color models.Color) Heading3 {
	return Heading3{h.with(h.withColor(color))}
}

func (h Heading3) ChangeToggleable(toggleable bool) Heading3 {
	return Heading3{h.withToggleable(toggleable)}
}

func (h Heading3) AddChild(child Block) (Block, error) {
	out, err := h.appendChild(child)
	if err != nil {
		return nil, err
	}
	return Heading3{out}, nil
}

func (h Heading3) ChangeChildren(children ...Block) (Block, error) {
	out, err := h.replaceChildren(children)
	if err != nil {
		return nil, err
	}
	return Heading3{out}, nil
}

func (h Heading3) Archive() Block {
	return Heading3{h.with(h.archive())}
}
