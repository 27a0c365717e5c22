package models

import (
	"fmt"
	"strings"

	"github.com/notion-sdk/notion-go/internal/jsonmap"
	"github.com/notion-sdk/notion-go/pkg/constants"
)

type RichTextType string

const (
	RichTextTypeText     RichTextType = "text"
	RichTextTypeMention  RichTextType = "mention"
	RichTextTypeEquation RichTextType = "equation"
)

// Annotations hold the styling of a rich text span.
type Annotations struct {
	Bold          bool
	Italic        bool
	Strikethrough bool
	Underline     bool
	Code          bool
	Color         Color
}

// DefaultAnnotations returns unstyled annotations.
func DefaultAnnotations() Annotations {
	return Annotations{Color: ColorDefault}
}

func AnnotationsFromMap(m map[string]any) (Annotations, error) {
	a := DefaultAnnotations()
	var err error
	if a.Bold, err = jsonmap.OptionalBool(m, "bold"); err != nil {
		return Annotations{}, err
	}
	if a.Italic, err = jsonmap.OptionalBool(m, "italic"); err != nil {
		return Annotations{}, err
	}
	if a.Strikethrough, err = jsonmap.OptionalBool(m, "strikethrough"); err != nil {
		return Annotations{}, err
	}
	if a.Underline, err = jsonmap.OptionalBool(m, "underline"); err != nil {
		return Annotations{}, err
	}
	if a.Code, err = jsonmap.OptionalBool(m, "code"); err != nil {
		return Annotations{}, err
	}
	color, err := jsonmap.OptionalString(m, "color")
	if err != nil {
		return Annotations{}, err
	}
	if color != "" {
		a.Color = Color(color)
	}
	return a, nil
}

func (a Annotations) ToMap() map[string]any {
	return map[string]any{
		"bold":          a.Bold,
		"italic":        a.Italic,
		"strikethrough": a.Strikethrough,
		"underline":     a.Underline,
		"code":          a.Code,
		"color":         string(a.Color),
	}
}

// RichText is a styled span of text, a mention or an inline equation.
//
// RichText is immutable: every With* method returns a modified copy.
type RichText struct {
	typ         RichTextType
	plainText   string
	href        *string
	annotations Annotations

	// text
	content string
	link    *string

	mention  *Mention
	equation string
}

// NewTextRichText creates an unstyled text span.
func NewTextRichText(content string) RichText {
	return RichText{
		typ:         RichTextTypeText,
		plainText:   content,
		annotations: DefaultAnnotations(),
		content:     content,
	}
}

// NewEquationRichText creates an inline equation from a KaTeX expression.
func NewEquationRichText(expression string) RichText {
	return RichText{
		typ:         RichTextTypeEquation,
		plainText:   expression,
		annotations: DefaultAnnotations(),
		equation:    expression,
	}
}

func NewPageMention(pageID string) RichText {
	return newMention(Mention{typ: MentionTypePage, id: pageID})
}

func NewDatabaseMention(databaseID string) RichText {
	return newMention(Mention{typ: MentionTypeDatabase, id: databaseID})
}

func NewUserMention(userID string) RichText {
	return newMention(Mention{typ: MentionTypeUser, id: userID})
}

func NewDateMention(date Date) RichText {
	return newMention(Mention{typ: MentionTypeDate, date: &date})
}

func newMention(m Mention) RichText {
	return RichText{
		typ:         RichTextTypeMention,
		annotations: DefaultAnnotations(),
		mention:     &m,
	}
}

// RichTextFromMap hydrates a span from its API representation.
func RichTextFromMap(m map[string]any) (RichText, error) {
	typ, err := jsonmap.String(m, "type")
	if err != nil {
		return RichText{}, err
	}

	rt := RichText{typ: RichTextType(typ), annotations: DefaultAnnotations()}

	if rt.href, err = jsonmap.NullableString(m, "href"); err != nil {
		return RichText{}, err
	}
	if jsonmap.Has(m, "annotations") {
		a, err := jsonmap.Object(m, "annotations")
		if err != nil {
			return RichText{}, err
		}
		if rt.annotations, err = AnnotationsFromMap(a); err != nil {
			return RichText{}, err
		}
	}

	switch rt.typ {
	case RichTextTypeText:
		text, err := jsonmap.Object(m, "text")
		if err != nil {
			return RichText{}, err
		}
		if rt.content, err = jsonmap.String(text, "content"); err != nil {
			return RichText{}, err
		}
		link, err := jsonmap.OptionalObject(text, "link")
		if err != nil {
			return RichText{}, err
		}
		if link != nil {
			url, err := jsonmap.String(link, "url")
			if err != nil {
				return RichText{}, err
			}
			rt.link = &url
		}
		rt.plainText = rt.content
	case RichTextTypeEquation:
		eq, err := jsonmap.Object(m, "equation")
		if err != nil {
			return RichText{}, err
		}
		if rt.equation, err = jsonmap.String(eq, "expression"); err != nil {
			return RichText{}, err
		}
		rt.plainText = rt.equation
	case RichTextTypeMention:
		mm, err := jsonmap.Object(m, "mention")
		if err != nil {
			return RichText{}, err
		}
		mention, err := MentionFromMap(mm)
		if err != nil {
			return RichText{}, err
		}
		rt.mention = &mention
	default:
		return RichText{}, fmt.Errorf("%w: rich text %q", constants.ErrUnknownType, typ)
	}

	if jsonmap.Has(m, "plain_text") {
		if rt.plainText, err = jsonmap.String(m, "plain_text"); err != nil {
			return RichText{}, err
		}
	}

	return rt, nil
}

// RichTextsFromMaps hydrates a rich_text array.
func RichTextsFromMaps(items []map[string]any) ([]RichText, error) {
	texts := make([]RichText, 0, len(items))
	for i, item := range items {
		rt, err := RichTextFromMap(item)
		if err != nil {
			return nil, fmt.Errorf("rich text %d: %w", i, err)
		}
		texts = append(texts, rt)
	}
	return texts, nil
}

// RichTextsToMaps is the inverse of RichTextsFromMaps.
func RichTextsToMaps(texts []RichText) []any {
	items := make([]any, 0, len(texts))
	for _, t := range texts {
		items = append(items, t.ToMap())
	}
	return items
}

func (rt RichText) ToMap() map[string]any {
	m := map[string]any{
		"plain_text":  rt.plainText,
		"href":        nil,
		"type":        string(rt.typ),
		"annotations": rt.annotations.ToMap(),
	}
	if rt.href != nil {
		m["href"] = *rt.href
	}

	switch rt.typ {
	case RichTextTypeText:
		var link any
		if rt.link != nil {
			link = map[string]any{"url": *rt.link}
		}
		m["text"] = map[string]any{
			"content": rt.content,
			"link":    link,
		}
	case RichTextTypeEquation:
		m["equation"] = map[string]any{"expression": rt.equation}
	case RichTextTypeMention:
		m["mention"] = rt.mention.ToMap()
	}

	return m
}

func (rt RichText) Type() RichTextType       { return rt.typ }
func (rt RichText) PlainText() string        { return rt.plainText }
func (rt RichText) Annotations() Annotations { return rt.annotations }
func (rt RichText) Content() string          { return rt.content }
func (rt RichText) Expression() string       { return rt.equation }

// Href returns the hyperlink of the span, if any.
func (rt RichText) Href() (string, bool) {
	if rt.href == nil {
		return "", false
	}
	return *rt.href, true
}

// Link returns the link of a text span, if any.
func (rt RichText) Link() (string, bool) {
	if rt.link == nil {
		return "", false
	}
	return *rt.link, true
}

// Mention returns the mention of a mention span.
func (rt RichText) Mention() (Mention, bool) {
	if rt.mention == nil {
		return Mention{}, false
	}
	return *rt.mention, true
}

func (rt RichText) String() string {
	return rt.plainText
}

func (rt RichText) WithAnnotations(a Annotations) RichText {
	rt.annotations = a
	return rt
}

func (rt RichText) Bold() RichText {
	rt.annotations.Bold = true
	return rt
}

func (rt RichText) Italic() RichText {
	rt.annotations.Italic = true
	return rt
}

func (rt RichText) Strikethrough() RichText {
	rt.annotations.Strikethrough = true
	return rt
}

func (rt RichText) Underline() RichText {
	rt.annotations.Underline = true
	return rt
}

func (rt RichText) Code() RichText {
	rt.annotations.Code = true
	return rt
}

func (rt RichText) WithColor(c Color) RichText {
	rt.annotations.Color = c
	return rt
}

// WithLink links a text span to url. The span href follows the link.
func (rt RichText) WithLink(url string) RichText {
	rt.link = &url
	rt.href = &url
	return rt
}

// WithoutLink removes both link and href.
func (rt RichText) WithoutLink() RichText {
	rt.link = nil
	rt.href = nil
	return rt
}

// MultipleToString concatenates the plain text of spans.
func MultipleToString(spans ...RichText) string {
	var sb strings.Builder
	for _, s := range spans {
		sb.WriteString(s.plainText)
	}
	return sb.String()
}
