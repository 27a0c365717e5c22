package blocks

import (
	"fmt"

	"github.com/buger/jsonparser"
	"github.com/goccy/go-json"
	"github.com/notion-sdk/notion-go/internal/codec"
	"github.com/notion-sdk/notion-go/internal/jsonmap"
	"github.com/notion-sdk/notion-go/pkg/constants"
)

// FromMap hydrates the block variant named by the "type" field of m.
func FromMap(m map[string]any) (Block, error) {
	t, err := jsonmap.String(m, "type")
	if err != nil {
		return nil, err
	}

	switch BlockType(t) {
	case TypeBreadcrumb:
		return asBlock(BreadcrumbFromMap(m))
	case TypeBookmark:
		return asBlock(BookmarkFromMap(m))
	case TypeBulletedListItem:
		return asBlock(BulletedListItemFromMap(m))
	case TypeCallout:
		return asBlock(CalloutFromMap(m))
	case TypeChildPage:
		return asBlock(ChildPageFromMap(m))
	case TypeCode:
		return asBlock(CodeFromMap(m))
	case TypeDivider:
		return asBlock(DividerFromMap(m))
	case TypeEmbed:
		return asBlock(EmbedFromMap(m))
	case TypeEquation:
		return asBlock(EquationFromMap(m))
	case TypeHeading1:
		return asBlock(Heading1FromMap(m))
	case TypeHeading2:
		return asBlock(Heading2FromMap(m))
	case TypeHeading3:
		return asBlock(Heading3FromMap(m))
	case TypeNumberedListItem:
		return asBlock(NumberedListItemFromMap(m))
	case TypeParagraph:
		return asBlock(ParagraphFromMap(m))
	case TypeQuote:
		return asBlock(QuoteFromMap(m))
	case TypeTableOfContents:
		return asBlock(TableOfContentsFromMap(m))
	case TypeToDo:
		return asBlock(ToDoFromMap(m))
	case TypeToggle:
		return asBlock(ToggleFromMap(m))
	default:
		return nil, fmt.Errorf("%w: block %q", constants.ErrUnknownType, t)
	}
}

// Unmarshal decodes a JSON block object. The discriminant is checked before
// the payload is decoded, so unknown block types fail without a full decode.
func Unmarshal(data []byte) (Block, error) {
	t, err := jsonparser.GetString(data, "type")
	if err != nil {
		return nil, fmt.Errorf("%w: block type: %v", constants.ErrMalformedInput, err)
	}
	if !IsKnownType(BlockType(t)) {
		return nil, fmt.Errorf("%w: block %q", constants.ErrUnknownType, t)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", constants.ErrMalformedInput, err)
	}
	return FromMap(m)
}

// Decode decodes a block object with any codec, for example a CBOR snapshot.
func Decode(u codec.Unmarshaler, data []byte) (Block, error) {
	if u == nil {
		return nil, constants.ErrNoMarshaler
	}
	var m map[string]any
	if err := u.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", constants.ErrMalformedInput, err)
	}
	return FromMap(m)
}

// Encode serializes the full representation of b with any codec.
func Encode(mr codec.Marshaler, b Block) ([]byte, error) {
	if mr == nil {
		return nil, constants.ErrNoMarshaler
	}
	return mr.Marshal(b.ToMap())
}

// IsKnownType reports whether FromMap can hydrate blocks of type t.
func IsKnownType(t BlockType) bool {
	switch t {
	case TypeBreadcrumb, TypeBookmark, TypeBulletedListItem, TypeCallout,
		TypeChildPage, TypeCode, TypeDivider, TypeEmbed, TypeEquation,
		TypeHeading1, TypeHeading2, TypeHeading3, TypeNumberedListItem,
		TypeParagraph, TypeQuote, TypeTableOfContents, TypeToDo, TypeToggle:
		return true
	}
	return false
}
