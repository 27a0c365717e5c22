package blocks

import (
	"fmt"
	"time"

	"github.com/notion-sdk/notion-go/internal/jsonmap"
	"github.com/notion-sdk/notion-go/pkg/constants"
)

// BlockType is the discriminant stored in the "type" field of a block.
type BlockType string

const (
	TypeBreadcrumb       BlockType = "breadcrumb"
	TypeBookmark         BlockType = "bookmark"
	TypeBulletedListItem BlockType = "bulleted_list_item"
	TypeCallout          BlockType = "callout"
	TypeChildPage        BlockType = "child_page"
	TypeCode             BlockType = "code"
	TypeDivider          BlockType = "divider"
	TypeEmbed            BlockType = "embed"
	TypeEquation         BlockType = "equation"
	TypeHeading1         BlockType = "heading_1"
	TypeHeading2         BlockType = "heading_2"
	TypeHeading3         BlockType = "heading_3"
	TypeNumberedListItem BlockType = "numbered_list_item"
	TypeParagraph        BlockType = "paragraph"
	TypeQuote            BlockType = "quote"
	TypeTableOfContents  BlockType = "table_of_contents"
	TypeToDo             BlockType = "to_do"
	TypeToggle           BlockType = "toggle"
)

// BlockMetadata holds the identity and bookkeeping fields shared by every block.
type BlockMetadata struct {
	id             string
	typ            BlockType
	createdTime    time.Time
	lastEditedTime time.Time
	archived       bool
	hasChildren    bool
}

// NewBlockMetadata returns metadata for a block that does not exist remotely yet.
func NewBlockMetadata(t BlockType) BlockMetadata {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return BlockMetadata{
		typ:            t,
		createdTime:    now,
		lastEditedTime: now,
	}
}

// BlockMetadataFromMap hydrates metadata from a block object. The type is
// stored verbatim, variants validate it with CheckType.
func BlockMetadataFromMap(m map[string]any) (BlockMetadata, error) {
	var (
		meta BlockMetadata
		err  error
	)

	t, err := jsonmap.String(m, "type")
	if err != nil {
		return BlockMetadata{}, err
	}
	meta.typ = BlockType(t)

	if meta.id, err = jsonmap.OptionalString(m, "id"); err != nil {
		return BlockMetadata{}, err
	}
	if meta.createdTime, err = jsonmap.Time(m, "created_time"); err != nil {
		return BlockMetadata{}, err
	}
	if meta.lastEditedTime, err = jsonmap.Time(m, "last_edited_time"); err != nil {
		return BlockMetadata{}, err
	}
	if meta.archived, err = jsonmap.OptionalBool(m, "archived"); err != nil {
		return BlockMetadata{}, err
	}
	if meta.hasChildren, err = jsonmap.OptionalBool(m, "has_children"); err != nil {
		return BlockMetadata{}, err
	}

	return meta, nil
}

// CheckType fails with constants.ErrTypeMismatch unless the metadata has the expected type.
func (m BlockMetadata) CheckType(expected BlockType) error {
	if m.typ != expected {
		return fmt.Errorf("%w: block type is %q, expected %q", constants.ErrTypeMismatch, m.typ, expected)
	}
	return nil
}

func (m BlockMetadata) ToMap() map[string]any {
	out := map[string]any{
		"object":       "block",
		"type":         string(m.typ),
		"archived":     m.archived,
		"has_children": m.hasChildren,
	}
	if m.id != "" {
		out["id"] = m.id
	}
	if !m.createdTime.IsZero() {
		out["created_time"] = jsonmap.FormatTime(m.createdTime)
	}
	if !m.lastEditedTime.IsZero() {
		out["last_edited_time"] = jsonmap.FormatTime(m.lastEditedTime)
	}
	return out
}

// Update marks the metadata as derived from a content change. Timestamps are
// left as they are; the API sets them when the change is sent.
func (m BlockMetadata) Update() BlockMetadata {
	return m
}

func (m BlockMetadata) UpdateHasChildren(hasChildren bool) BlockMetadata {
	m.hasChildren = hasChildren
	return m
}

func (m BlockMetadata) Archive() BlockMetadata {
	m.archived = true
	return m
}

func (m BlockMetadata) ID() string                { return m.id }
func (m BlockMetadata) Type() BlockType           { return m.typ }
func (m BlockMetadata) CreatedTime() time.Time    { return m.createdTime }
func (m BlockMetadata) LastEditedTime() time.Time { return m.lastEditedTime }
func (m BlockMetadata) Archived() bool            { return m.archived }
func (m BlockMetadata) HasChildren() bool         { return m.hasChildren }
