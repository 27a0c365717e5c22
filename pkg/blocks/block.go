package blocks

import (
	"fmt"

	"github.com/notion-sdk/notion-go/pkg/constants"
	"github.com/notion-sdk/notion-go/pkg/models"
)

// Block is implemented by every block variant.
//
// Blocks are immutable values. AddChild, ChangeChildren and Archive return a
// new block and never alter the receiver. Variants that cannot hold children
// return an error wrapping constants.ErrUnsupportedOperation.
type Block interface {
	Metadata() BlockMetadata
	// ToMap returns the full API representation, children included.
	ToMap() map[string]any
	// ToUpdateMap returns the payload of an update request: the mutable
	// content fields and the archived flag, never children, id or timestamps.
	ToUpdateMap() map[string]any
	Children() []Block
	AddChild(child Block) (Block, error)
	ChangeChildren(children ...Block) (Block, error)
	Archive() Block
}

// TextBlock is implemented by blocks whose content is rich text.
type TextBlock interface {
	Block
	Text() []models.RichText
	String() string
}

func errNoChildren(t BlockType) error {
	return fmt.Errorf("%w: %s blocks do not support children", constants.ErrUnsupportedOperation, t)
}

func asBlock[T Block](b T, err error) (Block, error) {
	if err != nil {
		return nil, err
	}
	return b, nil
}

// ToMaps serializes blocks with ToMap.
func ToMaps(blocks ...Block) []any {
	items := make([]any, 0, len(blocks))
	for _, b := range blocks {
		items = append(items, b.ToMap())
	}
	return items
}

// FromMaps hydrates each object with FromMap.
func FromMaps(items []map[string]any) ([]Block, error) {
	out := make([]Block, 0, len(items))
	for i, item := range items {
		b, err := FromMap(item)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		out = append(out, b)
	}
	return out, nil
}

func copyBlocks(blocks []Block) []Block {
	if len(blocks) == 0 {
		return []Block{}
	}
	out := make([]Block, len(blocks))
	copy(out, blocks)
	return out
}

func copyTexts(texts []models.RichText) []models.RichText {
	if len(texts) == 0 {
		return []models.RichText{}
	}
	out := make([]models.RichText, len(texts))
	copy(out, texts)
	return out
}
