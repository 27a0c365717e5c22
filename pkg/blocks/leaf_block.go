package blocks

import "github.com/notion-sdk/notion-go/internal/jsonmap"

// leafBlock is embedded by variants that never hold children.
type leafBlock struct {
	metadata BlockMetadata
}

func newLeafBlock(t BlockType) leafBlock {
	return leafBlock{metadata: NewBlockMetadata(t)}
}

// leafBlockFromMap returns the variant object keyed by the type
// discriminant, or an empty object when it is absent.
func leafBlockFromMap(m map[string]any, t BlockType) (leafBlock, map[string]any, error) {
	meta, err := BlockMetadataFromMap(m)
	if err != nil {
		return leafBlock{}, nil, err
	}
	if err := meta.CheckType(t); err != nil {
		return leafBlock{}, nil, err
	}
	content, err := jsonmap.OptionalObject(m, string(t))
	if err != nil {
		return leafBlock{}, nil, err
	}
	if content == nil {
		content = map[string]any{}
	}
	return leafBlock{metadata: meta}, content, nil
}

func (b leafBlock) Metadata() BlockMetadata {
	return b.metadata
}

func (b leafBlock) Children() []Block {
	return []Block{}
}

func (b leafBlock) AddChild(Block) (Block, error) {
	return nil, errNoChildren(b.metadata.typ)
}

func (b leafBlock) ChangeChildren(...Block) (Block, error) {
	return nil, errNoChildren(b.metadata.typ)
}

func (b leafBlock) toMap(content map[string]any) map[string]any {
	m := b.metadata.ToMap()
	m[string(b.metadata.typ)] = content
	return m
}

func (b leafBlock) toUpdateMap(content map[string]any) map[string]any {
	return map[string]any{
		string(b.metadata.typ): content,
		"archived":             b.metadata.archived,
	}
}

func (b leafBlock) archive() leafBlock {
	b.metadata = b.metadata.Archive()
	return b
}
