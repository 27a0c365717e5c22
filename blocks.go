package notion

import (
	"context"
	"net/http"

	"github.com/notion-sdk/notion-go/pkg/blocks"
	"github.com/notion-sdk/notion-go/pkg/connection"
)

// BlockService calls the block endpoints.
type BlockService struct {
	con *connection.HTTPConnection
}

func (s *BlockService) Find(ctx context.Context, id string) (blocks.Block, error) {
	id, err := requireID("block", id)
	if err != nil {
		return nil, err
	}
	m, err := s.con.Object(ctx, "blocks.find", http.MethodGet, "/blocks/"+id, nil)
	if err != nil {
		return nil, err
	}
	return blocks.FromMap(m)
}

// Children returns every direct child of a block or page, following pagination.
func (s *BlockService) Children(ctx context.Context, id string) ([]blocks.Block, error) {
	id, err := requireID("block", id)
	if err != nil {
		return nil, err
	}
	items, err := s.con.List(ctx, "blocks.children", http.MethodGet, "/blocks/"+id+"/children", nil)
	if err != nil {
		return nil, err
	}
	return blocks.FromMaps(items)
}

// Append adds children after the existing children of a block or page and
// returns the created blocks.
func (s *BlockService) Append(ctx context.Context, parentID string, children ...blocks.Block) ([]blocks.Block, error) {
	parentID, err := requireID("parent block", parentID)
	if err != nil {
		return nil, err
	}
	body := map[string]any{"children": blocks.ToMaps(children...)}
	items, err := s.con.List(ctx, "blocks.append", http.MethodPatch, "/blocks/"+parentID+"/children", body)
	if err != nil {
		return nil, err
	}
	return blocks.FromMaps(items)
}

// Update sends the update payload of b, which must have been read from the API.
func (s *BlockService) Update(ctx context.Context, b blocks.Block) (blocks.Block, error) {
	id, err := requireID("block", b.Metadata().ID())
	if err != nil {
		return nil, err
	}
	m, err := s.con.Object(ctx, "blocks.update", http.MethodPatch, "/blocks/"+id, b.ToUpdateMap())
	if err != nil {
		return nil, err
	}
	return blocks.FromMap(m)
}

// Delete archives a block and returns it.
func (s *BlockService) Delete(ctx context.Context, id string) (blocks.Block, error) {
	id, err := requireID("block", id)
	if err != nil {
		return nil, err
	}
	m, err := s.con.Object(ctx, "blocks.delete", http.MethodDelete, "/blocks/"+id, nil)
	if err != nil {
		return nil, err
	}
	return blocks.FromMap(m)
}
