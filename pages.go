package notion

import (
	"context"
	"net/http"

	"github.com/notion-sdk/notion-go/pkg/blocks"
	"github.com/notion-sdk/notion-go/pkg/connection"
	"github.com/notion-sdk/notion-go/pkg/pages"
)

// PageService calls the page endpoints.
type PageService struct {
	con *connection.HTTPConnection
}

func (s *PageService) Find(ctx context.Context, id string) (pages.Page, error) {
	id, err := requireID("page", id)
	if err != nil {
		return pages.Page{}, err
	}
	m, err := s.con.Object(ctx, "pages.find", http.MethodGet, "/pages/"+id, nil)
	if err != nil {
		return pages.Page{}, err
	}
	return pages.FromMap(m)
}

// Create creates page with optional initial content and returns the page
// as stored.
func (s *PageService) Create(ctx context.Context, page pages.Page, children ...blocks.Block) (pages.Page, error) {
	m, err := s.con.Object(ctx, "pages.create", http.MethodPost, "/pages", page.ToCreateMap(children...))
	if err != nil {
		return pages.Page{}, err
	}
	return pages.FromMap(m)
}

// Update sends the writable properties, the archived flag and the icon.
func (s *PageService) Update(ctx context.Context, page pages.Page) (pages.Page, error) {
	id, err := requireID("page", page.ID())
	if err != nil {
		return pages.Page{}, err
	}
	m, err := s.con.Object(ctx, "pages.update", http.MethodPatch, "/pages/"+id, page.ToUpdateMap())
	if err != nil {
		return pages.Page{}, err
	}
	return pages.FromMap(m)
}
