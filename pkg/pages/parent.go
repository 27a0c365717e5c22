package pages

import (
	"fmt"

	"github.com/notion-sdk/notion-go/internal/jsonmap"
	"github.com/notion-sdk/notion-go/pkg/constants"
)

type ParentType string

const (
	ParentDatabase  ParentType = "database_id"
	ParentPage      ParentType = "page_id"
	ParentBlock     ParentType = "block_id"
	ParentWorkspace ParentType = "workspace"
)

// Parent locates a page: in a database, under another page or block, or at
// the top level of the workspace.
type Parent struct {
	typ ParentType
	id  string
}

func NewDatabaseParent(databaseID string) Parent {
	return Parent{typ: ParentDatabase, id: databaseID}
}

func NewPageParent(pageID string) Parent {
	return Parent{typ: ParentPage, id: pageID}
}

func NewWorkspaceParent() Parent {
	return Parent{typ: ParentWorkspace}
}

func ParentFromMap(m map[string]any) (Parent, error) {
	t, err := jsonmap.String(m, "type")
	if err != nil {
		return Parent{}, err
	}

	p := Parent{typ: ParentType(t)}
	switch p.typ {
	case ParentDatabase, ParentPage, ParentBlock:
		if p.id, err = jsonmap.String(m, t); err != nil {
			return Parent{}, err
		}
	case ParentWorkspace:
	default:
		return Parent{}, fmt.Errorf("%w: parent %q", constants.ErrUnknownType, t)
	}
	return p, nil
}

func (p Parent) ToMap() map[string]any {
	if p.typ == ParentWorkspace {
		return map[string]any{"type": string(p.typ), "workspace": true}
	}
	return map[string]any{"type": string(p.typ), string(p.typ): p.id}
}

func (p Parent) Type() ParentType { return p.typ }
func (p Parent) ID() string       { return p.id }
