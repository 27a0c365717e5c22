package models

import (
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/notion-sdk/notion-go/pkg/constants"
)

// ParseID normalises a page, block or database id to its canonical dashed
// form. Ids copied from Notion URLs come without dashes and are accepted too.
func ParseID(s string) (string, error) {
	id, err := uuid.FromString(s)
	if err != nil {
		return "", fmt.Errorf("%w: invalid id %q: %v", constants.ErrMalformedInput, s, err)
	}
	return id.String(), nil
}
