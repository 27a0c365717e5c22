package models

import (
	"fmt"

	"github.com/notion-sdk/notion-go/internal/jsonmap"
	"github.com/notion-sdk/notion-go/pkg/constants"
)

type MentionType string

const (
	MentionTypePage     MentionType = "page"
	MentionTypeDatabase MentionType = "database"
	MentionTypeUser     MentionType = "user"
	MentionTypeDate     MentionType = "date"
)

// Mention references a page, database, user or date inside rich text.
type Mention struct {
	typ  MentionType
	id   string
	date *Date
}

func MentionFromMap(m map[string]any) (Mention, error) {
	typ, err := jsonmap.String(m, "type")
	if err != nil {
		return Mention{}, err
	}

	mention := Mention{typ: MentionType(typ)}
	switch mention.typ {
	case MentionTypePage, MentionTypeDatabase, MentionTypeUser:
		ref, err := jsonmap.Object(m, typ)
		if err != nil {
			return Mention{}, err
		}
		if mention.id, err = jsonmap.String(ref, "id"); err != nil {
			return Mention{}, err
		}
	case MentionTypeDate:
		dm, err := jsonmap.Object(m, typ)
		if err != nil {
			return Mention{}, err
		}
		date, err := DateFromMap(dm)
		if err != nil {
			return Mention{}, err
		}
		mention.date = &date
	default:
		return Mention{}, fmt.Errorf("%w: mention %q", constants.ErrUnknownType, typ)
	}

	return mention, nil
}

func (m Mention) ToMap() map[string]any {
	out := map[string]any{"type": string(m.typ)}
	switch m.typ {
	case MentionTypeUser:
		out["user"] = map[string]any{"object": "user", "id": m.id}
	case MentionTypeDate:
		out["date"] = m.date.ToMap()
	default:
		out[string(m.typ)] = map[string]any{"id": m.id}
	}
	return out
}

func (m Mention) Type() MentionType { return m.typ }

// ID is the referenced page, database or user id. Empty for date mentions.
func (m Mention) ID() string { return m.id }

func (m Mention) Date() (Date, bool) {
	if m.date == nil {
		return Date{}, false
	}
	return *m.date, true
}
