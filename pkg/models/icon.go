package models

import (
	"fmt"

	"github.com/notion-sdk/notion-go/internal/jsonmap"
	"github.com/notion-sdk/notion-go/pkg/constants"
)

type IconType string

const (
	IconTypeEmoji    IconType = "emoji"
	IconTypeExternal IconType = "external"
	IconTypeFile     IconType = "file"
)

// Icon decorates pages and callouts. It is either an emoji or a link to an
// image; "file" icons are hosted by Notion and their url expires.
type Icon struct {
	typ        IconType
	emoji      string
	url        string
	expiryTime string
}

func NewEmojiIcon(emoji string) Icon {
	return Icon{typ: IconTypeEmoji, emoji: emoji}
}

func NewExternalIcon(url string) Icon {
	return Icon{typ: IconTypeExternal, url: url}
}

func IconFromMap(m map[string]any) (Icon, error) {
	typ, err := jsonmap.String(m, "type")
	if err != nil {
		return Icon{}, err
	}

	icon := Icon{typ: IconType(typ)}
	switch icon.typ {
	case IconTypeEmoji:
		if icon.emoji, err = jsonmap.String(m, "emoji"); err != nil {
			return Icon{}, err
		}
	case IconTypeExternal, IconTypeFile:
		ref, err := jsonmap.Object(m, typ)
		if err != nil {
			return Icon{}, err
		}
		if icon.url, err = jsonmap.String(ref, "url"); err != nil {
			return Icon{}, err
		}
		if icon.expiryTime, err = jsonmap.OptionalString(ref, "expiry_time"); err != nil {
			return Icon{}, err
		}
	default:
		return Icon{}, fmt.Errorf("%w: icon %q", constants.ErrUnknownType, typ)
	}
	return icon, nil
}

func (i Icon) ToMap() map[string]any {
	m := map[string]any{"type": string(i.typ)}
	switch i.typ {
	case IconTypeEmoji:
		m["emoji"] = i.emoji
	default:
		ref := map[string]any{"url": i.url}
		if i.expiryTime != "" {
			ref["expiry_time"] = i.expiryTime
		}
		m[string(i.typ)] = ref
	}
	return m
}

func (i Icon) Type() IconType { return i.typ }
func (i Icon) Emoji() string  { return i.emoji }
func (i Icon) URL() string    { return i.url }
