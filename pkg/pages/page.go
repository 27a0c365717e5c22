package pages

import (
	"fmt"
	"sort"
	"time"

	"github.com/notion-sdk/notion-go/internal/jsonmap"
	"github.com/notion-sdk/notion-go/pkg/blocks"
	"github.com/notion-sdk/notion-go/pkg/constants"
	"github.com/notion-sdk/notion-go/pkg/models"
	"github.com/notion-sdk/notion-go/pkg/properties"
)

// TitlePropertyName is the key used for the title of pages that are not in a
// database.
const TitlePropertyName = "title"

// Page is an immutable page object. Properties are keyed by name. Property
// values of types this package does not model are kept as raw maps: they are
// written back by ToMap and never sent in update payloads.
type Page struct {
	id             string
	createdTime    time.Time
	lastEditedTime time.Time
	archived       bool
	url            string
	parent         Parent
	properties     map[string]properties.Property
	unmodeled      map[string]map[string]any
	icon           *models.Icon
}

func New(parent Parent) Page {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return Page{
		createdTime:    now,
		lastEditedTime: now,
		parent:         parent,
		properties:     map[string]properties.Property{},
		unmodeled:      map[string]map[string]any{},
	}
}

func FromMap(m map[string]any) (Page, error) {
	var (
		p   Page
		err error
	)

	if object, err := jsonmap.OptionalString(m, "object"); err != nil {
		return Page{}, err
	} else if object != "" && object != "page" {
		return Page{}, fmt.Errorf("%w: object is %q, expected \"page\"", constants.ErrTypeMismatch, object)
	}

	if p.id, err = jsonmap.OptionalString(m, "id"); err != nil {
		return Page{}, err
	}
	if p.createdTime, err = jsonmap.Time(m, "created_time"); err != nil {
		return Page{}, err
	}
	if p.lastEditedTime, err = jsonmap.Time(m, "last_edited_time"); err != nil {
		return Page{}, err
	}
	if p.archived, err = jsonmap.OptionalBool(m, "archived"); err != nil {
		return Page{}, err
	}
	if p.url, err = jsonmap.OptionalString(m, "url"); err != nil {
		return Page{}, err
	}

	parent, err := jsonmap.Object(m, "parent")
	if err != nil {
		return Page{}, err
	}
	if p.parent, err = ParentFromMap(parent); err != nil {
		return Page{}, fmt.Errorf("parent: %w", err)
	}

	icon, err := jsonmap.OptionalObject(m, "icon")
	if err != nil {
		return Page{}, err
	}
	if icon != nil {
		i, err := models.IconFromMap(icon)
		if err != nil {
			return Page{}, fmt.Errorf("icon: %w", err)
		}
		p.icon = &i
	}

	props, err := jsonmap.OptionalObject(m, "properties")
	if err != nil {
		return Page{}, err
	}
	p.properties = make(map[string]properties.Property, len(props))
	p.unmodeled = map[string]map[string]any{}
	for name := range props {
		raw, err := jsonmap.Object(props, name)
		if err != nil {
			return Page{}, fmt.Errorf("property %q: %w", name, err)
		}
		t, err := jsonmap.String(raw, "type")
		if err != nil {
			return Page{}, fmt.Errorf("property %q: %w", name, err)
		}
		if !properties.IsKnownType(properties.PropertyType(t)) {
			p.unmodeled[name] = raw
			continue
		}
		prop, err := properties.FromNamedMap(name, raw)
		if err != nil {
			return Page{}, fmt.Errorf("property %q: %w", name, err)
		}
		p.properties[name] = prop
	}

	return p, nil
}

func (p Page) ToMap() map[string]any {
	props := make(map[string]any, len(p.properties)+len(p.unmodeled))
	for name, raw := range p.unmodeled {
		props[name] = raw
	}
	for name, prop := range p.properties {
		props[name] = prop.ToMap()
	}

	m := map[string]any{
		"object":     "page",
		"archived":   p.archived,
		"parent":     p.parent.ToMap(),
		"properties": props,
	}
	if p.id != "" {
		m["id"] = p.id
	}
	if !p.createdTime.IsZero() {
		m["created_time"] = jsonmap.FormatTime(p.createdTime)
	}
	if !p.lastEditedTime.IsZero() {
		m["last_edited_time"] = jsonmap.FormatTime(p.lastEditedTime)
	}
	if p.url != "" {
		m["url"] = p.url
	}
	if p.icon != nil {
		m["icon"] = p.icon.ToMap()
	}
	return m
}

// ToUpdateMap returns the payload of an update request: the writable
// properties, the archived flag and the icon when set.
func (p Page) ToUpdateMap() map[string]any {
	m := map[string]any{
		"properties": p.writableProperties(),
		"archived":   p.archived,
	}
	if p.icon != nil {
		m["icon"] = p.icon.ToMap()
	}
	return m
}

// ToCreateMap returns the payload of a create request, with the initial
// content of the page.
func (p Page) ToCreateMap(children ...blocks.Block) map[string]any {
	m := map[string]any{
		"parent":     p.parent.ToMap(),
		"properties": p.writableProperties(),
	}
	if p.icon != nil {
		m["icon"] = p.icon.ToMap()
	}
	if len(children) > 0 {
		m["children"] = blocks.ToMaps(children...)
	}
	return m
}

func (p Page) writableProperties() map[string]any {
	props := make(map[string]any, len(p.properties))
	for name, prop := range p.properties {
		if properties.IsWritable(prop.Metadata().Type()) {
			props[name] = prop.ToMap()
		}
	}
	return props
}

func (p Page) ID() string                { return p.id }
func (p Page) CreatedTime() time.Time    { return p.createdTime }
func (p Page) LastEditedTime() time.Time { return p.lastEditedTime }
func (p Page) Archived() bool            { return p.archived }
func (p Page) URL() string               { return p.url }
func (p Page) Parent() Parent            { return p.parent }

func (p Page) Icon() (models.Icon, bool) {
	if p.icon == nil {
		return models.Icon{}, false
	}
	return *p.icon, true
}

func (p Page) Property(name string) (properties.Property, bool) {
	prop, ok := p.properties[name]
	return prop, ok
}

// PropertyNames returns the names of the modeled properties, sorted.
func (p Page) PropertyNames() []string {
	names := make([]string, 0, len(p.properties))
	for name := range p.properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TitleProperty returns the title property and its name.
func (p Page) TitleProperty() (string, properties.Title, bool) {
	for name, prop := range p.properties {
		if title, ok := prop.(properties.Title); ok {
			return name, title, true
		}
	}
	return "", properties.Title{}, false
}

// Title returns the plain text of the title property.
func (p Page) Title() string {
	_, title, _ := p.TitleProperty()
	return title.String()
}

// WithTitle replaces the text of the title property, creating it if needed.
func (p Page) WithTitle(title string) Page {
	name, prop, ok := p.TitleProperty()
	if !ok {
		return p.WithProperty(TitlePropertyName, properties.NewTitleFromString(title))
	}
	return p.WithProperty(name, prop.ChangeTitle(models.NewTextRichText(title)))
}

func (p Page) WithProperty(name string, prop properties.Property) Page {
	p.properties = p.copyProperties()
	p.properties[name] = prop
	p.unmodeled = p.copyUnmodeled()
	delete(p.unmodeled, name)
	return p
}

func (p Page) WithoutProperty(name string) Page {
	p.properties = p.copyProperties()
	delete(p.properties, name)
	p.unmodeled = p.copyUnmodeled()
	delete(p.unmodeled, name)
	return p
}

func (p Page) ChangeIcon(icon models.Icon) Page {
	p.icon = &icon
	return p
}

func (p Page) RemoveIcon() Page {
	p.icon = nil
	return p
}

func (p Page) Archive() Page {
	p.archived = true
	return p
}

func (p Page) Unarchive() Page {
	p.archived = false
	return p
}

func (p Page) copyProperties() map[string]properties.Property {
	out := make(map[string]properties.Property, len(p.properties)+1)
	for name, prop := range p.properties {
		out[name] = prop
	}
	return out
}

func (p Page) copyUnmodeled() map[string]map[string]any {
	out := make(map[string]map[string]any, len(p.unmodeled))
	for name, raw := range p.unmodeled {
		out[name] = raw
	}
	return out
}
