package pages

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/notion-sdk/notion-go/pkg/blocks"
	"github.com/notion-sdk/notion-go/pkg/constants"
	"github.com/notion-sdk/notion-go/pkg/models"
	"github.com/notion-sdk/notion-go/pkg/properties"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, s string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(s), &m))
	return m
}

func encode(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

const databasePage = `{
	"object": "page",
	"id": "be633bf1-dfa0-436d-b259-571129a590e5",
	"created_time": "2022-10-24T22:54:00.000Z",
	"last_edited_time": "2023-03-08T18:25:00.000Z",
	"archived": false,
	"url": "https://www.notion.so/Groceries-be633bf1dfa0436db259571129a590e5",
	"parent": {"type": "database_id", "database_id": "a1d8501e-1ac1-43e9-a6bd-ea9fe6c8822b"},
	"icon": {"type": "emoji", "emoji": "🥬"},
	"properties": {
		"Name": {"id": "title", "type": "title", "title": [{"plain_text": "Groceries", "href": null, "type": "text", "text": {"content": "Groceries", "link": null}, "annotations": {"bold": false, "italic": false, "strikethrough": false, "underline": false, "code": false, "color": "default"}}]},
		"Due": {"id": "M%3BBw", "type": "date", "date": {"start": "2023-02-23"}},
		"Website": {"id": "BZKU", "type": "url", "url": null},
		"Created": {"id": "s%3Cj%5E", "type": "created_time", "created_time": "2022-10-24T22:54:00.000Z"},
		"Cost": {"id": "Mx%3E", "type": "formula", "formula": {"type": "number", "number": 12}}
	}
}`

func TestFromMap_roundtrip(t *testing.T) {
	t.Parallel()

	p, err := FromMap(decode(t, databasePage))
	require.NoError(t, err)

	assert.Equal(t, "be633bf1-dfa0-436d-b259-571129a590e5", p.ID())
	assert.Equal(t, ParentDatabase, p.Parent().Type())
	assert.Equal(t, "a1d8501e-1ac1-43e9-a6bd-ea9fe6c8822b", p.Parent().ID())
	assert.Equal(t, "Groceries", p.Title())
	assert.Equal(t, []string{"Created", "Due", "Name", "Website"}, p.PropertyNames())

	icon, ok := p.Icon()
	require.True(t, ok)
	assert.Equal(t, "🥬", icon.Emoji())

	due, ok := p.Property("Due")
	require.True(t, ok)
	assert.Equal(t, "Due", due.Metadata().Name())
	assert.Equal(t, properties.TypeDate, due.Metadata().Type())

	_, ok = p.Property("Cost")
	assert.False(t, ok)

	assert.JSONEq(t, databasePage, encode(t, p.ToMap()))
}

func TestToUpdateMap(t *testing.T) {
	t.Parallel()

	p, err := FromMap(decode(t, databasePage))
	require.NoError(t, err)

	update := p.WithTitle("Weekly groceries").Archive().ToUpdateMap()
	assert.ElementsMatch(t, []string{"properties", "archived", "icon"}, keys(update))
	assert.Equal(t, true, update["archived"])

	props := update["properties"].(map[string]any)
	assert.ElementsMatch(t, []string{"Name", "Due", "Website"}, keys(props))

	title := props["Name"].(map[string]any)
	assert.Equal(t, "title", title["id"])
	assert.Len(t, title["title"], 1)

	// the original is untouched
	assert.Equal(t, "Groceries", p.Title())
	assert.False(t, p.Archived())
}

func TestNew(t *testing.T) {
	t.Parallel()

	p := New(NewPageParent("4a1bb3a4-3e5c-4d0b-9e39-e1d5c1b1d3b2")).
		WithTitle("Meeting notes").
		WithProperty("Link", properties.NewURL("https://notion.so")).
		ChangeIcon(models.NewEmojiIcon("📝"))

	assert.Equal(t, "Meeting notes", p.Title())
	assert.Empty(t, p.ID())
	assert.False(t, p.CreatedTime().IsZero())

	create := p.ToCreateMap(blocks.NewParagraphFromString("Agenda"))
	assert.JSONEq(t, `{"type": "page_id", "page_id": "4a1bb3a4-3e5c-4d0b-9e39-e1d5c1b1d3b2"}`, encode(t, create["parent"]))
	assert.JSONEq(t, `{"type": "emoji", "emoji": "📝"}`, encode(t, create["icon"]))
	assert.Len(t, create["children"], 1)

	props := create["properties"].(map[string]any)
	assert.ElementsMatch(t, []string{TitlePropertyName, "Link"}, keys(props))

	assert.NotContains(t, New(NewWorkspaceParent()).ToCreateMap(), "children")
}

func TestCopyOnWrite(t *testing.T) {
	t.Parallel()

	p, err := FromMap(decode(t, databasePage))
	require.NoError(t, err)

	without := p.WithoutProperty("Due").WithoutProperty("Cost").RemoveIcon()
	_, ok := without.Property("Due")
	assert.False(t, ok)
	_, ok = without.Icon()
	assert.False(t, ok)
	assert.NotContains(t, without.ToMap()["properties"], "Cost")

	_, ok = p.Property("Due")
	assert.True(t, ok)
	assert.Contains(t, p.ToMap()["properties"], "Cost")
	_, ok = p.Icon()
	assert.True(t, ok)

	assert.False(t, p.Archive().Unarchive().Archived())
}

func TestFromMap_errors(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name string
		json string
		err  error
	}{
		{name: "not a page", json: `{"object": "block", "parent": {"type": "workspace", "workspace": true}}`, err: constants.ErrTypeMismatch},
		{name: "missing parent", json: `{"object": "page"}`, err: constants.ErrMalformedInput},
		{name: "unknown parent", json: `{"parent": {"type": "team_id", "team_id": "x"}}`, err: constants.ErrUnknownType},
		{name: "bad property", json: `{"parent": {"type": "workspace", "workspace": true}, "properties": {"Website": {"type": "url", "url": 1}}}`, err: constants.ErrMalformedInput},
		{name: "property without type", json: `{"parent": {"type": "workspace", "workspace": true}, "properties": {"Website": {"url": null}}}`, err: constants.ErrMalformedInput},
		{name: "unknown mention in title", json: `{"parent": {"type": "workspace", "workspace": true}, "properties": {"Name": {"id": "title", "type": "title", "title": [{"plain_text": "see ", "type": "text", "text": {"content": "see "}}, {"plain_text": "link", "type": "mention", "mention": {"type": "link_preview", "link_preview": {"url": "https://x"}}}]}}}`, err: constants.ErrUnknownType},
		{name: "bad icon", json: `{"parent": {"type": "workspace", "workspace": true}, "icon": {"type": "emoji"}}`, err: constants.ErrMalformedInput},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := FromMap(decode(t, tc.json))
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestParent_roundtrip(t *testing.T) {
	t.Parallel()

	for _, fixture := range []string{
		`{"type": "workspace", "workspace": true}`,
		`{"type": "page_id", "page_id": "59833787-2cf9-4fdf-8782-e53db20768a5"}`,
		`{"type": "block_id", "block_id": "7d50a184-5bbe-4d90-8f29-6bec57ed817b"}`,
	} {
		p, err := ParentFromMap(decode(t, fixture))
		require.NoError(t, err)
		assert.JSONEq(t, fixture, encode(t, p.ToMap()))
	}
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestFromMap_unknownNestedValueFailsPage(t *testing.T) {
	t.Parallel()

	m := decode(t, databasePage)
	props := m["properties"].(map[string]any)
	props["Notes"] = map[string]any{
		"id":   "nts",
		"type": "rich_text",
		"rich_text": []any{map[string]any{
			"plain_text": "tmpl",
			"type":       "mention",
			"mention":    map[string]any{"type": "template_mention", "template_mention": map[string]any{}},
		}},
	}

	p, err := FromMap(m)
	require.ErrorIs(t, err, constants.ErrUnknownType)
	assert.ErrorContains(t, err, `property "Notes"`)
	assert.Empty(t, p.PropertyNames())
}
