package models

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/notion-sdk/notion-go/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, s string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(s), &m))
	return m
}

func encode(t *testing.T, m map[string]any) string {
	t.Helper()
	data, err := json.Marshal(m)
	require.NoError(t, err)
	return string(data)
}

func TestRichText_roundtrip(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name string
		json string
		text string
	}{
		{
			name: "text",
			json: `{
				"plain_text": "Notion rocks!",
				"href": null,
				"type": "text",
				"text": {"content": "Notion rocks!", "link": null},
				"annotations": {"bold": false, "italic": false, "strikethrough": false, "underline": false, "code": false, "color": "default"}
			}`,
			text: "Notion rocks!",
		},
		{
			name: "text with link",
			json: `{
				"plain_text": "site",
				"href": "https://example.com",
				"type": "text",
				"text": {"content": "site", "link": {"url": "https://example.com"}},
				"annotations": {"bold": true, "italic": true, "strikethrough": false, "underline": true, "code": false, "color": "red_background"}
			}`,
			text: "site",
		},
		{
			name: "equation",
			json: `{
				"plain_text": "E = mc^2",
				"href": null,
				"type": "equation",
				"equation": {"expression": "E = mc^2"},
				"annotations": {"bold": false, "italic": false, "strikethrough": false, "underline": false, "code": false, "color": "default"}
			}`,
			text: "E = mc^2",
		},
		{
			name: "page mention",
			json: `{
				"plain_text": "Roadmap",
				"href": "https://www.notion.so/3b1f1ab8",
				"type": "mention",
				"mention": {"type": "page", "page": {"id": "3b1f1ab8-5bc1-4e3b-9f8f-19f1a1e9b1ce"}},
				"annotations": {"bold": false, "italic": false, "strikethrough": false, "underline": false, "code": false, "color": "default"}
			}`,
			text: "Roadmap",
		},
		{
			name: "user mention",
			json: `{
				"plain_text": "@Ada",
				"href": null,
				"type": "mention",
				"mention": {"type": "user", "user": {"object": "user", "id": "b2e19928-b427-4aad-9a9d-fde65479b1d9"}},
				"annotations": {"bold": false, "italic": false, "strikethrough": false, "underline": false, "code": false, "color": "default"}
			}`,
			text: "@Ada",
		},
		{
			name: "date mention",
			json: `{
				"plain_text": "2021-10-18",
				"href": null,
				"type": "mention",
				"mention": {"type": "date", "date": {"start": "2021-10-18"}},
				"annotations": {"bold": false, "italic": false, "strikethrough": false, "underline": false, "code": false, "color": "default"}
			}`,
			text: "2021-10-18",
		},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rt, err := RichTextFromMap(decode(t, tc.json))
			require.NoError(t, err)
			assert.Equal(t, tc.text, rt.String())
			assert.JSONEq(t, tc.json, encode(t, rt.ToMap()))
		})
	}
}

func TestRichText_FromMap_errors(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name string
		json string
		err  error
	}{
		{name: "missing type", json: `{"text": {"content": "x"}}`, err: constants.ErrMalformedInput},
		{name: "missing text object", json: `{"type": "text"}`, err: constants.ErrMalformedInput},
		{name: "missing content", json: `{"type": "text", "text": {}}`, err: constants.ErrMalformedInput},
		{name: "wrong annotations", json: `{"type": "text", "text": {"content": "x"}, "annotations": {"bold": "yes"}}`, err: constants.ErrMalformedInput},
		{name: "missing expression", json: `{"type": "equation", "equation": {}}`, err: constants.ErrMalformedInput},
		{name: "unknown type", json: `{"type": "emoji"}`, err: constants.ErrUnknownType},
		{name: "unknown mention", json: `{"type": "mention", "mention": {"type": "template"}}`, err: constants.ErrUnknownType},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := RichTextFromMap(decode(t, tc.json))
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestRichText_FromMap_derivesPlainText(t *testing.T) {
	t.Parallel()

	rt, err := RichTextFromMap(map[string]any{
		"type": "text",
		"text": map[string]any{"content": "no plain text"},
	})
	require.NoError(t, err)
	assert.Equal(t, "no plain text", rt.PlainText())
	assert.Equal(t, DefaultAnnotations(), rt.Annotations())
}

func TestRichText_styling_is_copy_on_write(t *testing.T) {
	t.Parallel()

	plain := NewTextRichText("Hello")
	styled := plain.Bold().Italic().Underline().Strikethrough().Code().WithColor(ColorBlue)

	assert.Equal(t, DefaultAnnotations(), plain.Annotations())
	assert.Equal(t, Annotations{
		Bold:          true,
		Italic:        true,
		Strikethrough: true,
		Underline:     true,
		Code:          true,
		Color:         ColorBlue,
	}, styled.Annotations())

	linked := plain.WithLink("https://example.com")
	_, ok := plain.Link()
	assert.False(t, ok)
	link, ok := linked.Link()
	require.True(t, ok)
	assert.Equal(t, "https://example.com", link)
	href, ok := linked.Href()
	require.True(t, ok)
	assert.Equal(t, link, href)

	_, ok = linked.WithoutLink().Href()
	assert.False(t, ok)
}

func TestRichText_mentions(t *testing.T) {
	t.Parallel()

	page := NewPageMention("page-id")
	m, ok := page.Mention()
	require.True(t, ok)
	assert.Equal(t, MentionTypePage, m.Type())
	assert.Equal(t, "page-id", m.ID())
	assert.Equal(t, map[string]any{"type": "page", "page": map[string]any{"id": "page-id"}}, page.ToMap()["mention"])

	db := NewDatabaseMention("db-id")
	assert.Equal(t, map[string]any{"type": "database", "database": map[string]any{"id": "db-id"}}, db.ToMap()["mention"])

	user := NewUserMention("user-id")
	assert.Equal(t, map[string]any{"type": "user", "user": map[string]any{"object": "user", "id": "user-id"}}, user.ToMap()["mention"])

	_, ok = NewTextRichText("x").Mention()
	assert.False(t, ok)
}

func TestMultipleToString(t *testing.T) {
	t.Parallel()

	spans := []RichText{
		NewTextRichText("Notion quotes "),
		NewTextRichText("rock!").Bold().WithColor(ColorRed),
		NewEquationRichText(" x^2"),
	}

	assert.Equal(t, "Notion quotes rock! x^2", MultipleToString(spans...))
	assert.Equal(t, "", MultipleToString())
}

func TestRichTextsFromMaps_reportsIndex(t *testing.T) {
	t.Parallel()

	_, err := RichTextsFromMaps([]map[string]any{
		NewTextRichText("ok").ToMap(),
		{"type": "text"},
	})
	require.ErrorIs(t, err, constants.ErrMalformedInput)
	assert.Contains(t, err.Error(), "rich text 1")
}
