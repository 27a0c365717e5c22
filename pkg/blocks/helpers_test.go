package blocks

import (
	"testing"

	"github.com/goccy/go-json"
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

const metadataFields = `
	"object": "block",
	"id": "04a13895-f072-4814-8af7-cd11af127040",
	"created_time": "2021-10-18T17:09:00.000Z",
	"last_edited_time": "2021-10-18T17:09:00.000Z",
	"archived": false,
	"has_children": false,`

func textJSON(content string) string {
	return `{
		"plain_text": "` + content + `",
		"href": null,
		"type": "text",
		"text": {"content": "` + content + `", "link": null},
		"annotations": {"bold": false, "italic": false, "strikethrough": false, "underline": false, "code": false, "color": "default"}
	}`
}
