package properties

import (
	"testing"

	"github.com/notion-sdk/notion-go/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var propertyFixtures = map[PropertyType]string{
	TypeCheckbox:       `{"id": "%5DE%3B", "type": "checkbox", "checkbox": true}`,
	TypeCreatedTime:    `{"id": "s%3Cj%5E", "type": "created_time", "created_time": "2021-10-18T17:09:00.000Z"}`,
	TypeDate:           `{"id": "a%3Cql", "type": "date", "date": {"start": "2021-01-01", "end": "2021-01-31"}}`,
	TypeEmail:          `{"id": "E%7Bjc", "type": "email", "email": "jane@example.com"}`,
	TypeLastEditedTime: `{"id": "l%3Bw_", "type": "last_edited_time", "last_edited_time": "2021-10-19T08:30:00.000Z"}`,
	TypeMultiSelect:    `{"id": "flsb", "type": "multi_select", "multi_select": [{"id": "5de29601", "name": "Go", "color": "blue"}, {"name": "Python"}]}`,
	TypeNumber:         `{"id": "WPj%5E", "type": "number", "number": 42.5}`,
	TypePhoneNumber:    `{"id": "ztaW", "type": "phone_number", "phone_number": "+33 6 12 34 56 78"}`,
	TypeRichText:       `{"id": "D%5BX%7D", "type": "rich_text", "rich_text": [{"plain_text": "Notes", "href": null, "type": "text", "text": {"content": "Notes", "link": null}, "annotations": {"bold": false, "italic": false, "strikethrough": false, "underline": false, "code": false, "color": "default"}}]}`,
	TypeSelect:         `{"id": "Hj%3Ce", "type": "select", "select": {"id": "c3a5f8a2", "name": "High", "color": "red"}}`,
	TypeStatus:         `{"id": "Qtv%60", "type": "status", "status": {"id": "01d0c9b7", "name": "In progress", "color": "yellow"}}`,
	TypeTitle:          `{"id": "title", "type": "title", "title": [{"plain_text": "Groceries", "href": null, "type": "text", "text": {"content": "Groceries", "link": null}, "annotations": {"bold": true, "italic": false, "strikethrough": false, "underline": false, "code": false, "color": "default"}}]}`,
	TypeURL:            `{"id": "BZKU", "type": "url", "url": "https://notion.so"}`,
}

func TestFromMap_roundtrip(t *testing.T) {
	t.Parallel()

	for typ, fixture := range propertyFixtures {
		typ, fixture := typ, fixture
		t.Run(string(typ), func(t *testing.T) {
			t.Parallel()

			p, err := FromMap(decode(t, fixture))
			require.NoError(t, err)
			assert.Equal(t, typ, p.Metadata().Type())
			assert.NotEmpty(t, p.Metadata().ID())

			assert.JSONEq(t, fixture, encode(t, p.ToMap()))
		})
	}
}

func TestFromMap_typeMismatch(t *testing.T) {
	t.Parallel()

	_, err := URLFromMap(decode(t, `{"id": "BZKU", "type": "email", "email": "jane@example.com"}`))
	require.ErrorIs(t, err, constants.ErrTypeMismatch)

	_, err = DateFromMap(decode(t, propertyFixtures[TypePhoneNumber]))
	require.ErrorIs(t, err, constants.ErrTypeMismatch)
}

func TestFromMap_errors(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name string
		json string
		err  error
	}{
		{name: "unknown type", json: `{"id": "x", "type": "formula", "formula": {}}`, err: constants.ErrUnknownType},
		{name: "missing type", json: `{"id": "x", "url": "https://notion.so"}`, err: constants.ErrMalformedInput},
		{name: "url not a string", json: `{"type": "url", "url": 3}`, err: constants.ErrMalformedInput},
		{name: "checkbox missing", json: `{"type": "checkbox"}`, err: constants.ErrMalformedInput},
		{name: "number not a number", json: `{"type": "number", "number": "42"}`, err: constants.ErrMalformedInput},
		{name: "date without start", json: `{"type": "date", "date": {"end": "2021-01-01"}}`, err: constants.ErrMalformedInput},
		{name: "option without name", json: `{"type": "select", "select": {"id": "x"}}`, err: constants.ErrMalformedInput},
		{name: "bad timestamp", json: `{"type": "created_time", "created_time": "yesterday"}`, err: constants.ErrMalformedInput},
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

func TestFromMap_multiSelectIndex(t *testing.T) {
	t.Parallel()

	_, err := FromMap(decode(t, `{"type": "multi_select", "multi_select": [{"name": "Go"}, {"color": "red"}]}`))
	require.ErrorIs(t, err, constants.ErrMalformedInput)
	assert.Contains(t, err.Error(), "option 1")
}

func TestFromNamedMap(t *testing.T) {
	t.Parallel()

	fixture := decode(t, propertyFixtures[TypeURL])
	p, err := FromNamedMap("Website", fixture)
	require.NoError(t, err)
	assert.Equal(t, "Website", p.Metadata().Name())
	assert.NotContains(t, p.ToMap(), "name")
	assert.NotContains(t, fixture, "name")
}

func TestIsWritable(t *testing.T) {
	t.Parallel()

	for typ := range propertyFixtures {
		writable := typ != TypeCreatedTime && typ != TypeLastEditedTime
		assert.Equal(t, writable, IsWritable(typ), typ)
	}
}

func TestIsKnownType(t *testing.T) {
	t.Parallel()

	for typ := range propertyFixtures {
		assert.True(t, IsKnownType(typ), typ)
	}
	for _, typ := range []PropertyType{"formula", "relation", "rollup", "people", ""} {
		assert.False(t, IsKnownType(typ), typ)
	}
}
