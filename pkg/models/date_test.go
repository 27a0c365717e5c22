package models

import (
	"testing"
	"time"

	"github.com/notion-sdk/notion-go/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_roundtrip(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name    string
		json    string
		isRange bool
	}{
		{name: "datetime", json: `{"start": "2021-10-18T17:09:00.000Z"}`},
		{name: "datetime with offset", json: `{"start": "2021-05-11T11:00:00.000-04:00"}`},
		{name: "date only", json: `{"start": "2021-01-01"}`},
		{name: "range", json: `{"start": "2021-01-01", "end": "2021-01-31"}`, isRange: true},
		{name: "date start, datetime end", json: `{"start": "2021-01-01", "end": "2021-01-02T10:30:00.000Z"}`, isRange: true},
		{name: "datetime start, date end", json: `{"start": "2021-01-01T10:30:00.000Z", "end": "2021-01-02"}`, isRange: true},
		{name: "microseconds", json: `{"start": "2021-01-01T10:30:00.123456Z"}`},
		{name: "time zone", json: `{"start": "2021-10-18T17:09:00.000Z", "end": "2021-10-18T18:09:00.000Z", "time_zone": "Europe/Paris"}`, isRange: true},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			d, err := DateFromMap(decode(t, tc.json))
			require.NoError(t, err)
			assert.Equal(t, tc.isRange, d.IsRange())
			assert.JSONEq(t, tc.json, encode(t, d.ToMap()))
		})
	}
}

func TestDate_FromMap_nullEnd(t *testing.T) {
	t.Parallel()

	d, err := DateFromMap(map[string]any{"start": "2021-01-01", "end": nil, "time_zone": nil})
	require.NoError(t, err)
	assert.False(t, d.IsRange())
	assert.Nil(t, d.End())
	assert.True(t, d.IsDateOnly())
}

func TestDate_FromMap_errors(t *testing.T) {
	t.Parallel()

	for name, m := range map[string]map[string]any{
		"missing start": {},
		"start number":  {"start": 12},
		"bad start":     {"start": "yesterday"},
		"bad end":       {"start": "2021-01-01", "end": "2021-13-45"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := DateFromMap(m)
			require.ErrorIs(t, err, constants.ErrMalformedInput)
		})
	}
}

func TestDate_copy_on_write(t *testing.T) {
	t.Parallel()

	start := time.Date(2023, 10, 1, 12, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	single := NewDate(start)
	assert.False(t, single.IsRange())
	assert.Equal(t, start, single.Start())

	ranged := single.ChangeEnd(end)
	assert.True(t, ranged.IsRange())
	assert.False(t, single.IsRange())
	require.NotNil(t, ranged.End())
	assert.Equal(t, end, *ranged.End())

	moved := ranged.ChangeStart(start.Add(time.Hour))
	assert.Equal(t, start, ranged.Start())
	assert.Equal(t, start.Add(time.Hour), moved.Start())

	removed := ranged.RemoveEnd()
	assert.False(t, removed.IsRange())
	assert.True(t, ranged.IsRange())

	assert.True(t, NewDateRange(start, end).IsRange())
}

func TestDate_End_returnsCopy(t *testing.T) {
	t.Parallel()

	start := time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC)
	d := NewDateRange(start, start.AddDate(0, 0, 1))

	end := d.End()
	*end = start.AddDate(1, 0, 0)

	assert.Equal(t, start.AddDate(0, 0, 1), *d.End())
}

func TestDate_ToMap_dateOnly(t *testing.T) {
	t.Parallel()

	start := time.Date(2023, 10, 1, 15, 30, 0, 0, time.UTC)
	d := NewDate(start)

	assert.Equal(t, map[string]any{"start": "2023-10-01T15:30:00.000Z"}, d.ToMap())
	assert.Equal(t, map[string]any{"start": "2023-10-01"}, d.WithDateOnly(true).ToMap())
	assert.Equal(t, map[string]any{"start": "2023-10-01T15:30:00.000Z", "time_zone": "UTC"}, d.WithTimeZone("UTC").ToMap())
}

func TestDate_ChangeEnd_followsStartFormat(t *testing.T) {
	t.Parallel()

	d, err := DateFromMap(map[string]any{"start": "2021-01-01", "end": "2021-01-02T10:30:00.000Z"})
	require.NoError(t, err)
	assert.True(t, d.IsDateOnly())
	assert.False(t, d.IsEndDateOnly())

	changed := d.ChangeEnd(time.Date(2021, 1, 5, 0, 0, 0, 0, time.UTC))
	assert.True(t, changed.IsEndDateOnly())
	assert.Equal(t, map[string]any{"start": "2021-01-01", "end": "2021-01-05"}, changed.ToMap())
	assert.Equal(t, "2021-01-02T10:30:00.000Z", d.ToMap()["end"])
}
