package models

import (
	"time"

	"github.com/notion-sdk/notion-go/internal/jsonmap"
	"github.com/notion-sdk/notion-go/pkg/constants"
)

// Date is a single point in time or a range. A value read without a time of
// day (for example "2021-01-01") is written back the same way; start and end
// keep their own format.
type Date struct {
	start       time.Time
	end         *time.Time
	timeZone    string
	dateOnly    bool
	endDateOnly bool
}

func NewDate(start time.Time) Date {
	return Date{start: start}
}

func NewDateRange(start, end time.Time) Date {
	return Date{start: start, end: &end}
}

func DateFromMap(m map[string]any) (Date, error) {
	s, err := jsonmap.String(m, "start")
	if err != nil {
		return Date{}, err
	}
	start, dateOnly, err := parseDateValue("start", s)
	if err != nil {
		return Date{}, err
	}

	d := Date{start: start, dateOnly: dateOnly}

	e, err := jsonmap.NullableString(m, "end")
	if err != nil {
		return Date{}, err
	}
	if e != nil {
		end, endDateOnly, err := parseDateValue("end", *e)
		if err != nil {
			return Date{}, err
		}
		d.end = &end
		d.endDateOnly = endDateOnly
	}

	if d.timeZone, err = jsonmap.OptionalString(m, "time_zone"); err != nil {
		return Date{}, err
	}

	return d, nil
}

func parseDateValue(key, s string) (time.Time, bool, error) {
	if len(s) == len(constants.DateLayout) {
		t, err := time.Parse(constants.DateLayout, s)
		if err == nil {
			return t, true, nil
		}
	}
	t, err := jsonmap.Time(map[string]any{key: s}, key)
	return t, false, err
}

func formatDateValue(t time.Time, dateOnly bool) string {
	if dateOnly {
		return t.Format(constants.DateLayout)
	}
	return jsonmap.FormatTime(t)
}

func (d Date) ToMap() map[string]any {
	m := map[string]any{"start": formatDateValue(d.start, d.dateOnly)}
	if d.end != nil {
		m["end"] = formatDateValue(*d.end, d.endDateOnly)
	}
	if d.timeZone != "" {
		m["time_zone"] = d.timeZone
	}
	return m
}

func (d Date) Start() time.Time { return d.start }

// End returns nil unless the date is a range.
func (d Date) End() *time.Time {
	if d.end == nil {
		return nil
	}
	end := *d.end
	return &end
}

func (d Date) IsRange() bool    { return d.end != nil }
func (d Date) TimeZone() string { return d.timeZone }

// IsDateOnly reports whether the start has no time of day.
func (d Date) IsDateOnly() bool { return d.dateOnly }

// IsEndDateOnly reports whether the end has no time of day.
func (d Date) IsEndDateOnly() bool { return d.end != nil && d.endDateOnly }

func (d Date) ChangeStart(start time.Time) Date {
	d.start = start
	return d
}

// ChangeEnd sets the end, formatted like the start.
func (d Date) ChangeEnd(end time.Time) Date {
	d.end = &end
	d.endDateOnly = d.dateOnly
	return d
}

func (d Date) RemoveEnd() Date {
	d.end = nil
	return d
}

// WithDateOnly controls whether the time of day is dropped on output, for
// both start and end.
func (d Date) WithDateOnly(dateOnly bool) Date {
	d.dateOnly = dateOnly
	d.endDateOnly = dateOnly
	return d
}

// WithTimeZone sets an IANA time zone name, an empty name removes it.
func (d Date) WithTimeZone(tz string) Date {
	d.timeZone = tz
	return d
}
