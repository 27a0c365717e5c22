package properties

import (
	"time"

	"github.com/notion-sdk/notion-go/internal/jsonmap"
	"github.com/notion-sdk/notion-go/pkg/models"
)

// Date is a date property. An empty cell holds no date, in which case Start
// returns the zero time and the value is sent as null.
type Date struct {
	metadata PropertyMetadata
	date     *models.Date
}

func NewDate(start time.Time) Date {
	d := models.NewDate(start)
	return Date{metadata: NewPropertyMetadata("", TypeDate), date: &d}
}

func NewDateRange(start, end time.Time) Date {
	d := models.NewDateRange(start, end)
	return Date{metadata: NewPropertyMetadata("", TypeDate), date: &d}
}

func DateFromMap(m map[string]any) (Date, error) {
	meta, err := metadataFromMap(m, TypeDate)
	if err != nil {
		return Date{}, err
	}
	raw, err := jsonmap.OptionalObject(m, string(TypeDate))
	if err != nil {
		return Date{}, err
	}
	p := Date{metadata: meta}
	if raw == nil {
		return p, nil
	}
	d, err := models.DateFromMap(raw)
	if err != nil {
		return Date{}, err
	}
	p.date = &d
	return p, nil
}

func (p Date) ToMap() map[string]any {
	if p.date == nil {
		return withValue(p.metadata, nil)
	}
	return withValue(p.metadata, p.date.ToMap())
}

func (p Date) Metadata() PropertyMetadata { return p.metadata }

// Date returns the value and whether the cell is filled.
func (p Date) Date() (models.Date, bool) {
	if p.date == nil {
		return models.Date{}, false
	}
	return *p.date, true
}

func (p Date) Start() time.Time {
	if p.date == nil {
		return time.Time{}
	}
	return p.date.Start()
}

func (p Date) End() *time.Time {
	if p.date == nil {
		return nil
	}
	return p.date.End()
}

func (p Date) IsRange() bool {
	return p.date != nil && p.date.IsRange()
}

func (p Date) ChangeDate(d models.Date) Date {
	p.date = &d
	return p
}

func (p Date) ChangeStart(start time.Time) Date {
	if p.date == nil {
		return p.ChangeDate(models.NewDate(start))
	}
	return p.ChangeDate(p.date.ChangeStart(start))
}

// ChangeEnd turns the date into a range. An empty cell starts at end.
func (p Date) ChangeEnd(end time.Time) Date {
	if p.date == nil {
		return p.ChangeDate(models.NewDateRange(end, end))
	}
	return p.ChangeDate(p.date.ChangeEnd(end))
}

func (p Date) RemoveEnd() Date {
	if p.date == nil {
		return p
	}
	return p.ChangeDate(p.date.RemoveEnd())
}

func (p Date) Clear() Date {
	p.date = nil
	return p
}
