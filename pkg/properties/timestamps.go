package properties

import (
	"time"

	"github.com/notion-sdk/notion-go/internal/jsonmap"
)

// CreatedTime is computed by the API and cannot be changed.
type CreatedTime struct {
	metadata PropertyMetadata
	time     time.Time
}

func CreatedTimeFromMap(m map[string]any) (CreatedTime, error) {
	meta, err := metadataFromMap(m, TypeCreatedTime)
	if err != nil {
		return CreatedTime{}, err
	}
	t, err := jsonmap.Time(m, string(TypeCreatedTime))
	if err != nil {
		return CreatedTime{}, err
	}
	return CreatedTime{metadata: meta, time: t}, nil
}

func (p CreatedTime) ToMap() map[string]any {
	return withValue(p.metadata, jsonmap.FormatTime(p.time))
}

func (p CreatedTime) Metadata() PropertyMetadata { return p.metadata }
func (p CreatedTime) Time() time.Time            { return p.time }

// LastEditedTime is computed by the API and cannot be changed.
type LastEditedTime struct {
	metadata PropertyMetadata
	time     time.Time
}

func LastEditedTimeFromMap(m map[string]any) (LastEditedTime, error) {
	meta, err := metadataFromMap(m, TypeLastEditedTime)
	if err != nil {
		return LastEditedTime{}, err
	}
	t, err := jsonmap.Time(m, string(TypeLastEditedTime))
	if err != nil {
		return LastEditedTime{}, err
	}
	return LastEditedTime{metadata: meta, time: t}, nil
}

func (p LastEditedTime) ToMap() map[string]any {
	return withValue(p.metadata, jsonmap.FormatTime(p.time))
}

func (p LastEditedTime) Metadata() PropertyMetadata { return p.metadata }
func (p LastEditedTime) Time() time.Time            { return p.time }
