package constants

import "time"

const (
	DefaultBaseURL     = "https://api.notion.com/v1"
	DefaultAPIVersion  = "2022-06-28"
	DefaultHTTPTimeout = 30 * time.Second
	DefaultPageSize    = 100
)

const (
	EnvToken   = "NOTION_TOKEN"
	EnvBaseURL = "NOTION_BASE_URL"
	EnvVersion = "NOTION_VERSION"
)

// TimestampLayout is the ISO-8601 layout used by the API for timestamps.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// DateLayout is used for date values that carry no time of day.
const DateLayout = "2006-01-02"
