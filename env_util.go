package notion

import (
	"os"

	"github.com/notion-sdk/notion-go/pkg/connection"
	"github.com/notion-sdk/notion-go/pkg/constants"
)

func GetEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	return value
}

// ApplyEnv overrides cfg with the NOTION_* environment variables that are set.
func ApplyEnv(cfg *connection.Config) *connection.Config {
	cfg.Token = GetEnvOrDefault(constants.EnvToken, cfg.Token)
	cfg.BaseURL = GetEnvOrDefault(constants.EnvBaseURL, cfg.BaseURL)
	cfg.Version = GetEnvOrDefault(constants.EnvVersion, cfg.Version)
	return cfg
}
