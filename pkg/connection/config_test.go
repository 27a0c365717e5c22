package connection

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/notion-sdk/notion-go/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notion.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
base_url: https://notion.example.com/v1
token: secret_abc
version: "2025-09-03"
timeout: 5s
page_size: 50
log_level: warn
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://notion.example.com/v1", cfg.BaseURL)
	assert.Equal(t, "secret_abc", cfg.Token)
	assert.Equal(t, "2025-09-03", cfg.Version)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, 50, cfg.PageSize)
	assert.NotNil(t, cfg.Marshaler)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_defaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(writeConfig(t, "token: secret_abc\n"))
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, constants.DefaultAPIVersion, cfg.Version)
	assert.Equal(t, constants.DefaultHTTPTimeout, cfg.Timeout)
	assert.Equal(t, constants.DefaultPageSize, cfg.PageSize)
}

func TestLoadConfig_errors(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(writeConfig(t, "timeout: soon\n"))
	require.ErrorIs(t, err, constants.ErrMalformedInput)

	_, err = LoadConfig(writeConfig(t, "token: [unclosed\n"))
	require.ErrorIs(t, err, constants.ErrMalformedInput)

	_, err = LoadConfig(writeConfig(t, "log_level: loud\n"))
	require.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
