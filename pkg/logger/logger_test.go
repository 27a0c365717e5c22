package logger_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/notion-sdk/notion-go/pkg/logger"
	"github.com/stretchr/testify/require"
)

func TestLog(t *testing.T) {
	buff := bytes.NewBuffer([]byte{})
	templogger, err := logger.New().FromBuffer(buff).Make()
	require.NoError(t, err)
	require.NotNil(t, templogger)
	require.NotNil(t, templogger.Logger)
	// Get Stats Before
	require.Equal(t, buff.Len(), 0)
	templogger.Logger.Info().Msg("Test")
	// Get Stats After
	require.Contains(t, buff.String(), "Test")
	require.NoError(t, templogger.Close())
}

func TestLogLevel(t *testing.T) {
	buff := bytes.NewBuffer([]byte{})
	templogger, err := logger.New().FromBuffer(buff).WithLevel("warn").Make()
	require.NoError(t, err)

	templogger.Logger.Info().Msg("hidden")
	require.Equal(t, 0, buff.Len())
	templogger.Logger.Warn().Msg("shown")
	require.Contains(t, buff.String(), `"level":"warn"`)

	_, err = logger.New().FromBuffer(buff).WithLevel("loud").Make()
	require.Error(t, err)
}

func TestLogConsole(t *testing.T) {
	buff := bytes.NewBuffer([]byte{})
	templogger, err := logger.New().FromBuffer(buff).Console(true).Make()
	require.NoError(t, err)

	templogger.Logger.Info().Str("block", "quote").Msg("fetched")
	require.Contains(t, buff.String(), "fetched")
	require.NotContains(t, buff.String(), `"message"`)
}

func TestLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notion.log")
	templogger, err := logger.New().FromPath(path).Make()
	require.NoError(t, err)

	templogger.Logger.Info().Msg("to file")
	require.NoError(t, templogger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "to file")
}
