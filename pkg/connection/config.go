package connection

import (
	"fmt"
	"os"
	"time"

	"github.com/notion-sdk/notion-go/internal/codec"
	"github.com/notion-sdk/notion-go/pkg/constants"
	"github.com/notion-sdk/notion-go/pkg/encoding"
	"github.com/notion-sdk/notion-go/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config holds everything an HTTPConnection needs. Use NewConfig or
// LoadConfig so that defaults are filled in.
type Config struct {
	BaseURL     string
	Token       string
	Version     string
	Timeout     time.Duration
	PageSize    int
	Marshaler   codec.Marshaler
	Unmarshaler codec.Unmarshaler
	Logger      zerolog.Logger
	// Registerer receives the client metrics. Metrics are collected but not
	// registered when it is nil.
	Registerer prometheus.Registerer
}

// fileConfig is the YAML layout read by LoadConfig.
type fileConfig struct {
	BaseURL  string `yaml:"base_url"`
	Token    string `yaml:"token"`
	Version  string `yaml:"version"`
	Timeout  string `yaml:"timeout"`
	PageSize int    `yaml:"page_size"`
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// NewConfig returns a configuration for the public API, authenticated with
// an integration token.
func NewConfig(token string) *Config {
	c := encoding.Codec{Marshaler: encoding.JSONMarshaler{}, Unmarshaler: encoding.JSONUnmarshaler{}}
	return &Config{
		BaseURL:     constants.DefaultBaseURL,
		Token:       token,
		Version:     constants.DefaultAPIVersion,
		Timeout:     constants.DefaultHTTPTimeout,
		PageSize:    constants.DefaultPageSize,
		Marshaler:   c.Marshaler,
		Unmarshaler: c.Unmarshaler,
		Logger:      zerolog.Nop(),
	}
}

// LoadConfig reads a YAML file. Keys left out keep the NewConfig defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", constants.ErrMalformedInput, path, err)
	}

	cfg := NewConfig(fc.Token)
	if fc.BaseURL != "" {
		cfg.BaseURL = fc.BaseURL
	}
	if fc.Version != "" {
		cfg.Version = fc.Version
	}
	if fc.PageSize > 0 {
		cfg.PageSize = fc.PageSize
	}
	if fc.Timeout != "" {
		if cfg.Timeout, err = time.ParseDuration(fc.Timeout); err != nil {
			return nil, fmt.Errorf("%w: timeout: %v", constants.ErrMalformedInput, err)
		}
	}
	if fc.LogLevel != "" || fc.LogFile != "" {
		logData, err := logger.New().FromPath(fc.LogFile).WithLevel(fc.LogLevel).Make()
		if err != nil {
			return nil, err
		}
		cfg.Logger = logData.Logger
	}

	return cfg, nil
}

// Validate reports the first missing setting.
func (c *Config) Validate() error {
	switch {
	case c.Token == "":
		return constants.ErrNoToken
	case c.BaseURL == "":
		return constants.ErrNoBaseURL
	case c.Marshaler == nil || c.Unmarshaler == nil:
		return constants.ErrNoMarshaler
	}
	return nil
}
