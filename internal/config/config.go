// Package config loads client configuration from FORMFLOW_* environment
// variables and an optional formflow.yaml using Viper.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides (FORMFLOW_API_URL, ...).
const EnvPrefix = "FORMFLOW"

// Config holds client configuration.
type Config struct {
	// APIURL is the booking API base URL.
	APIURL string `mapstructure:"api_url"`
	// SessionFile is where the signed-in session is persisted.
	SessionFile string `mapstructure:"session_file"`
	// HTTPTimeout bounds every API request (e.g. "15s").
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
	// LogFormat is "text" or "json".
	LogFormat string `mapstructure:"log_format"`
}

// Load reads formflow.yaml from the working directory or the user config
// directory when present, then applies environment overrides. path, when
// non-empty, names the config file explicitly and must exist.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("api_url", "http://localhost:3333")
	v.SetDefault("session_file", defaultSessionFile())
	v.SetDefault("http_timeout", "15s")
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "text")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else {
		v.SetConfigName("formflow")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "formflow"))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks required values.
func (c *Config) Validate() error {
	u, err := url.Parse(strings.TrimSpace(c.APIURL))
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("config: api_url must be an absolute URL, got %q", c.APIURL)
	}
	if strings.TrimSpace(c.SessionFile) == "" {
		return errors.New("config: session_file must be set")
	}
	if c.HTTPTimeout <= 0 {
		return errors.New("config: http_timeout must be positive")
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("config: log_format must be text or json, got %q", c.LogFormat)
	}
	return nil
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".formflow", "session.json")
	}
	return filepath.Join(dir, "formflow", "session.json")
}
