package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"
)

// Config is populated by viper from config.yaml, AURASPACES_* environment
// variables and defaults.
type Config struct {
	SiteTitle  string `mapstructure:"siteTitle"`
	OutputDir  string `mapstructure:"outputDir"`
	BaseURL    string `mapstructure:"baseURL"`
	ContentDir string `mapstructure:"contentDir"`
	LogLevel   string `mapstructure:"logLevel"`
}

// Defaults are registered with viper before any source is read.
var Defaults = map[string]any{
	"siteTitle":  "",
	"outputDir":  "public",
	"baseURL":    "https://auraspaces.example",
	"contentDir": "",
	"logLevel":   "info",
}

// Validate reports settings the build cannot work with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.OutputDir) == "" {
		return fmt.Errorf("outputDir must not be empty")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid baseURL %q: %w", c.BaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("baseURL %q must be an absolute http(s) URL", c.BaseURL)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLogLevel maps debug, info, warn and error to slog levels.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}
