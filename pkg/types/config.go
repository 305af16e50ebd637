// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// DefaultPageSize is the number of records per page when none is configured.
const DefaultPageSize = 20

// ErrInvalidConfig is wrapped by Config.Validate failures.
var ErrInvalidConfig = errors.New("invalid configuration")

// HTTPConfig holds settings for fetching a remote snapshot.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with the request
	// (e.g. "confrank/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`

	// Token is an optional bearer token for private snapshot URLs.
	Token string `json:"-" yaml:"-" mapstructure:"token"`
}

// LogConfig selects the slog level and handler format.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is text or json.
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// Config groups the settings of a confrank session.
type Config struct {
	// Source is a CSV file path, an http(s) URL, or a .db snapshot path.
	Source string `json:"source" yaml:"source" mapstructure:"source"`

	// PageSize is the fixed number of records per page.
	PageSize int `json:"page_size" yaml:"page_size" mapstructure:"page_size"`

	// Locale is the BCP 47 tag used to group numbers in text output.
	Locale string `json:"locale" yaml:"locale" mapstructure:"locale"`

	HTTP HTTPConfig `json:"http" yaml:"http" mapstructure:"http"`
	Log  LogConfig  `json:"log" yaml:"log" mapstructure:"log"`
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.Source) == "" {
		errs = append(errs, "source is required")
	}
	if c.PageSize <= 0 {
		errs = append(errs, fmt.Sprintf("page_size (%d) must be positive", c.PageSize))
	}
	if _, err := language.Parse(c.Locale); err != nil {
		errs = append(errs, fmt.Sprintf("locale (%q) is not a valid language tag", c.Locale))
	}
	if c.HTTP.Timeout < 0 {
		errs = append(errs, "http.timeout must be non-negative")
	}

	levels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !levels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, fmt.Sprintf("log.level (%q) must be one of: debug, info, warn, error", c.Log.Level))
	}
	formats := map[string]bool{"text": true, "json": true}
	if !formats[strings.ToLower(c.Log.Format)] {
		errs = append(errs, fmt.Sprintf("log.format (%q) must be one of: text, json", c.Log.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidConfig, strings.Join(errs, "\n  - "))
	}
	return nil
}
