// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/job-finder/internal/session"
)

// Defaults applied when neither the config file nor environment sets a value.
const (
	DefaultTimeout  = 30 * time.Second
	DefaultDebounce = 300 * time.Millisecond
)

// Config is the CLI configuration. Values merge in order: defaults, JSON
// config file, environment variables. All fields are optional except BaseURL.
type Config struct {
	BaseURL     string `json:"base_url,omitempty"`     // API origin, e.g. https://jobs.example.com
	TimeoutSec  int    `json:"timeout_sec,omitempty"`  // HTTP request timeout in seconds
	DebounceMS  int    `json:"debounce_ms,omitempty"`  // Quiet period for the local filter, milliseconds
	SessionFile string `json:"session_file,omitempty"` // Where the login token is persisted
	Verbose     bool   `json:"verbose,omitempty"`      // Print diagnostic output
}

// Load builds the effective configuration. path may be empty, in which case
// only environment variables and defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		loaded, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if v := os.Getenv("JOBFINDER_API_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("JOBFINDER_SESSION_FILE"); v != "" {
		cfg.SessionFile = v
	}

	if cfg.SessionFile == "" {
		p, err := session.DefaultSessionPath()
		if err != nil {
			return nil, err
		}
		cfg.SessionFile = p
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("config error: API base URL is required (set JOBFINDER_API_URL or base_url)")
	}
	parsed, err := url.Parse(c.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config error: invalid base URL %q", c.BaseURL)
	}
	if c.TimeoutSec < 0 {
		return fmt.Errorf("config error: 'timeout_sec' must be non-negative")
	}
	if c.DebounceMS < 0 {
		return fmt.Errorf("config error: 'debounce_ms' must be non-negative")
	}
	return nil
}

// Timeout returns the HTTP timeout as a duration.
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSec <= 0 {
		return DefaultTimeout
	}
	return time.Duration(c.TimeoutSec) * time.Second
}

// Debounce returns the filter quiet period as a duration.
func (c *Config) Debounce() time.Duration {
	if c.DebounceMS <= 0 {
		return DefaultDebounce
	}
	return time.Duration(c.DebounceMS) * time.Millisecond
}
