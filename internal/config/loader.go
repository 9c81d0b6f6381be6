package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".scrapesearch"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File mirrors the YAML configuration file layout. All fields are
// optional; absent values keep whatever the Config already holds.
type File struct {
	Database struct {
		// Type is the backend kind: sqlite or postgres.
		Type string `yaml:"type"`

		// Dir is the directory of the SQLite database file.
		Dir string `yaml:"dir"`

		// DSN is the PostgreSQL connection string.
		DSN string `yaml:"dsn"`
	} `yaml:"database"`

	Logging struct {
		// Level is the minimum level logged: debug, info, warn, error.
		Level string `yaml:"level"`

		// Handlers lists log destinations: console, file.
		Handlers []string `yaml:"handlers"`

		// Filename is the log file path for the file handler.
		Filename string `yaml:"filename"`
	} `yaml:"logging"`

	Crawler struct {
		// Depth is the default BFS hop distance (0-2).
		Depth *int `yaml:"depth"`

		// Concurrency is the fetch worker pool width.
		Concurrency int `yaml:"concurrency"`

		// Timeout is the per-request HTTP timeout, e.g. "10s".
		Timeout string `yaml:"timeout"`

		// UserAgent overrides the default User-Agent header.
		UserAgent string `yaml:"user_agent"`

		// MaxBodySize limits the response bytes read per page.
		MaxBodySize int64 `yaml:"max_body_size"`
	} `yaml:"crawler"`

	Scoring struct {
		// Language selects the stemmer and stopword set.
		Language string `yaml:"language"`

		// Top is how many ranked results reports show.
		Top int `yaml:"top"`

		// Weights are the composite score coefficients.
		Weights *Weights `yaml:"weights"`
	} `yaml:"scoring"`
}

// LoadConfigFile loads a YAML configuration file.
// If the file does not exist, it returns ErrConfigNotFound. Callers should
// handle this error based on whether the path was explicitly specified by
// the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file: %w", err)
	}
	return &f, nil
}

// FindConfigFile searches for the configuration file in the following order:
//  1. If configPath is specified, use it directly
//  2. Look for .scrapesearch in the current directory
//  3. Look for .scrapesearch in the user's home directory
//
// Returns the path if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		candidate := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return ""
}

// Apply merges the file's values into cfg. Only values the file actually
// sets are copied; the file never resets anything to a zero value.
func (f *File) Apply(cfg *Config) error {
	if f.Database.Type != "" {
		cfg.DBKind = f.Database.Type
	}
	if f.Database.Dir != "" {
		cfg.DBDir = f.Database.Dir
	}
	if f.Database.DSN != "" {
		cfg.DBDSN = f.Database.DSN
	}

	if f.Logging.Level != "" {
		cfg.LogLevel = f.Logging.Level
	}
	if len(f.Logging.Handlers) > 0 {
		cfg.LogHandlers = f.Logging.Handlers
	}
	if f.Logging.Filename != "" {
		cfg.LogFile = f.Logging.Filename
	}

	if f.Crawler.Depth != nil {
		cfg.Depth = *f.Crawler.Depth
	}
	if f.Crawler.Concurrency > 0 {
		cfg.Concurrency = f.Crawler.Concurrency
	}
	if f.Crawler.Timeout != "" {
		timeout, err := time.ParseDuration(f.Crawler.Timeout)
		if err != nil {
			return fmt.Errorf("invalid crawler timeout %q: %w", f.Crawler.Timeout, err)
		}
		cfg.Timeout = timeout
	}
	if f.Crawler.UserAgent != "" {
		cfg.UserAgent = f.Crawler.UserAgent
	}
	if f.Crawler.MaxBodySize > 0 {
		cfg.MaxBodySize = f.Crawler.MaxBodySize
	}

	if f.Scoring.Language != "" {
		cfg.Language = f.Scoring.Language
	}
	if f.Scoring.Top > 0 {
		cfg.TopResults = f.Scoring.Top
	}
	if f.Scoring.Weights != nil {
		cfg.Weights = *f.Scoring.Weights
	}

	return nil
}
