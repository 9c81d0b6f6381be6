package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values. The crawl-shape defaults mirror the
// behavior the crawler is designed around; the rest are safe, boring
// choices a user can override per run.
const (
	// DefaultDepth crawls the seed page plus one level of links.
	DefaultDepth = 1

	// MaxDepth is the largest accepted crawl depth. Link graphs branch
	// hard enough that depth 3 is already impractical to fetch politely.
	MaxDepth = 2

	// DefaultConcurrency is the fetch worker pool width per BFS level.
	DefaultConcurrency = 10

	// DefaultTimeout is the per-request HTTP timeout. It is the only
	// timeout in a crawl; levels have no deadline of their own.
	DefaultTimeout = 10 * time.Second

	// DefaultMaxBodySize limits the response bytes read per page.
	// 5MB is plenty for HTML while bounding memory per fetch.
	DefaultMaxBodySize = 5 * 1024 * 1024

	// DefaultTopResults is how many ranked results reports show.
	DefaultTopResults = 10

	// DefaultLanguage selects the stemmer and stopword set.
	DefaultLanguage = "english"

	// DefaultLogLevel is the slog level used when none is configured.
	DefaultLogLevel = "info"

	// AppName is the application name used for XDG directory paths.
	AppName = "scrapesearch"
)

// Database kinds accepted by the indexer.
const (
	// DBKindSQLite stores the index in a local SQLite file.
	DBKindSQLite = "sqlite"

	// DBKindPostgres stores the index in a PostgreSQL database.
	DBKindPostgres = "postgres"
)

// Weights carries the four score coefficients as configured. They are
// validated by the relevance engine at scoring time, not here: an invalid
// set degrades to the engine defaults with a warning instead of failing
// the run.
type Weights struct {
	Similarity float64 `yaml:"similarity"`
	Frequency  float64 `yaml:"frequency"`
	Position   float64 `yaml:"position"`
	Distance   float64 `yaml:"distance"`
}

// DefaultWeights returns the documented default score weights.
func DefaultWeights() Weights {
	return Weights{Similarity: 0.4, Frequency: 0.3, Position: 0.2, Distance: 0.1}
}

// Config holds all configuration options for ScrapeSearch.
// This struct is populated from defaults, an optional YAML file, and CLI
// flags, then passed through the application via dependency injection
// rather than global state.
type Config struct {
	// Depth is the maximum BFS hop distance from the seed (0-2).
	Depth int

	// Concurrency is the fetch worker pool width per BFS level.
	Concurrency int

	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration

	// UserAgent is the User-Agent header sent with HTTP requests.
	// Empty means the crawler's default.
	UserAgent string

	// MaxBodySize is the maximum response body size in bytes to read.
	// Set to 0 to use the default limit.
	MaxBodySize int64

	// Language selects the text pipeline's stemmer and stopword set.
	Language string

	// TopResults is how many ranked results the report writers show.
	TopResults int

	// Weights are the composite score coefficients.
	Weights Weights

	// DBKind selects the persistence backend: sqlite or postgres.
	DBKind string

	// DBDir is the directory holding the SQLite database file.
	// Defaults to the XDG data directory.
	DBDir string

	// DBDSN is the PostgreSQL connection string. Required when DBKind
	// is postgres, ignored otherwise.
	DBDSN string

	// SaveToDB indicates whether ranked analyses are persisted through
	// the indexer after a search.
	SaveToDB bool

	// Verbose enables slog.LevelDebug output regardless of LogLevel.
	Verbose bool

	// LogLevel is the minimum level logged: debug, info, warn, error.
	LogLevel string

	// LogHandlers lists log destinations: console, file.
	LogHandlers []string

	// LogFile is the log file path used by the file handler.
	LogFile string

	// JSONReport selects JSON report output.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport selects Markdown report output.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile, when set, writes the report there instead of stdout.
	ReportFile string
}

// NewConfig creates a Config with default values. Many defaults are
// non-zero, so relying on zero values would be wrong; this constructor
// also documents what the defaults are.
func NewConfig() *Config {
	return &Config{
		Depth:       DefaultDepth,
		Concurrency: DefaultConcurrency,
		Timeout:     DefaultTimeout,
		MaxBodySize: DefaultMaxBodySize,
		Language:    DefaultLanguage,
		TopResults:  DefaultTopResults,
		Weights:     DefaultWeights(),
		DBKind:      DBKindSQLite,
		DBDir:       filepath.Join(xdg.DataHome, AppName),
		LogLevel:    DefaultLogLevel,
		LogHandlers: []string{"console"},
		LogFile:     filepath.Join(xdg.StateHome, AppName, "scrapesearch.log"),
	}
}

// Validate checks the configuration for values that would make a run
// meaningless. It returns the first problem found as a sentinel error.
func (c *Config) Validate() error {
	if c.Depth < 0 || c.Depth > MaxDepth {
		return ErrInvalidDepth
	}
	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}
	if c.TopResults <= 0 {
		return ErrInvalidTopResults
	}
	if c.DBKind != DBKindSQLite && c.DBKind != DBKindPostgres {
		return ErrUnsupportedDatabase
	}
	if c.DBKind == DBKindPostgres && c.DBDSN == "" {
		return ErrMissingDSN
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	return nil
}
