package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrInvalidDepth is returned when the crawl depth is outside {0, 1, 2}.
	// Deeper crawls explode combinatorially and are deliberately unsupported.
	ErrInvalidDepth = errors.New("invalid depth: must be between 0 and 2")

	// ErrInvalidConcurrency is returned when the fetch pool width is not
	// positive. A width of zero would mean no fetches ever run.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrInvalidTimeout is returned when the HTTP timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidMaxBodySize is returned when the max body size is negative.
	// Use 0 to fall back to the default limit.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be non-negative")

	// ErrInvalidTopResults is returned when the result display limit is
	// not positive.
	ErrInvalidTopResults = errors.New("invalid top results: must be positive")

	// ErrUnsupportedDatabase is returned for database kinds other than
	// sqlite and postgres.
	ErrUnsupportedDatabase = errors.New("unsupported database type: supported types are sqlite, postgres")

	// ErrMissingDSN is returned when the postgres backend is selected
	// without a connection string.
	ErrMissingDSN = errors.New("postgres database requires a dsn")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
