package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/scrapesearch/scrapesearch/internal/config"
)

// Handler names accepted in configuration.
const (
	// HandlerConsole writes human-readable text to stderr.
	HandlerConsole = "console"

	// HandlerFile writes JSON records to the configured log file.
	HandlerFile = "file"
)

// Setup builds the application logger from configuration. It returns the
// logger and a closer that releases the log file, if one was opened. The
// closer is never nil.
//
// Unknown handler names are an error; an empty handler list logs to the
// console. Verbose forces the debug level regardless of the configured one.
func Setup(cfg *config.Config) (*slog.Logger, func() error, error) {
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	noop := func() error { return nil }

	handlers := cfg.LogHandlers
	if len(handlers) == 0 {
		handlers = []string{HandlerConsole}
	}

	var (
		sinks  []slog.Handler
		closer = noop
	)
	for _, name := range handlers {
		switch name {
		case HandlerConsole:
			sinks = append(sinks, slog.NewTextHandler(os.Stderr, opts))
		case HandlerFile:
			f, err := openLogFile(cfg.LogFile)
			if err != nil {
				return nil, nil, err
			}
			sinks = append(sinks, slog.NewJSONHandler(f, opts))
			closer = f.Close
		default:
			return nil, nil, fmt.Errorf("unknown log handler %q: supported handlers are console, file", name)
		}
	}

	if len(sinks) == 1 {
		return slog.New(sinks[0]), closer, nil
	}
	return slog.New(NewMultiHandler(sinks...)), closer, nil
}

// NewLogger creates a text logger on the given writer. It is the plain
// variant used by tests and by code paths that run before configuration
// is loaded.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// parseLevel maps a configured level name to a slog.Level.
func parseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q: supported levels are debug, info, warn, error", name)
	}
}

// openLogFile opens the log file for appending, creating its directory
// when needed.
func openLogFile(path string) (*os.File, error) {
	if path == "" {
		return nil, fmt.Errorf("file log handler requires a log file path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600) //nolint:gosec // User-configured log path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}
