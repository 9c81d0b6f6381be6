package log

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scrapesearch/scrapesearch/internal/config"
)

func TestMultiHandler(t *testing.T) {
	t.Parallel()

	t.Run("records reach every handler", func(t *testing.T) {
		t.Parallel()

		var a, b bytes.Buffer
		logger := slog.New(NewMultiHandler(
			slog.NewTextHandler(&a, nil),
			slog.NewJSONHandler(&b, nil),
		))

		logger.Info("fan out", "key", "value")

		if !strings.Contains(a.String(), "fan out") {
			t.Errorf("first handler missed the record: %q", a.String())
		}
		if !strings.Contains(b.String(), "fan out") {
			t.Errorf("second handler missed the record: %q", b.String())
		}
	})

	t.Run("per-handler levels are respected", func(t *testing.T) {
		t.Parallel()

		var quiet, chatty bytes.Buffer
		logger := slog.New(NewMultiHandler(
			slog.NewTextHandler(&quiet, &slog.HandlerOptions{Level: slog.LevelError}),
			slog.NewTextHandler(&chatty, &slog.HandlerOptions{Level: slog.LevelDebug}),
		))

		logger.Info("only for the chatty one")

		if quiet.Len() != 0 {
			t.Errorf("error-level handler received an info record: %q", quiet.String())
		}
		if !strings.Contains(chatty.String(), "only for the chatty one") {
			t.Errorf("debug-level handler missed the record: %q", chatty.String())
		}
	})

	t.Run("Enabled is the union of the handlers", func(t *testing.T) {
		t.Parallel()

		h := NewMultiHandler(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}),
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}),
		)

		if !h.Enabled(context.Background(), slog.LevelWarn) {
			t.Error("expected warn to be enabled")
		}
		if h.Enabled(context.Background(), slog.LevelInfo) {
			t.Error("expected info to be disabled")
		}
	})

	t.Run("WithAttrs propagates to all handlers", func(t *testing.T) {
		t.Parallel()

		var a, b bytes.Buffer
		logger := slog.New(NewMultiHandler(
			slog.NewTextHandler(&a, nil),
			slog.NewTextHandler(&b, nil),
		)).With("component", "crawler")

		logger.Info("tagged")

		for name, buf := range map[string]*bytes.Buffer{"first": &a, "second": &b} {
			if !strings.Contains(buf.String(), "component=crawler") {
				t.Errorf("%s handler lost the attribute: %q", name, buf.String())
			}
		}
	})

	t.Run("nil handlers are skipped", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(NewMultiHandler(nil, slog.NewTextHandler(&buf, nil)))
		logger.Info("survives nil")
		if !strings.Contains(buf.String(), "survives nil") {
			t.Errorf("record lost: %q", buf.String())
		}
	})
}

func TestSetup(t *testing.T) {
	t.Parallel()

	t.Run("console only", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		logger, closer, err := Setup(cfg)
		if err != nil {
			t.Fatalf("setup failed: %v", err)
		}
		defer closer() //nolint:errcheck

		if logger == nil {
			t.Fatal("expected a logger")
		}
		if logger.Enabled(context.Background(), slog.LevelDebug) {
			t.Error("debug should be disabled at the default level")
		}
	})

	t.Run("verbose forces debug", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		cfg.Verbose = true
		logger, closer, err := Setup(cfg)
		if err != nil {
			t.Fatalf("setup failed: %v", err)
		}
		defer closer() //nolint:errcheck

		if !logger.Enabled(context.Background(), slog.LevelDebug) {
			t.Error("verbose should enable debug")
		}
	})

	t.Run("file handler writes to the configured file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "logs", "scrapesearch.log")
		cfg := config.NewConfig()
		cfg.LogHandlers = []string{HandlerFile}
		cfg.LogFile = path

		logger, closer, err := Setup(cfg)
		if err != nil {
			t.Fatalf("setup failed: %v", err)
		}
		logger.Info("persisted")
		if err := closer(); err != nil {
			t.Fatalf("failed to close log file: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read log file: %v", err)
		}
		if !strings.Contains(string(data), "persisted") {
			t.Errorf("log file missing record: %q", string(data))
		}
	})

	t.Run("unknown handler is rejected", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		cfg.LogHandlers = []string{"syslog"}
		if _, _, err := Setup(cfg); err == nil {
			t.Fatal("expected an error for an unknown handler")
		}
	})

	t.Run("unknown level is rejected", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		cfg.LogLevel = "loud"
		if _, _, err := Setup(cfg); err == nil {
			t.Fatal("expected an error for an unknown level")
		}
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := parseLevel(tt.in)
		if err != nil {
			t.Errorf("parseLevel(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
