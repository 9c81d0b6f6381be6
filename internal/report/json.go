package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/scrapesearch/scrapesearch/internal/model"
)

// JSONWriter outputs reports in JSON format.
// This format is designed for tool integration and programmatic processing.
//
// Design decision: We use standard encoding/json rather than a third-party
// JSON library because:
// 1. It's part of the standard library (no extra dependencies)
// 2. It's sufficient for our needs
// 3. It provides consistent behavior across Go versions
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithPrettyPrint enables pretty-printed JSON with two-space indentation.
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
	}
}

// WithJSONTop limits how many ranked results are emitted.
func WithJSONTop(top int) JSONWriterOption {
	return func(w *JSONWriter) {
		if top > 0 {
			w.top = top
		}
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output, DefaultTopResults),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the report in JSON format. The emitted report carries
// only the top results; the original report is not modified.
func (w *JSONWriter) Write(report *model.SearchReport) (int, error) {
	trimmed := *report
	trimmed.Results = w.topResults(report)

	var (
		data []byte
		err  error
	)
	if w.indent {
		data, err = json.MarshalIndent(&trimmed, "", "  ")
	} else {
		data, err = json.Marshal(&trimmed)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to serialize report: %w", err)
	}

	// Trailing newline for better terminal output.
	data = append(data, '\n')
	return w.output.Write(data)
}
