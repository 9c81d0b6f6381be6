package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/scrapesearch/scrapesearch/internal/model"
)

// elapsedPrecision is how finely elapsed times are rendered.
const elapsedPrecision = time.Millisecond

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// verbose enables per-keyword detail in the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output with per-keyword details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// WithTop limits how many ranked results are shown.
func WithTop(top int) SimpleWriterOption {
	return func(w *SimpleWriter) {
		if top > 0 {
			w.top = top
		}
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output, DefaultTopResults),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the report in human-readable format.
func (w *SimpleWriter) Write(report *model.SearchReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeResults(&sb, report)

	n, err := io.WriteString(w.output, sb.String())
	if err != nil {
		return n, fmt.Errorf("failed to write report: %w", err)
	}
	return n, nil
}

// writeHeader writes the search summary block.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.SearchReport) {
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString("ScrapeSearch Report\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	fmt.Fprintf(sb, "Seed URL:      %s\n", report.Seed)
	fmt.Fprintf(sb, "Query:         %s\n", report.Query)
	if len(report.Keywords) > 0 {
		fmt.Fprintf(sb, "Keywords:      %s\n", strings.Join(report.Keywords, ", "))
	}
	fmt.Fprintf(sb, "Depth:         %d\n", report.Depth)
	fmt.Fprintf(sb, "Pages crawled: %d\n", report.PagesCrawled)
	fmt.Fprintf(sb, "Elapsed:       %s\n", report.Elapsed.Round(elapsedPrecision))
	sb.WriteString("\n")
}

// writeResults writes the ranked result list.
func (w *SimpleWriter) writeResults(sb *strings.Builder, report *model.SearchReport) {
	results := w.topResults(report)
	if len(results) == 0 {
		sb.WriteString("No results.\n")
		return
	}

	fmt.Fprintf(sb, "Top %d result(s):\n\n", len(results))
	for i, r := range results {
		fmt.Fprintf(sb, "%2d. %s\n", i+1, r.URL)
		fmt.Fprintf(sb, "    score=%.4f similarity=%.4f frequency=%d\n",
			r.Score, r.Similarity, r.Frequency())
		if w.verbose {
			for _, kw := range r.Keywords {
				if first, ok := kw.FirstOccurrence(); ok {
					fmt.Fprintf(sb, "    keyword %q: count=%d first=%d\n", kw.Word, kw.Count(), first)
				} else {
					fmt.Fprintf(sb, "    keyword %q: not found\n", kw.Word)
				}
			}
		}
	}
}
