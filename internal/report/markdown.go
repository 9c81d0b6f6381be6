package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/scrapesearch/scrapesearch/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// MarkdownWriterOption configures a MarkdownWriter.
type MarkdownWriterOption func(*MarkdownWriter)

// WithMarkdownTop limits how many ranked results are rendered.
func WithMarkdownTop(top int) MarkdownWriterOption {
	return func(w *MarkdownWriter) {
		if top > 0 {
			w.top = top
		}
	}
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, opts ...MarkdownWriterOption) *MarkdownWriter {
	w := &MarkdownWriter{
		baseWriter: newBaseWriter(output, DefaultTopResults),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.SearchReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeResults(md, report)

	return len(md.String()), md.Build()
}

// writeHeader writes the search summary table.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.SearchReport) {
	md.H1("ScrapeSearch Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Seed URL", "`" + report.Seed + "`"},
			{"Query", report.Query},
			{"Keywords", strings.Join(report.Keywords, ", ")},
			{"Depth", strconv.Itoa(report.Depth)},
			{"Pages Crawled", strconv.Itoa(report.PagesCrawled)},
			{"Started", report.StartedAt.Format("2006-01-02 15:04:05 MST")},
			{"Elapsed", report.Elapsed.Round(elapsedPrecision).String()},
		},
	})
	md.PlainText("")
}

// writeResults writes the ranked result table with a row per page.
func (w *MarkdownWriter) writeResults(md *markdown.Markdown, report *model.SearchReport) {
	md.H2("Results")
	md.PlainText("")

	results := w.topResults(report)
	if len(results) == 0 {
		md.PlainText("No results.")
		return
	}

	rows := make([][]string, 0, len(results))
	for i, r := range results {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			r.URL,
			fmt.Sprintf("%.4f", r.Score),
			fmt.Sprintf("%.4f", r.Similarity),
			strconv.Itoa(r.Frequency()),
			w.keywordSummary(r),
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Rank", "URL", "Score", "Similarity", "Frequency", "Keywords"},
		Rows:   rows,
	})
}

// keywordSummary renders the per-keyword counts of a page as one cell.
func (w *MarkdownWriter) keywordSummary(analysis *model.PageAnalysis) string {
	parts := make([]string, 0, len(analysis.Keywords))
	for _, kw := range analysis.Keywords {
		parts = append(parts, fmt.Sprintf("%s: %d", kw.Word, kw.Count()))
	}
	return strings.Join(parts, ", ")
}
