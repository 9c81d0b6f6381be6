package crawler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Fetcher defaults. Ten concurrent fetches saturate most small sites
// without looking like a flood; the body limit keeps a single huge page
// from exhausting memory.
const (
	// DefaultConcurrency is the width of the fetch worker pool.
	DefaultConcurrency = 10

	// DefaultMaxBodySize is the maximum response body size to read.
	DefaultMaxBodySize = 5 * 1024 * 1024 // 5MB

	// DefaultUserAgent identifies ScrapeSearch in HTTP requests.
	DefaultUserAgent = "ScrapeSearch/1.0 (+https://github.com/scrapesearch/scrapesearch)"
)

// FetchResult is what one URL yields after fetch and parse. The zero value
// represents a failed fetch: no text, no links.
type FetchResult struct {
	// Text is the page's whitespace-normalized visible text.
	// Empty on any fetch or HTTP error.
	Text string

	// Links holds the raw anchor hrefs found in the page, in document
	// order, before normalization.
	Links []string
}

// Fetcher performs one bounded-concurrency batch of HTTP GETs and parses
// each response once. A Fetcher is immutable after construction and safe
// for concurrent use.
type Fetcher struct {
	// client performs the HTTP requests. Its own timeout is the only
	// per-request timeout; there is no batch-level deadline.
	client *http.Client

	// concurrency bounds the number of in-flight fetches per batch.
	concurrency int

	// userAgent is sent with every request.
	userAgent string

	// maxBodySize limits how many response bytes are read per page.
	maxBodySize int64

	// logger records per-URL failures; they are never returned.
	logger *slog.Logger
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithConcurrency sets the worker pool width. Values below 1 are ignored.
func WithConcurrency(n int) FetcherOption {
	return func(f *Fetcher) {
		if n > 0 {
			f.concurrency = n
		}
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) FetcherOption {
	return func(f *Fetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// WithMaxBodySize sets the maximum response body size.
func WithMaxBodySize(size int64) FetcherOption {
	return func(f *Fetcher) {
		if size > 0 {
			f.maxBodySize = size
		}
	}
}

// WithFetcherLogger sets a custom logger.
func WithFetcherLogger(logger *slog.Logger) FetcherOption {
	return func(f *Fetcher) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// NewFetcher creates a Fetcher using the given HTTP client.
// A nil client falls back to http.DefaultClient.
func NewFetcher(client *http.Client, opts ...FetcherOption) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}

	f := &Fetcher{
		client:      client,
		concurrency: DefaultConcurrency,
		userAgent:   DefaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FetchAll fetches every URL in the batch over the bounded worker pool and
// returns exactly one entry per input URL. A failed fetch maps to the zero
// FetchResult; no URL is ever dropped. The batch completes once every
// submitted fetch has resolved; one slow or failing URL never aborts its
// siblings.
//
// Design decision: each worker writes to a distinct pre-allocated slot
// keyed by index, so the batch needs no shared mutable state and no locks.
func (f *Fetcher) FetchAll(ctx context.Context, urls []string) map[string]FetchResult {
	results := make([]FetchResult, len(urls))

	g := new(errgroup.Group)
	g.SetLimit(f.concurrency)
	for i, pageURL := range urls {
		g.Go(func() error {
			results[i] = f.fetch(ctx, pageURL)
			return nil
		})
	}
	// Workers never return errors; failures degrade to zero results.
	_ = g.Wait()

	out := make(map[string]FetchResult, len(urls))
	for i, pageURL := range urls {
		out[pageURL] = results[i]
	}
	return out
}

// fetch performs one GET and parses the response. Every failure mode is
// absorbed here: it logs and returns the zero FetchResult.
func (f *Fetcher) fetch(ctx context.Context, pageURL string) FetchResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		f.logger.Warn("failed to build request", "url", pageURL, "error", err)
		return FetchResult{}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Warn("fetch failed", "url", pageURL, "error", err)
		return FetchResult{}
	}
	defer resp.Body.Close() //nolint:errcheck // Read-only body close

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		f.logger.Warn("fetch returned non-2xx status",
			"url", pageURL,
			"status", resp.StatusCode,
		)
		return FetchResult{}
	}

	body := io.LimitReader(resp.Body, f.maxBodySize)
	parsed, err := ParsePage(body)
	if err != nil {
		f.logger.Warn("failed to parse page", "url", pageURL, "error", err)
		return FetchResult{}
	}

	return FetchResult{Text: parsed.Text, Links: parsed.Links}
}

// checkURL performs one unbatched GET and reports whether the URL answered
// with a 2xx status. Used by the crawler's seed preflight.
func (f *Fetcher) checkURL(ctx context.Context, pageURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck // Read-only body close

	// Drain so the connection can be reused by the batch that follows.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, f.maxBodySize))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}

// describe returns a compact description of a URL batch for debug logs.
func describe(urls []string) string {
	if len(urls) <= 3 {
		return strings.Join(urls, ", ")
	}
	return fmt.Sprintf("%s, ... (%d total)", strings.Join(urls[:3], ", "), len(urls))
}
