package crawler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/scrapesearch/scrapesearch/internal/model"
)

// DefaultTimeout is the per-request HTTP timeout used when no client is
// supplied. It is the only timeout in the crawl; there is no whole-crawl
// deadline beyond context cancellation.
const DefaultTimeout = 10 * time.Second

// Crawl errors. Both mean the BFS never started; every failure after the
// preflight degrades to empty page content instead of an error.
var (
	// ErrInvalidSeed is returned when the seed URL cannot be
	// canonicalized into an absolute http/https URL.
	ErrInvalidSeed = errors.New("invalid seed URL: must be absolute http or https")

	// ErrSeedUnreachable is returned when the seed preflight request
	// fails, so the crawl yields no pages at all.
	ErrSeedUnreachable = errors.New("seed URL is unreachable")
)

// Crawler discovers pages reachable from a seed URL within a bounded hop
// distance using level-synchronous BFS: the whole frontier of one depth is
// fetched in a single bounded-concurrency batch before the next frontier
// is built. Level boundaries are synchronization barriers, so there is no
// race between marking a URL visited and discovering it again within a
// level.
//
// A Crawler may be reused across crawls; each Crawl call owns its own
// visited state.
type Crawler struct {
	// fetcher fetches one frontier batch at a time.
	fetcher *Fetcher

	// logger records crawl progress.
	logger *slog.Logger
}

// Option configures a Crawler.
type Option func(*Crawler)

// WithCrawlerLogger sets a custom logger for the crawler and its fetcher.
func WithCrawlerLogger(logger *slog.Logger) Option {
	return func(c *Crawler) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithFetcher replaces the default fetcher. Useful for customizing pool
// width, user agent, or body limits via FetcherOptions.
func WithFetcher(f *Fetcher) Option {
	return func(c *Crawler) {
		if f != nil {
			c.fetcher = f
		}
	}
}

// New creates a Crawler using the given HTTP client for all requests.
// A nil client gets a default one with DefaultTimeout.
func New(client *http.Client, opts ...Option) *Crawler {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}

	c := &Crawler{
		fetcher: NewFetcher(client),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// frontierItem is one not-yet-fetched URL belonging to a BFS level.
type frontierItem struct {
	url   string
	depth int
}

// Crawl walks the link graph from seed up to the given depth and returns
// the discovered pages in first-visit order. Depth 0 crawls only the seed.
//
// The returned slice has exactly one entry per unique URL discovered. A
// page whose fetch failed keeps its URL with empty content and is never
// expanded. A URL reachable at two depths is recorded at its first (BFS
// shortest) distance.
//
// Before the BFS starts, a separate preflight request verifies the seed
// responds; if it does not, Crawl returns ErrSeedUnreachable and no pages.
func (c *Crawler) Crawl(ctx context.Context, seed string, depth int) ([]model.Page, error) {
	canonical, ok := Normalize(seed, nil)
	if !ok {
		return nil, ErrInvalidSeed
	}

	if err := c.fetcher.checkURL(ctx, canonical); err != nil {
		c.logger.Warn("seed preflight failed", "seed", canonical, "error", err)
		return nil, ErrSeedUnreachable
	}

	start := time.Now()

	// visited doubles as queue-membership test; order and content keep
	// the result accumulation separate so the two roles never alias.
	visited := make(map[string]bool)
	content := make(map[string]string)
	var order []string

	frontier := []frontierItem{{url: canonical, depth: 0}}
	for level := 0; len(frontier) > 0; level++ {
		// Partition the frontier into unseen URLs and mark them all
		// visited up front, so the same URL can never be enqueued
		// twice within or across levels.
		batch := frontier[:0:0]
		for _, item := range frontier {
			if visited[item.url] {
				continue
			}
			visited[item.url] = true
			order = append(order, item.url)
			content[item.url] = ""
			batch = append(batch, item)
		}
		if len(batch) == 0 {
			break
		}

		urls := make([]string, len(batch))
		for i, item := range batch {
			urls[i] = item.url
		}

		c.logger.Debug("fetching frontier",
			"level", level,
			"size", len(urls),
			"urls", describe(urls),
		)
		results := c.fetcher.FetchAll(ctx, urls)

		var next []frontierItem
		for _, item := range batch {
			result := results[item.url]
			content[item.url] = result.Text

			// Only pages below the depth bound with non-empty
			// content expand children.
			if item.depth >= depth || result.Text == "" {
				continue
			}
			for _, href := range result.Links {
				link, ok := Normalize(href, visited)
				if !ok {
					continue
				}
				next = append(next, frontierItem{url: link, depth: item.depth + 1})
			}
		}
		frontier = next

		// Context cancellation is honored at level boundaries; the
		// current batch always completes as a unit.
		select {
		case <-ctx.Done():
			frontier = nil
		default:
		}
	}

	pages := make([]model.Page, 0, len(order))
	for _, pageURL := range order {
		pages = append(pages, model.Page{URL: pageURL, Content: content[pageURL]})
	}

	c.logger.Info("crawl finished",
		"seed", canonical,
		"depth", depth,
		"pages", len(pages),
		"elapsed", time.Since(start),
	)
	return pages, nil
}
