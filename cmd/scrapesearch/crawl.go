package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/scrapesearch/scrapesearch/internal/config"
	"github.com/scrapesearch/scrapesearch/internal/crawler"
	"github.com/scrapesearch/scrapesearch/internal/log"
)

// NewCrawlCmd creates the crawl command.
func NewCrawlCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crawl [seed-url]",
		Short: "Crawl a website and list the discovered pages",
		Long: `Crawl walks a website breadth-first from the seed URL without any
relevance scoring and prints every discovered page URL in crawl order.

This is useful for checking what a search over the same seed would see.

Examples:
  # List pages within one hop of the seed
  scrapesearch crawl https://example.com

  # Crawl two levels deep with more workers
  scrapesearch crawl -d 2 -w 20 https://example.com`,
		Args: cobra.ExactArgs(1),
		RunE: runCrawlCmd,
	}

	cmd.Flags().IntP("depth", "d", config.DefaultDepth,
		fmt.Sprintf("Maximum crawl depth from the seed (0-%d)", config.MaxDepth))
	cmd.Flags().IntP("workers", "w", config.DefaultConcurrency,
		"Number of concurrent page fetches")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Connection timeout for each request")
	cmd.Flags().String("user-agent", "",
		"Override the User-Agent header sent with requests")

	return cmd
}

// runCrawlCmd executes the crawl command.
func runCrawlCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyCrawlFlags(cmd, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger, closeLog, err := log.Setup(cfg)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck

	ctx, cancel := signalContext(logger)
	defer cancel()

	client := &http.Client{Timeout: cfg.Timeout}
	fetcherOpts := []crawler.FetcherOption{
		crawler.WithConcurrency(cfg.Concurrency),
		crawler.WithFetcherLogger(logger),
	}
	if cfg.UserAgent != "" {
		fetcherOpts = append(fetcherOpts, crawler.WithUserAgent(cfg.UserAgent))
	}
	c := crawler.New(client,
		crawler.WithCrawlerLogger(logger),
		crawler.WithFetcher(crawler.NewFetcher(client, fetcherOpts...)),
	)

	started := time.Now()
	pages, err := c.Crawl(ctx, args[0], cfg.Depth)
	if err != nil {
		return fmt.Errorf("crawl failed: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, p := range pages {
		fmt.Fprintln(out, p.URL)
	}
	fmt.Fprintf(out, "\n%d page(s) in %s\n", len(pages), time.Since(started).Round(time.Millisecond))
	return nil
}

// applyCrawlFlags copies crawl flags onto the configuration. Only flags
// the user actually set override the config file.
func applyCrawlFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	var err error

	if flags.Changed("depth") {
		if cfg.Depth, err = flags.GetInt("depth"); err != nil {
			return err
		}
	}
	if flags.Changed("workers") {
		if cfg.Concurrency, err = flags.GetInt("workers"); err != nil {
			return err
		}
	}
	if flags.Changed("timeout") {
		if cfg.Timeout, err = flags.GetDuration("timeout"); err != nil {
			return err
		}
	}
	if flags.Changed("user-agent") {
		if cfg.UserAgent, err = flags.GetString("user-agent"); err != nil {
			return err
		}
	}
	return nil
}
