package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/scrapesearch/scrapesearch/internal/config"
	"github.com/scrapesearch/scrapesearch/internal/crawler"
	"github.com/scrapesearch/scrapesearch/internal/index"
	"github.com/scrapesearch/scrapesearch/internal/log"
	"github.com/scrapesearch/scrapesearch/internal/model"
	"github.com/scrapesearch/scrapesearch/internal/relevance"
	"github.com/scrapesearch/scrapesearch/internal/report"
	"github.com/scrapesearch/scrapesearch/internal/textproc"
)

// NewSearchCmd creates the search command.
func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [seed-url] [keyword] [keyword]",
		Short: "Crawl from a seed URL and rank pages by keyword relevance",
		Long: `Search crawls a website breadth-first from the seed URL and ranks every
discovered page by its relevance to the two keywords.

The query takes exactly two distinct single-word keywords. Each page is
scored by combining four signals: the semantic similarity between the
keywords and the page text, how often the keywords occur, how early their
first occurrences are, and how close together they appear.

Examples:
  # Rank pages reachable from the seed within one hop
  scrapesearch search https://example.com gopher burrow

  # Crawl two levels deep with a JSON report written to a file
  scrapesearch search -d 2 --json -o report.json https://example.com gopher burrow

  # Persist the analysis into the local index
  scrapesearch search --save https://example.com gopher burrow`,
		Args: cobra.ExactArgs(3),
		RunE: runSearchCmd,
	}

	// Crawl behavior flags
	cmd.Flags().IntP("depth", "d", config.DefaultDepth,
		fmt.Sprintf("Maximum crawl depth from the seed (0-%d)", config.MaxDepth))
	cmd.Flags().IntP("workers", "w", config.DefaultConcurrency,
		"Number of concurrent page fetches")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Connection timeout for each request")
	cmd.Flags().String("user-agent", "",
		"Override the User-Agent header sent with requests")

	// Scoring flags
	cmd.Flags().StringP("language", "l", config.DefaultLanguage,
		"Language of the crawled pages (english, spanish)")
	cmd.Flags().IntP("top", "n", config.DefaultTopResults,
		"Number of ranked results to show")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	// Persistence flags
	cmd.Flags().BoolP("save", "s", false,
		"Save the crawl index and ranked report to the database")
	cmd.Flags().String("db", "",
		"Database backend: sqlite or postgres (default sqlite)")
	cmd.Flags().String("db-dir", "",
		"Directory of the SQLite index (default: XDG data directory)")
	cmd.Flags().String("dsn", "",
		"PostgreSQL connection string (required with --db postgres)")

	return cmd
}

// runSearchCmd executes the search command.
func runSearchCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := applySearchFlags(cmd, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	seed, keywords, err := parseQueryArgs(args)
	if err != nil {
		return err
	}

	logger, closeLog, err := log.Setup(cfg)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck

	ctx, cancel := signalContext(logger)
	defer cancel()

	return runSearch(ctx, cfg, logger, seed, keywords)
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(logger *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()
	return ctx, cancel
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// getConfigFlag retrieves the config file path from the command or its parent.
func getConfigFlag(cmd *cobra.Command) string {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		path, err = cmd.Root().PersistentFlags().GetString("config")
		if err != nil {
			return ""
		}
	}
	return path
}

// buildConfig creates a Config from defaults, the optional configuration
// file, and the persistent flags. If the user explicitly specified a
// config file path, a missing file is an error; an absent default file
// is not.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	configPath := getConfigFlag(cmd)
	found := config.FindConfigFile(configPath)
	if found == "" && configPath != "" {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}
	if found != "" {
		file, err := config.LoadConfigFile(found)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", found, err)
		}
		if err := file.Apply(cfg); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", found, err)
		}
	}

	cfg.Verbose = getVerboseFlag(cmd)
	return cfg, nil
}

// applySearchFlags copies search flags onto the configuration. Only flags
// the user actually set override the config file.
func applySearchFlags(cmd *cobra.Command, cfg *config.Config) error {
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
	if flags.Changed("language") {
		if cfg.Language, err = flags.GetString("language"); err != nil {
			return err
		}
	}
	if flags.Changed("top") {
		if cfg.TopResults, err = flags.GetInt("top"); err != nil {
			return err
		}
	}
	if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
		return err
	}
	if cfg.MarkdownReport, err = flags.GetBool("markdown"); err != nil {
		return err
	}
	if cfg.ReportFile, err = flags.GetString("output"); err != nil {
		return err
	}
	if cfg.SaveToDB, err = flags.GetBool("save"); err != nil {
		return err
	}
	if flags.Changed("db") {
		if cfg.DBKind, err = flags.GetString("db"); err != nil {
			return err
		}
	}
	if flags.Changed("db-dir") {
		if cfg.DBDir, err = flags.GetString("db-dir"); err != nil {
			return err
		}
	}
	if flags.Changed("dsn") {
		if cfg.DBDSN, err = flags.GetString("dsn"); err != nil {
			return err
		}
	}
	return nil
}

// parseQueryArgs validates the positional arguments: a seed URL followed
// by exactly two distinct single-word keywords.
func parseQueryArgs(args []string) (seed string, keywords []string, err error) {
	seed = strings.TrimSpace(args[0])
	u, err := url.Parse(seed)
	if err != nil {
		return "", nil, fmt.Errorf("invalid seed URL %q: %w", seed, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", nil, fmt.Errorf("invalid seed URL %q: must be an absolute http or https URL", seed)
	}

	keywords = []string{strings.TrimSpace(args[1]), strings.TrimSpace(args[2])}
	for _, kw := range keywords {
		if kw == "" {
			return "", nil, errors.New("keywords must not be empty")
		}
		if strings.ContainsFunc(kw, func(r rune) bool { return r == ' ' || r == '\t' }) {
			return "", nil, fmt.Errorf("keyword %q must be a single word", kw)
		}
	}
	if strings.EqualFold(keywords[0], keywords[1]) {
		return "", nil, fmt.Errorf("keywords must be distinct: got %q twice", keywords[0])
	}
	return seed, keywords, nil
}

// runSearch executes the crawl, ranks the pages, renders the report, and
// optionally persists the result.
func runSearch(ctx context.Context, cfg *config.Config, logger *slog.Logger, seed string, keywords []string) error {
	query := strings.Join(keywords, " ")
	logger.Info("starting search",
		"seed", seed,
		"query", query,
		"depth", cfg.Depth,
		"workers", cfg.Concurrency,
		"saveToDB", cfg.SaveToDB,
	)

	pipeline, err := textproc.New(cfg.Language)
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: cfg.Timeout}
	fetcherOpts := []crawler.FetcherOption{
		crawler.WithConcurrency(cfg.Concurrency),
		crawler.WithFetcherLogger(logger),
	}
	if cfg.UserAgent != "" {
		fetcherOpts = append(fetcherOpts, crawler.WithUserAgent(cfg.UserAgent))
	}
	if cfg.MaxBodySize > 0 {
		fetcherOpts = append(fetcherOpts, crawler.WithMaxBodySize(cfg.MaxBodySize))
	}
	c := crawler.New(client,
		crawler.WithCrawlerLogger(logger),
		crawler.WithFetcher(crawler.NewFetcher(client, fetcherOpts...)),
	)

	started := time.Now()
	pages, err := c.Crawl(ctx, seed, cfg.Depth)
	if err != nil {
		return fmt.Errorf("crawl failed: %w", err)
	}

	engine := relevance.NewEngine(
		relevance.WithPipeline(pipeline),
		relevance.WithLogger(logger),
	)
	weights := relevance.ScoreWeights{
		Similarity: cfg.Weights.Similarity,
		Frequency:  cfg.Weights.Frequency,
		Position:   cfg.Weights.Position,
		Distance:   cfg.Weights.Distance,
	}
	results := engine.Rank(pages, query, weights)

	rpt := model.NewSearchReport(seed, cfg.Depth, query)
	rpt.Keywords = engine.Keywords(query)
	rpt.PagesCrawled = len(pages)
	rpt.StartedAt = started
	rpt.Elapsed = time.Since(started)
	rpt.Results = results

	if err := writeReport(cfg, rpt); err != nil {
		return err
	}

	if cfg.SaveToDB {
		idx, err := index.Open(cfg)
		if err != nil {
			return fmt.Errorf("failed to open index: %w", err)
		}
		defer idx.Close() //nolint:errcheck
		if err := idx.SaveSearchReport(ctx, rpt); err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
		logger.Info("report saved", "backend", cfg.DBKind)
	}
	return nil
}

// writeReport renders the report in the configured format to stdout or
// the configured file.
func writeReport(cfg *config.Config, rpt *model.SearchReport) error {
	out, closeOut, err := reportDestination(cfg.ReportFile)
	if err != nil {
		return err
	}
	defer closeOut() //nolint:errcheck

	var w report.Writer
	switch {
	case cfg.JSONReport:
		w = report.NewJSONWriter(out, report.WithPrettyPrint(), report.WithJSONTop(cfg.TopResults))
	case cfg.MarkdownReport:
		w = report.NewMarkdownWriter(out, report.WithMarkdownTop(cfg.TopResults))
	default:
		w = report.NewSimpleWriter(out, report.WithTop(cfg.TopResults), report.WithVerbose(cfg.Verbose))
	}
	if _, err := w.Write(rpt); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// reportDestination opens the report output: stdout by default, or the
// given file with parent directories created as needed.
func reportDestination(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create report directory: %w", err)
		}
	}
	f, err := os.Create(path) //nolint:gosec // User-provided report path is intentional
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create report file: %w", err)
	}
	return f, f.Close, nil
}
