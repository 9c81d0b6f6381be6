package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for ScrapeSearch.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrapesearch",
		Short: "Crawl a website and rank pages by keyword relevance",
		Long: `ScrapeSearch crawls a website breadth-first from a seed URL and ranks
every discovered page by its relevance to a two-keyword query.

Relevance combines the semantic similarity between the keywords and the
page text with how often, how early, and how close together the keywords
occur on the page.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .scrapesearch in current or home directory)")

	// Add subcommands
	cmd.AddCommand(NewSearchCmd())
	cmd.AddCommand(NewCrawlCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
