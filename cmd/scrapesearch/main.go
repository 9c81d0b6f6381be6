// Package main provides the entry point for the ScrapeSearch CLI.
//
// ScrapeSearch crawls a website starting from a seed URL and ranks the
// discovered pages by their relevance to a keyword query.
//
// Usage:
//
//	scrapesearch search <seed-url> <keyword> <keyword>
//	scrapesearch crawl <seed-url>
//
// See --help for all available options.
package main

// main is the entry point for ScrapeSearch.
func main() {
	Execute()
}
