// Package model defines the core data structures used throughout ScrapeSearch.
//
// This package contains the following main types:
//   - Page: Represents a crawled web page (URL plus visible text)
//   - KeywordInfo: Occurrence positions of one keyword lemma in a page
//   - PageAnalysis: Per-page relevance analysis and final ranking score
//   - SearchReport: The complete result of one search run, fed to report writers
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (crawler, relevance, index, report) need to
// use these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output and
// database storage.
package model
