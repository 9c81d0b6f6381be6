package model

import "time"

// KeywordInfo records where one keyword lemma occurs inside a page's token
// sequence. Positions are indices into the lemmatized token sequence, in
// ascending order (the order tokens were scanned).
//
// Design decision: the occurrence count is derived from Positions rather
// than stored as its own field. Storing both invites the two drifting apart;
// deriving it keeps the invariant count == len(positions) true by
// construction.
type KeywordInfo struct {
	// Word is the keyword lemma (normalized base form).
	Word string `json:"word"`

	// Positions holds every token index at which the lemma occurs.
	Positions []int `json:"positions"`
}

// Count returns the number of occurrences of the keyword.
func (k KeywordInfo) Count() int {
	return len(k.Positions)
}

// FirstOccurrence returns the smallest position and true, or 0 and false
// when the keyword does not occur at all.
func (k KeywordInfo) FirstOccurrence() (int, bool) {
	if len(k.Positions) == 0 {
		return 0, false
	}
	first := k.Positions[0]
	for _, p := range k.Positions[1:] {
		if p < first {
			first = p
		}
	}
	return first, true
}

// PageAnalysis holds the relevance analysis of a single page against the
// keyword query. It is produced by the relevance engine in two passes:
// the analysis pass fills everything except Score, the scoring pass fills
// Score and nothing else.
type PageAnalysis struct {
	// URL is the page the analysis belongs to.
	URL string `json:"url"`

	// Similarity is the arithmetic mean of the per-keyword cosine
	// similarities against the page's aggregate vector, in [0, 1].
	// It is 0 when the query yielded no surviving keywords.
	Similarity float64 `json:"similarity"`

	// Keywords holds one entry per surviving keyword lemma, including
	// lemmas that never occur in the page (empty Positions).
	Keywords []KeywordInfo `json:"keywords"`

	// Score is the weighted composite relevance score. Zero until the
	// scoring pass runs, and zero whenever no keyword occurs in the page.
	Score float64 `json:"score"`
}

// Frequency returns the total number of keyword occurrences in the page,
// summed across all keywords.
func (a *PageAnalysis) Frequency() int {
	var total int
	for _, kw := range a.Keywords {
		total += kw.Count()
	}
	return total
}

// SearchReport is the complete result of one search run. It is what the
// report writers render and what callers persist through the indexer.
type SearchReport struct {
	// Seed is the URL the crawl started from.
	Seed string `json:"seed"`

	// Depth is the requested maximum BFS hop distance (0-2).
	Depth int `json:"depth"`

	// Query is the raw keyword query string as entered by the user.
	Query string `json:"query"`

	// Keywords are the surviving keyword lemmas after text processing.
	Keywords []string `json:"keywords"`

	// PagesCrawled is the number of unique URLs discovered by the crawl.
	PagesCrawled int `json:"pages_crawled"`

	// StartedAt is when the search began.
	StartedAt time.Time `json:"started_at"`

	// Elapsed is the total wall-clock duration of crawl plus analysis.
	Elapsed time.Duration `json:"elapsed"`

	// Results holds the ranked page analyses, best first.
	Results []*PageAnalysis `json:"results"`
}

// NewSearchReport creates a SearchReport for the given seed and query with
// the start time set to now.
func NewSearchReport(seed string, depth int, query string) *SearchReport {
	return &SearchReport{
		Seed:      seed,
		Depth:     depth,
		Query:     query,
		StartedAt: time.Now(),
		Results:   make([]*PageAnalysis, 0),
	}
}
