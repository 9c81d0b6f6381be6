package model

// Page represents one crawled web page: its canonical URL paired with the
// visible text content extracted from its HTML.
//
// Content is the empty string when the fetch failed or the page carried no
// visible text. Such a page still counts as discovered: its URL appears in
// crawl results, it just never contributes keyword matches and its links are
// never expanded.
type Page struct {
	// URL is the canonical (fragment-stripped, absolute, http/https) URL.
	URL string `json:"url"`

	// Content is the whitespace-normalized visible text of the page.
	Content string `json:"content,omitempty"`
}
