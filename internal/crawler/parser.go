package crawler

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ParseResult holds everything extracted from one HTML page in a single
// parsing pass.
type ParseResult struct {
	// Text is the page's visible text: every text node outside
	// script/style elements, whitespace-normalized to single spaces.
	Text string

	// Links contains the raw href attribute of every anchor element,
	// in document order, before any normalization.
	Links []string
}

// skippedElements are elements whose text content is never visible and
// would only pollute keyword analysis.
var skippedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
}

// ParsePage parses HTML content and extracts visible text and anchor hrefs.
//
// Design decision: golang.org/x/net/html rather than regex because it
// correctly handles the malformed HTML common on the web and gives a
// proper DOM-like structure to walk.
func ParsePage(content io.Reader) (*ParseResult, error) {
	doc, err := html.Parse(content)
	if err != nil {
		return nil, err
	}

	result := &ParseResult{Links: make([]string, 0)}
	var text strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.ElementNode:
			if skippedElements[n.Data] {
				return
			}
			if n.Data == "a" {
				if href := getAttr(n, "href"); href != "" {
					result.Links = append(result.Links, href)
				}
			}
		case html.TextNode:
			text.WriteString(n.Data)
			text.WriteString(" ")
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	// Collapse all runs of whitespace to single spaces.
	result.Text = strings.Join(strings.Fields(text.String()), " ")
	return result, nil
}

// getAttr returns the value of the named attribute, or "" if absent.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
