// Package crawler implements depth-bounded, level-synchronous BFS discovery
// of web pages reachable from a seed URL.
//
// # Architecture
//
//   - Crawler: orchestrates the BFS. Each iteration fetches one whole
//     frontier (all URLs at the current depth) before the next frontier is
//     built, so the number of fetch rounds is bounded by depth+1 regardless
//     of branching factor.
//   - Fetcher: fetches one batch of URLs over a bounded worker pool and
//     parses each response once into visible text plus raw anchor hrefs.
//   - Normalize: canonicalizes an anchor href into an absolute http/https
//     URL or rejects it.
//   - ParsePage: HTML parser that extracts visible text and anchor hrefs.
//
// # Failure semantics
//
// Nothing in this package is fatal past its own boundary. A per-URL fetch
// failure degrades that URL to empty content without touching sibling
// fetches; a malformed or disallowed link is silently filtered during
// extraction. The only error Crawl returns is for an unreachable or invalid
// seed, detected by a separate preflight request before the BFS starts.
//
// # Limitations
//
// Links are taken verbatim from href attributes: the crawler assumes pages
// carry absolute links and does not resolve relative ones. JavaScript is
// never executed and robots.txt is not consulted.
package crawler
