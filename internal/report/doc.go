// Package report renders ranked search results in several formats.
//
// Three writers share the Writer interface: SimpleWriter for terminal
// output, JSONWriter for tool integration, and MarkdownWriter for
// documentation and sharing. MultiWriter fans one report out to several
// destinations, typically the terminal and a file.
//
// Every writer shows at most a configurable number of top results; the
// full result list stays in the model.SearchReport for callers that
// persist it.
package report
