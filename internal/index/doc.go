// Package index persists crawled pages, their vocabulary, and ranked
// search reports.
//
// The index keeps three relational tables: urls (every page seen), words
// (the lemmatized vocabulary), and word_locations (token positions of a
// word within a page). Search reports are stored whole as JSON for
// historical lookup.
//
// Two backends are supported behind the same Index type: SQLite via
// modernc.org/sqlite and PostgreSQL via lib/pq. SQLite is the default
// because the index is a single local file with no external dependencies,
// and the CGO-free driver keeps cross-compilation easy. PostgreSQL serves
// installs that share one index between machines. Queries are written once
// with ? placeholders and rewritten to $N for PostgreSQL.
package index
