// Package relevance ranks crawled pages against a keyword query.
//
// The engine works in two passes. The analysis pass runs the text pipeline
// over every document and over the query, measures per-keyword cosine
// similarity against each document's aggregate vector, and records every
// exact lemma match position. The scoring pass combines four signals into
// one composite score per page:
//
//   - similarity: mean per-keyword cosine similarity, in [0, 1]
//   - frequency:  total keyword occurrences (unbounded, not normalized)
//   - position:   1 / (1 + sum of first-occurrence indices)
//   - distance:   1 / (1 + spread between first occurrences), 0 unless at
//     least two keywords occur
//
// A page in which no keyword occurs always scores 0, whatever its
// similarity. Pages are sorted by score descending; ties keep the input
// order, which is the crawl's first-visit order.
//
// Weight validation never aborts a ranking: an invalid ScoreWeights value
// is logged as a warning and replaced by DefaultScoreWeights.
package relevance
