// Package textproc implements the linguistic pipeline that turns raw text
// into a normalized token sequence and semantic vectors.
//
// The pipeline applies a fixed sequence of stages:
//
//	lowercase -> tokenize -> drop stopwords/punctuation -> lemmatize -> vectorize
//
// The same pipeline processes both full document content and keyword query
// strings, so a keyword and its occurrences in a document always normalize
// to the same lemma.
//
// # Semantic vectors
//
// Tokens are embedded as fixed-dimension hashed character-trigram vectors.
// Each trigram of the padded lemma is hashed into one of VectorDim buckets
// and the resulting count vector is L2-normalized. A document's aggregate
// vector is the normalized sum of its token vectors. The embedding is fully
// deterministic and needs no model files, while still giving related word
// forms a high cosine similarity.
//
// # Shared pipeline
//
// Building a pipeline is cheap, but callers that process many texts should
// reuse one instance. Default returns a process-wide pipeline that is
// lazily initialized once and read-only afterwards, so it is safe to share
// across goroutines.
package textproc
