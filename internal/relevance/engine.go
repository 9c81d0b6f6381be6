package relevance

import (
	"log/slog"
	"sort"

	"github.com/scrapesearch/scrapesearch/internal/model"
	"github.com/scrapesearch/scrapesearch/internal/textproc"
)

// Engine analyzes and ranks crawled pages against a keyword query.
// An Engine is stateless between calls and safe for concurrent use as long
// as callers do not share the returned analyses.
type Engine struct {
	// pipeline processes documents and the keyword query identically,
	// so keyword lemmas and document lemmas always agree.
	pipeline *textproc.Pipeline

	// logger receives weight-validation warnings and progress logs.
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithPipeline sets the text pipeline used for documents and queries.
func WithPipeline(p *textproc.Pipeline) Option {
	return func(e *Engine) {
		if p != nil {
			e.pipeline = p
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an Engine. By default it uses the process-wide text
// pipeline and slog.Default().
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		pipeline: textproc.Default(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Keywords returns the surviving keyword lemmas of a query, in first-seen
// order with duplicates collapsed. A query of nothing but stopwords and
// punctuation yields an empty slice.
func (e *Engine) Keywords(query string) []string {
	tokens := e.queryTokens(query)
	lemmas := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		lemmas = append(lemmas, tok.Lemma)
	}
	return lemmas
}

// queryTokens processes the query as a mini-document and collapses
// duplicate lemmas to their first occurrence. Each surviving keyword keeps
// its own vector; sibling keywords are never averaged together.
func (e *Engine) queryTokens(query string) []textproc.Token {
	processed := e.pipeline.Process(query)

	seen := make(map[string]bool, len(processed.Tokens))
	tokens := make([]textproc.Token, 0, len(processed.Tokens))
	for _, tok := range processed.Tokens {
		if seen[tok.Lemma] {
			continue
		}
		seen[tok.Lemma] = true
		tokens = append(tokens, tok)
	}
	return tokens
}

// Analyze runs the analysis pass: one PageAnalysis per input page, in input
// order, with Score left at zero. Every surviving keyword gets a
// KeywordInfo entry even when it never occurs in the page.
//
// Similarity is the arithmetic mean of the per-keyword cosine similarities.
// When the query yields zero surviving keywords the mean is undefined; we
// report 0 rather than dividing by zero.
func (e *Engine) Analyze(pages []model.Page, query string) []*model.PageAnalysis {
	keywords := e.queryTokens(query)
	e.logger.Debug("analyzing documents",
		"documents", len(pages),
		"keywords", len(keywords),
	)

	analyses := make([]*model.PageAnalysis, 0, len(pages))
	for _, page := range pages {
		doc := e.pipeline.Process(page.Content)

		var similaritySum float64
		infos := make([]model.KeywordInfo, 0, len(keywords))
		for _, kw := range keywords {
			similaritySum += textproc.Cosine(kw.Vector, doc.Vector)

			var positions []int
			for idx, tok := range doc.Tokens {
				if tok.Lemma == kw.Lemma {
					positions = append(positions, idx)
				}
			}
			infos = append(infos, model.KeywordInfo{Word: kw.Lemma, Positions: positions})
		}

		var similarity float64
		if len(keywords) > 0 {
			similarity = similaritySum / float64(len(keywords))
		}

		analyses = append(analyses, &model.PageAnalysis{
			URL:        page.URL,
			Similarity: similarity,
			Keywords:   infos,
		})
	}

	return analyses
}

// Score runs the scoring pass over analyses in place and returns them
// sorted by score descending. The sort is stable: ties keep input order.
//
// An invalid weight set is logged and replaced by the defaults; scoring
// always proceeds.
func (e *Engine) Score(analyses []*model.PageAnalysis, weights ScoreWeights) []*model.PageAnalysis {
	if err := weights.Validate(); err != nil {
		e.logger.Warn("invalid score weights, using defaults", "error", err)
		weights = DefaultScoreWeights()
	}

	for _, analysis := range analyses {
		analysis.Score = e.score(analysis, weights)
	}

	sort.SliceStable(analyses, func(i, j int) bool {
		return analyses[i].Score > analyses[j].Score
	})
	return analyses
}

// score computes the composite score of one analysis.
func (e *Engine) score(analysis *model.PageAnalysis, weights ScoreWeights) float64 {
	firstOccurrences := make([]int, 0, len(analysis.Keywords))
	for _, kw := range analysis.Keywords {
		if first, ok := kw.FirstOccurrence(); ok {
			firstOccurrences = append(firstOccurrences, first)
		}
	}

	// No keyword occurs anywhere in the page: the page is irrelevant
	// regardless of vector similarity.
	if len(firstOccurrences) == 0 {
		return 0
	}

	sum, minFirst, maxFirst := firstOccurrences[0], firstOccurrences[0], firstOccurrences[0]
	for _, f := range firstOccurrences[1:] {
		sum += f
		if f < minFirst {
			minFirst = f
		}
		if f > maxFirst {
			maxFirst = f
		}
	}

	positionScore := 1 / (1 + float64(sum))

	var distanceScore float64
	if len(firstOccurrences) > 1 {
		distanceScore = 1 / (1 + float64(maxFirst-minFirst))
	}

	return weights.Similarity*analysis.Similarity +
		weights.Frequency*float64(analysis.Frequency()) +
		weights.Position*positionScore +
		weights.Distance*distanceScore
}

// Rank is the one-call form of Analyze followed by Score.
func (e *Engine) Rank(pages []model.Page, query string, weights ScoreWeights) []*model.PageAnalysis {
	return e.Score(e.Analyze(pages, query), weights)
}
