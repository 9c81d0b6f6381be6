package relevance

import (
	"errors"
	"fmt"
	"math"
)

// weightSumTolerance is how far the weight sum may drift from 1 before the
// set is rejected. Matches the usual float64 accumulation noise.
const weightSumTolerance = 1e-9

// Weight validation errors returned by ScoreWeights.Validate.
var (
	// ErrWeightOutOfRange is returned when a weight falls outside [0, 1].
	ErrWeightOutOfRange = errors.New("score weight out of range: must be in [0, 1]")

	// ErrWeightSum is returned when the four weights do not sum to 1.
	ErrWeightSum = errors.New("score weights must sum to 1")
)

// ScoreWeights holds the four coefficients combined linearly into the final
// ranking score. A valid set has every weight in [0, 1] and a total of 1.
//
// Design decision: a typed struct instead of a map keyed by name. With a
// map, a missing key is a runtime surprise; named fields make "missing key"
// unrepresentable and leave only range and sum to validate.
type ScoreWeights struct {
	// Similarity weights the mean per-keyword cosine similarity.
	Similarity float64 `json:"similarity" yaml:"similarity"`

	// Frequency weights the total keyword occurrence count.
	Frequency float64 `json:"frequency" yaml:"frequency"`

	// Position weights how early the keywords first appear.
	Position float64 `json:"position" yaml:"position"`

	// Distance weights how close together the keywords first appear.
	Distance float64 `json:"distance" yaml:"distance"`
}

// DefaultScoreWeights returns the documented default weight set.
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		Similarity: 0.4,
		Frequency:  0.3,
		Position:   0.2,
		Distance:   0.1,
	}
}

// Validate checks that every weight is in [0, 1] and that the set sums to 1
// within weightSumTolerance.
func (w ScoreWeights) Validate() error {
	for _, v := range []float64{w.Similarity, w.Frequency, w.Position, w.Distance} {
		if v < 0 || v > 1 || math.IsNaN(v) {
			return fmt.Errorf("%w: got %g", ErrWeightOutOfRange, v)
		}
	}

	sum := w.Similarity + w.Frequency + w.Position + w.Distance
	if math.Abs(sum-1) > weightSumTolerance {
		return fmt.Errorf("%w: got %g", ErrWeightSum, sum)
	}
	return nil
}
