package relevance

import (
	"errors"
	"testing"
)

// TestScoreWeightsValidate tests weight set validation.
func TestScoreWeightsValidate(t *testing.T) {
	t.Parallel()

	t.Run("defaults are valid", func(t *testing.T) {
		t.Parallel()

		if err := DefaultScoreWeights().Validate(); err != nil {
			t.Errorf("expected default weights to validate, got %v", err)
		}
	})

	t.Run("custom valid set", func(t *testing.T) {
		t.Parallel()

		w := ScoreWeights{Similarity: 0.25, Frequency: 0.25, Position: 0.25, Distance: 0.25}
		if err := w.Validate(); err != nil {
			t.Errorf("expected valid weights, got %v", err)
		}
	})

	t.Run("rejects weight above 1", func(t *testing.T) {
		t.Parallel()

		w := ScoreWeights{Similarity: 1.5, Frequency: -0.5, Position: 0, Distance: 0}
		if err := w.Validate(); !errors.Is(err, ErrWeightOutOfRange) {
			t.Errorf("expected ErrWeightOutOfRange, got %v", err)
		}
	})

	t.Run("rejects negative weight", func(t *testing.T) {
		t.Parallel()

		w := ScoreWeights{Similarity: -0.1, Frequency: 0.5, Position: 0.3, Distance: 0.3}
		if err := w.Validate(); !errors.Is(err, ErrWeightOutOfRange) {
			t.Errorf("expected ErrWeightOutOfRange, got %v", err)
		}
	})

	t.Run("rejects sum below 1", func(t *testing.T) {
		t.Parallel()

		w := ScoreWeights{Similarity: 0.4, Frequency: 0.3, Position: 0.1, Distance: 0.1}
		if err := w.Validate(); !errors.Is(err, ErrWeightSum) {
			t.Errorf("expected ErrWeightSum, got %v", err)
		}
	})

	t.Run("accepts tiny float drift", func(t *testing.T) {
		t.Parallel()

		w := ScoreWeights{Similarity: 0.1, Frequency: 0.2, Position: 0.3, Distance: 0.4}
		if err := w.Validate(); err != nil {
			t.Errorf("expected weights summing to 1 to validate, got %v", err)
		}
	})
}
