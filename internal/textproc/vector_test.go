package textproc

import (
	"math"
	"testing"
)

// TestTokenVector tests the hashed trigram embedding.
func TestTokenVector(t *testing.T) {
	t.Parallel()

	t.Run("non-empty lemma yields unit vector", func(t *testing.T) {
		t.Parallel()

		v := tokenVector("gato")
		if math.Abs(v.Norm()-1) > 1e-9 {
			t.Errorf("expected unit norm, got %g", v.Norm())
		}
	})

	t.Run("single letter lemma still embeds", func(t *testing.T) {
		t.Parallel()

		if tokenVector("x").IsZero() {
			t.Error("expected non-zero vector for single-letter lemma")
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()

		if tokenVector("gato") != tokenVector("gato") {
			t.Error("expected identical vectors for identical lemmas")
		}
	})
}

// TestCosine tests cosine similarity behavior.
func TestCosine(t *testing.T) {
	t.Parallel()

	t.Run("identical vectors score 1", func(t *testing.T) {
		t.Parallel()

		v := tokenVector("search")
		if got := Cosine(v, v); math.Abs(got-1) > 1e-9 {
			t.Errorf("expected cosine 1, got %g", got)
		}
	})

	t.Run("zero vector scores 0", func(t *testing.T) {
		t.Parallel()

		var zero Vector
		if got := Cosine(zero, tokenVector("search")); got != 0 {
			t.Errorf("expected cosine 0 against zero vector, got %g", got)
		}
	})

	t.Run("related forms score higher than unrelated words", func(t *testing.T) {
		t.Parallel()

		related := Cosine(tokenVector("search"), tokenVector("searching"))
		unrelated := Cosine(tokenVector("search"), tokenVector("banana"))
		if related <= unrelated {
			t.Errorf("expected related forms to score higher: related=%g unrelated=%g", related, unrelated)
		}
	})

	t.Run("result stays within [0, 1]", func(t *testing.T) {
		t.Parallel()

		words := []string{"gato", "cachorro", "search", "banana", "x"}
		for _, a := range words {
			for _, b := range words {
				got := Cosine(tokenVector(a), tokenVector(b))
				if got < 0 || got > 1+1e-9 {
					t.Errorf("cosine(%q, %q) = %g out of range", a, b, got)
				}
			}
		}
	})
}

// TestVectorNormalize tests normalization edge cases.
func TestVectorNormalize(t *testing.T) {
	t.Parallel()

	t.Run("zero vector stays zero", func(t *testing.T) {
		t.Parallel()

		var zero Vector
		if !zero.Normalize().IsZero() {
			t.Error("expected zero vector to stay zero after normalization")
		}
	})

	t.Run("accumulated vector normalizes to unit norm", func(t *testing.T) {
		t.Parallel()

		var v Vector
		v.Add(tokenVector("gato"))
		v.Add(tokenVector("cachorro"))
		if math.Abs(v.Normalize().Norm()-1) > 1e-9 {
			t.Errorf("expected unit norm, got %g", v.Normalize().Norm())
		}
	})
}
