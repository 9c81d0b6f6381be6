package textproc

import (
	"errors"
	"math"
	"testing"
)

// TestNew tests pipeline construction.
func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("supported language", func(t *testing.T) {
		t.Parallel()

		p, err := New(LanguageEnglish)
		if err != nil {
			t.Fatalf("failed to create pipeline: %v", err)
		}
		if p.Language() != LanguageEnglish {
			t.Errorf("expected language %q, got %q", LanguageEnglish, p.Language())
		}
	})

	t.Run("unsupported language", func(t *testing.T) {
		t.Parallel()

		if _, err := New("klingon"); !errors.Is(err, ErrUnsupportedLanguage) {
			t.Errorf("expected ErrUnsupportedLanguage, got %v", err)
		}
	})
}

// TestDefault tests that the shared pipeline is a singleton.
func TestDefault(t *testing.T) {
	t.Parallel()

	if Default() != Default() {
		t.Error("expected Default to return the same pipeline instance")
	}
	if Default().Language() != DefaultLanguage {
		t.Errorf("expected default language %q, got %q", DefaultLanguage, Default().Language())
	}
}

// TestProcess tests the full pipeline over small text spans.
func TestProcess(t *testing.T) {
	t.Parallel()

	t.Run("lowercases before lemmatizing", func(t *testing.T) {
		t.Parallel()

		p := Default()
		upper := p.Process("RUNNING")
		lower := p.Process("running")

		if len(upper.Tokens) != 1 || len(lower.Tokens) != 1 {
			t.Fatalf("expected one token each, got %d and %d", len(upper.Tokens), len(lower.Tokens))
		}
		if upper.Tokens[0].Lemma != lower.Tokens[0].Lemma {
			t.Errorf("expected identical lemmas, got %q and %q", upper.Tokens[0].Lemma, lower.Tokens[0].Lemma)
		}
	})

	t.Run("drops stopwords", func(t *testing.T) {
		t.Parallel()

		result := Default().Process("the cat and the dog")
		if len(result.Tokens) != 2 {
			t.Fatalf("expected 2 tokens, got %d: %v", len(result.Tokens), result.Tokens)
		}
		if result.Tokens[0].Lemma != "cat" {
			t.Errorf("expected first lemma %q, got %q", "cat", result.Tokens[0].Lemma)
		}
		if result.Tokens[1].Lemma != "dog" {
			t.Errorf("expected second lemma %q, got %q", "dog", result.Tokens[1].Lemma)
		}
	})

	t.Run("drops punctuation", func(t *testing.T) {
		t.Parallel()

		result := Default().Process("cat, dog!! ... ; :")
		if len(result.Tokens) != 2 {
			t.Errorf("expected 2 tokens, got %d: %v", len(result.Tokens), result.Tokens)
		}
	})

	t.Run("lemmatizes inflected forms", func(t *testing.T) {
		t.Parallel()

		a := Default().Process("running")
		b := Default().Process("runs")
		if len(a.Tokens) != 1 || len(b.Tokens) != 1 {
			t.Fatalf("expected one token each, got %d and %d", len(a.Tokens), len(b.Tokens))
		}
		if a.Tokens[0].Lemma != b.Tokens[0].Lemma {
			t.Errorf("expected same lemma for inflections, got %q and %q", a.Tokens[0].Lemma, b.Tokens[0].Lemma)
		}
	})

	t.Run("empty text yields no tokens and zero vector", func(t *testing.T) {
		t.Parallel()

		result := Default().Process("   \n\t ")
		if len(result.Tokens) != 0 {
			t.Errorf("expected no tokens, got %d", len(result.Tokens))
		}
		if !result.Vector.IsZero() {
			t.Error("expected zero aggregate vector for empty text")
		}
	})

	t.Run("all-stopword text yields no tokens", func(t *testing.T) {
		t.Parallel()

		result := Default().Process("the and of to")
		if len(result.Tokens) != 0 {
			t.Errorf("expected no tokens, got %d: %v", len(result.Tokens), result.Tokens)
		}
	})

	t.Run("aggregate vector has unit norm", func(t *testing.T) {
		t.Parallel()

		result := Default().Process("search engines index pages")
		if math.Abs(result.Vector.Norm()-1) > 1e-9 {
			t.Errorf("expected unit norm aggregate, got %g", result.Vector.Norm())
		}
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		t.Parallel()

		a := Default().Process("search engines index pages")
		b := Default().Process("search engines index pages")
		if a.Vector != b.Vector {
			t.Error("expected identical aggregate vectors for identical input")
		}
	})
}

// TestProcessSpanish tests that the Spanish pipeline applies its own
// stopword set.
func TestProcessSpanish(t *testing.T) {
	t.Parallel()

	p, err := New(LanguageSpanish)
	if err != nil {
		t.Fatalf("failed to create pipeline: %v", err)
	}

	result := p.Process("el gato y el perro")
	if len(result.Tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d: %v", len(result.Tokens), result.Tokens)
	}
}
