package textproc

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/kljensen/snowball"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Supported pipeline languages. The set is bounded by what the snowball
// stemmer implements; languages without a stemmer cannot produce lemmas
// and are rejected at construction time.
const (
	LanguageEnglish = "english"
	LanguageSpanish = "spanish"
)

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = LanguageEnglish

// ErrUnsupportedLanguage is returned by New for languages the stemmer
// does not implement.
var ErrUnsupportedLanguage = errors.New("unsupported pipeline language")

// languageTags maps pipeline languages to BCP 47 tags for case folding.
var languageTags = map[string]language.Tag{
	LanguageEnglish: language.English,
	LanguageSpanish: language.Spanish,
}

// Token is a lemma paired with its semantic vector. Tokens are ephemeral:
// the pipeline produces them per call and nothing retains them afterwards.
type Token struct {
	// Lemma is the normalized base form of the word.
	Lemma string

	// Vector is the token's hashed trigram embedding.
	Vector Vector
}

// Result is the output of processing one text span.
type Result struct {
	// Tokens is the ordered sequence of surviving tokens. Positions
	// reported by the relevance engine are indices into this sequence.
	Tokens []Token

	// Vector is the aggregate semantic vector of the whole span:
	// the normalized sum of all token vectors.
	Vector Vector
}

// Pipeline turns raw text into lemmatized tokens and semantic vectors.
// A Pipeline is immutable after construction and safe for concurrent use.
type Pipeline struct {
	// lang selects the stemmer and stopword set.
	lang string

	// tag is the BCP 47 tag used for Unicode case folding.
	tag language.Tag

	// stopwords is the language's stopword set.
	stopwords map[string]struct{}
}

// New creates a Pipeline for the given language.
// It returns ErrUnsupportedLanguage for languages without a stemmer.
func New(lang string) (*Pipeline, error) {
	tag, ok := languageTags[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}

	return &Pipeline{
		lang:      lang,
		tag:       tag,
		stopwords: stopwordsFor(lang),
	}, nil
}

// defaultPipeline lazily builds the shared default-language pipeline.
// The pipeline is read-only once built, so handing the same instance to
// every caller is safe.
var defaultPipeline = sync.OnceValue(func() *Pipeline {
	p, err := New(DefaultLanguage)
	if err != nil {
		// DefaultLanguage is always in languageTags.
		panic(err)
	}
	return p
})

// Default returns the process-wide pipeline for DefaultLanguage.
func Default() *Pipeline {
	return defaultPipeline()
}

// Language returns the pipeline's language.
func (p *Pipeline) Language() string {
	return p.lang
}

// Process runs the full pipeline over one text span and returns the
// surviving tokens plus the aggregate vector. An empty or all-stopword
// span yields a Result with no tokens and a zero vector.
func (p *Pipeline) Process(text string) Result {
	lowered := cases.Lower(p.tag).String(text)
	normalized := norm.NFC.String(lowered)

	// Tokenize on letter/number runs. Punctuation never forms a token,
	// which covers the "remove punctuation" stage for free.
	raw := strings.FieldsFunc(normalized, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	result := Result{Tokens: make([]Token, 0, len(raw))}
	for _, word := range raw {
		if _, stop := p.stopwords[word]; stop {
			continue
		}

		lemma := p.lemmatize(word)
		if lemma == "" {
			continue
		}

		token := Token{Lemma: lemma, Vector: tokenVector(lemma)}
		result.Tokens = append(result.Tokens, token)
		result.Vector.Add(token.Vector)
	}

	result.Vector = result.Vector.Normalize()
	return result
}

// lemmatize reduces a word to its base form via the snowball stemmer.
// Words the stemmer cannot handle are kept as-is; an exact-match scan over
// tokens is still meaningful for them.
func (p *Pipeline) lemmatize(word string) string {
	stemmed, err := snowball.Stem(word, p.lang, true)
	if err != nil {
		return word
	}
	return stemmed
}
