// Package scoring computes evidence scores for one text against one award
// category. Scoring is a pure function: identical inputs always yield
// identical results.
package scoring

import (
	"math"

	"github.com/karium/laurel/internal/domain/model"
	"github.com/karium/laurel/internal/domain/taxonomy"
)

// Default scoring weights. Phrase matches count double a keyword match.
const (
	defaultKeywordWeight     = 1.0
	defaultPhraseWeight      = 2.0
	defaultConfidenceDivisor = 10.0
)

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithKeywordWeight overrides the per-occurrence keyword weight.
func WithKeywordWeight(w float64) Option {
	return func(s *Scorer) {
		if w > 0 {
			s.keywordWeight = w
		}
	}
}

// WithPhraseWeight overrides the per-occurrence phrase weight.
func WithPhraseWeight(w float64) Option {
	return func(s *Scorer) {
		if w > 0 {
			s.phraseWeight = w
		}
	}
}

// Scorer scores normalized text against award categories using the
// category's precompiled patterns.
type Scorer struct {
	keywordWeight     float64
	phraseWeight      float64
	confidenceDivisor float64
}

// New creates a Scorer with the default weights.
func New(opts ...Option) *Scorer {
	s := &Scorer{
		keywordWeight:     defaultKeywordWeight,
		phraseWeight:      defaultPhraseWeight,
		confidenceDivisor: defaultConfidenceDivisor,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score computes the raw score, confidence, and matched vocabulary for text
// against cat. Text must already be normalized. Keywords count whole-word
// occurrences; phrases count literal substring occurrences.
func (s *Scorer) Score(text string, cat *taxonomy.Category) model.CategoryScore {
	out := model.CategoryScore{Key: cat.Key}
	if text == "" {
		return out
	}

	for i, re := range cat.KeywordPatterns() {
		n := len(re.FindAllStringIndex(text, -1))
		if n > 0 {
			out.Score += float64(n) * s.keywordWeight
			out.MatchedKeywords = append(out.MatchedKeywords, cat.Keywords[i])
		}
	}
	for i, re := range cat.PhrasePatterns() {
		n := len(re.FindAllStringIndex(text, -1))
		if n > 0 {
			out.Score += float64(n) * s.keywordWeight * s.phraseWeight
			out.MatchedPhrases = append(out.MatchedPhrases, cat.Phrases[i])
		}
	}

	out.Confidence = math.Min(out.Score/s.confidenceDivisor, 1.0)
	return out
}
