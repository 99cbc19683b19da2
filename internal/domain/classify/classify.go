// Package classify runs the scorer against every award category and picks
// the single best match plus a multi-label set.
package classify

import (
	"sort"

	"github.com/karium/laurel/internal/domain/model"
	"github.com/karium/laurel/internal/domain/scoring"
	"github.com/karium/laurel/internal/domain/taxonomy"
)

// DefaultMultiLabelThreshold is the minimum confidence for a category to be
// included in the multi-label result.
const DefaultMultiLabelThreshold = 0.2

// Option applies a configuration option to the Classifier.
type Option func(*Classifier)

// WithMultiLabelThreshold overrides the multi-label confidence floor.
func WithMultiLabelThreshold(t float64) Option {
	return func(c *Classifier) {
		if t > 0 && t <= 1 {
			c.multiLabelThreshold = t
		}
	}
}

// WithScorer replaces the default scorer.
func WithScorer(s *scoring.Scorer) Option {
	return func(c *Classifier) {
		if s != nil {
			c.scorer = s
		}
	}
}

// Classifier is a read-only query over the taxonomy: it never mutates
// readiness state.
type Classifier struct {
	tax                 *taxonomy.Taxonomy
	scorer              *scoring.Scorer
	multiLabelThreshold float64
}

// New creates a Classifier over the given taxonomy.
func New(tax *taxonomy.Taxonomy, opts ...Option) *Classifier {
	c := &Classifier{
		tax:                 tax,
		scorer:              scoring.New(),
		multiLabelThreshold: DefaultMultiLabelThreshold,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify scores normalized text against every category.
//
// The best match is the category with the strictly highest score; ties go to
// the category declared earlier in the taxonomy. When the maximum score is
// zero there is no best match. The multi-label list holds every category
// whose confidence clears the threshold, sorted by confidence descending
// with ties in taxonomy order.
func (c *Classifier) Classify(text string) model.ClassificationResult {
	cats := c.tax.Categories()
	result := model.ClassificationResult{
		Scores: make(map[string]model.CategoryScore, len(cats)),
		Labels: []model.Label{},
	}

	var best *taxonomy.Category
	var bestScore float64
	type labeled struct {
		order int
		label model.Label
	}
	var labels []labeled

	for i, cat := range cats {
		cs := c.scorer.Score(text, cat)
		result.Scores[cat.Key] = cs

		// Strict comparison keeps the first-declared category on ties.
		if cs.Score > bestScore {
			bestScore = cs.Score
			best = cat
			result.Confidence = cs.Confidence
		}

		if cs.Confidence >= c.multiLabelThreshold {
			labels = append(labels, labeled{
				order: i,
				label: model.Label{Key: cat.Key, Name: cat.Name, Confidence: cs.Confidence},
			})
		}
	}

	if best != nil {
		result.BestMatch = best.Key
		result.BestName = best.Name
	}

	sort.SliceStable(labels, func(i, j int) bool {
		if labels[i].label.Confidence != labels[j].label.Confidence {
			return labels[i].label.Confidence > labels[j].label.Confidence
		}
		return labels[i].order < labels[j].order
	})
	for _, l := range labels {
		result.Labels = append(result.Labels, l.label)
	}
	return result
}
