// Package recommend turns a not-ready award category into an ordered list
// of actionable gaps.
package recommend

import (
	"fmt"
	"strings"

	"github.com/karium/laurel/internal/domain/model"
)

// ForAward produces the recommendations for one category's current status.
// A quantity gap (high priority) comes first when the item count is below
// the category threshold, followed by one criteria gap (medium priority) per
// unsatisfied criterion in criteria order. A ready category yields nothing.
func ForAward(status model.AwardStatus) []model.Recommendation {
	if status.Readiness.Ready {
		return nil
	}

	var out []model.Recommendation

	if missing := status.Readiness.Threshold - status.Counter.Total; missing > 0 {
		out = append(out, model.Recommendation{
			Type:      model.GapQuantity,
			AwardKey:  status.Key,
			AwardName: status.Name,
			Message:   fmt.Sprintf("Need %d more document(s) or event(s) to meet minimum threshold", missing),
			Priority:  model.PriorityHigh,
		})
	}

	for _, criterion := range status.Readiness.UnsatisfiedCriteria {
		out = append(out, model.Recommendation{
			Type:       model.GapCriteria,
			AwardKey:   status.Key,
			AwardName:  status.Name,
			Criterion:  criterion,
			Message:    fmt.Sprintf("Missing content demonstrating: %s", criterion),
			Suggestion: Suggestion(criterion),
			Priority:   model.PriorityMedium,
		})
	}

	return out
}

// Suggestion returns the canned human-readable suggestion for a criterion,
// falling back to a generic templated sentence.
func Suggestion(criterion string) string {
	if s, ok := suggestions[criterion]; ok {
		return s
	}
	return fmt.Sprintf("Create content that demonstrates %s.", strings.ToLower(criterion))
}
