// Package readiness tracks per-category evidence counters and criteria
// coverage, and derives the ready state for each award category.
package readiness

import (
	"fmt"
	"sync"

	"github.com/karium/laurel/internal/domain/criteria"
	"github.com/karium/laurel/internal/domain/model"
	"github.com/karium/laurel/internal/domain/taxonomy"
)

// defaultReadyPercentage is the criteria-coverage floor for the ready flag.
const defaultReadyPercentage = 80.0

// Option applies a configuration option to the Aggregator.
type Option func(*Aggregator)

// WithReadyPercentage overrides the readiness percentage floor.
func WithReadyPercentage(p float64) Option {
	return func(a *Aggregator) {
		if p > 0 && p <= 100 {
			a.readyPercent = p
		}
	}
}

// storedItem is the minimal retained view of an assigned item: enough to
// re-evaluate every criterion on each recompute, nothing more.
type storedItem struct {
	kind model.Kind
	text string
}

// Aggregator owns one ReadinessRecord per award category. All methods are
// safe for concurrent use; Assign performs its read-recompute-write cycle
// under a single lock so concurrent assignments never interleave.
type Aggregator struct {
	mu           sync.RWMutex
	tax          *taxonomy.Taxonomy
	readyPercent float64
	items        map[string][]storedItem
	records      map[string]model.ReadinessRecord
}

// New creates an Aggregator with empty state for every category in tax.
func New(tax *taxonomy.Taxonomy, opts ...Option) *Aggregator {
	a := &Aggregator{
		tax:          tax,
		readyPercent: defaultReadyPercentage,
		items:        make(map[string][]storedItem, tax.Len()),
		records:      make(map[string]model.ReadinessRecord, tax.Len()),
	}
	for _, opt := range opts {
		opt(a)
	}
	for _, cat := range tax.Categories() {
		a.records[cat.Key] = a.recompute(cat)
	}
	return a
}

// Assign adds one item's evidence to every listed category and recomputes
// their records. It returns the updated snapshots in taxonomy order.
// Unknown keys return ErrNotFound without partial mutation.
func (a *Aggregator) Assign(keys []string, kind model.Kind, text string) ([]model.AwardStatus, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
	cats := make([]*taxonomy.Category, 0, len(keys))
	for _, key := range keys {
		cat, err := a.tax.Get(key)
		if err != nil {
			return nil, err
		}
		cats = append(cats, cat)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	assigned := make(map[string]bool, len(cats))
	for _, cat := range cats {
		a.items[cat.Key] = append(a.items[cat.Key], storedItem{kind: kind, text: text})
		a.records[cat.Key] = a.recompute(cat)
		assigned[cat.Key] = true
	}

	out := make([]model.AwardStatus, 0, len(cats))
	for _, cat := range a.tax.Categories() {
		if assigned[cat.Key] {
			out = append(out, a.status(cat))
		}
	}
	return out, nil
}

// Status returns the current snapshot for one category, or ErrNotFound.
func (a *Aggregator) Status(key string) (model.AwardStatus, error) {
	cat, err := a.tax.Get(key)
	if err != nil {
		return model.AwardStatus{}, err
	}
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.status(cat), nil
}

// Snapshot returns a consistent view of every category in taxonomy order.
func (a *Aggregator) Snapshot() []model.AwardStatus {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]model.AwardStatus, 0, a.tax.Len())
	for _, cat := range a.tax.Categories() {
		out = append(out, a.status(cat))
	}
	return out
}

// Reset clears all per-category state back to empty.
func (a *Aggregator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.items = make(map[string][]storedItem, a.tax.Len())
	a.records = make(map[string]model.ReadinessRecord, a.tax.Len())
	for _, cat := range a.tax.Categories() {
		a.records[cat.Key] = a.recompute(cat)
	}
}

// status builds the AwardStatus for cat. Caller must hold at least a read
// lock.
func (a *Aggregator) status(cat *taxonomy.Category) model.AwardStatus {
	return model.AwardStatus{
		Key:       cat.Key,
		Name:      cat.Name,
		Counter:   a.counter(cat.Key),
		Readiness: a.records[cat.Key],
	}
}

// counter derives the document/event/total counts from the retained items.
// Total is always recomputed, never independently tracked.
func (a *Aggregator) counter(key string) model.Counter {
	var c model.Counter
	for _, it := range a.items[key] {
		switch it.kind {
		case model.KindDocument:
			c.Documents++
		case model.KindEvent:
			c.Events++
		}
	}
	c.Total = c.Documents + c.Events
	return c
}

// recompute rebuilds the ReadinessRecord for cat from the full set of items
// ever assigned to it. A criterion is satisfied when any single retained
// text satisfies it. Caller must hold the write lock (or be in New).
func (a *Aggregator) recompute(cat *taxonomy.Category) model.ReadinessRecord {
	items := a.items[cat.Key]
	satisfied := make([]string, 0, len(cat.Criteria))
	unsatisfied := make([]string, 0, len(cat.Criteria))

	for _, criterion := range cat.Criteria {
		ok := false
		for _, it := range items {
			if criteria.Satisfied(it.text, criterion) {
				ok = true
				break
			}
		}
		if ok {
			satisfied = append(satisfied, criterion)
		} else {
			unsatisfied = append(unsatisfied, criterion)
		}
	}

	// A category with no criteria is 100% ready by vacuous truth.
	pct := 100.0
	if len(cat.Criteria) > 0 {
		pct = 100.0 * float64(len(satisfied)) / float64(len(cat.Criteria))
	}

	total := len(items)
	ready := total >= cat.Threshold && pct >= a.readyPercent
	// Ready is monotonic until Reset.
	if prev, ok := a.records[cat.Key]; ok && prev.Ready {
		ready = true
	}

	return model.ReadinessRecord{
		Ready:               ready,
		SatisfiedCriteria:   satisfied,
		UnsatisfiedCriteria: unsatisfied,
		ReadinessPercentage: pct,
		TotalItems:          total,
		Threshold:           cat.Threshold,
	}
}
