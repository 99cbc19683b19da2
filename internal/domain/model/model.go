// Package model contains domain models passed between layers.
package model

// Kind distinguishes the two evidence item types.
type Kind string

// Valid item kinds.
const (
	KindDocument Kind = "document"
	KindEvent    Kind = "event"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k == KindDocument || k == KindEvent
}

// ContentItem is one submission to be classified. Text is already extracted
// plain text; Title is optional and concatenated with Text before
// normalization. ExternalID is a caller-supplied identifier for traceability.
type ContentItem struct {
	ExternalID string `json:"external_id,omitempty"`
	Kind       Kind   `json:"kind"`
	Text       string `json:"text"`
	Title      string `json:"title,omitempty"`
}

// CategoryScore is the scorer output for one item against one category.
type CategoryScore struct {
	Key             string   `json:"key"`
	Score           float64  `json:"score"`
	Confidence      float64  `json:"confidence"`
	MatchedKeywords []string `json:"matched_keywords,omitempty"`
	MatchedPhrases  []string `json:"matched_phrases,omitempty"`
}

// Label is one multi-label classification entry.
type Label struct {
	Key        string  `json:"key"`
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// ClassificationResult is the classifier output for one item.
// BestMatch is empty when the maximum score across all categories is zero.
type ClassificationResult struct {
	BestMatch  string                   `json:"best_match,omitempty"`
	BestName   string                   `json:"best_name,omitempty"`
	Confidence float64                  `json:"confidence"`
	Scores     map[string]CategoryScore `json:"scores"`
	Labels     []Label                  `json:"labels"`
}

// Counter tracks how many items of each kind were assigned to a category.
// Total is always Documents + Events.
type Counter struct {
	Documents int `json:"documents"`
	Events    int `json:"events"`
	Total     int `json:"total"`
}

// ReadinessRecord captures criteria coverage for one award category.
type ReadinessRecord struct {
	Ready               bool     `json:"ready"`
	SatisfiedCriteria   []string `json:"satisfied_criteria"`
	UnsatisfiedCriteria []string `json:"unsatisfied_criteria"`
	ReadinessPercentage float64  `json:"readiness_percentage"`
	TotalItems          int      `json:"total_items"`
	Threshold           int      `json:"threshold"`
}

// AwardStatus is the full per-category snapshot exposed to callers.
type AwardStatus struct {
	Key       string          `json:"key"`
	Name      string          `json:"name"`
	Counter   Counter         `json:"counter"`
	Readiness ReadinessRecord `json:"readiness"`
}

// ProcessResult is returned by the state-mutating Process entry point.
// Awards holds the updated snapshots for the categories the item was
// assigned to, in taxonomy order.
type ProcessResult struct {
	Classification ClassificationResult `json:"classification"`
	Assignments    []Label              `json:"assignments"`
	Awards         []AwardStatus        `json:"awards"`
}

// Recommendation priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
)

// Recommendation gap types.
const (
	GapQuantity = "quantity"
	GapCriteria = "criteria"
)

// Recommendation is one actionable gap for a not-ready category.
type Recommendation struct {
	Type       string `json:"type"`
	AwardKey   string `json:"award_key"`
	AwardName  string `json:"award_name"`
	Criterion  string `json:"criterion,omitempty"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
	Priority   string `json:"priority"`
}

// ReportSummary aggregates counters across all award categories.
type ReportSummary struct {
	TotalDocuments int `json:"total_documents"`
	TotalEvents    int `json:"total_events"`
	TotalItems     int `json:"total_items"`
	ReadyAwards    int `json:"ready_awards"`
	TotalAwards    int `json:"total_awards"`
}

// StatusReport is a consistent snapshot of the whole readiness state.
type StatusReport struct {
	Summary         ReportSummary    `json:"summary"`
	Awards          []AwardStatus    `json:"awards"`
	Recommendations []Recommendation `json:"recommendations"`
}
