// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/karium/laurel/internal/domain/model"
	"github.com/karium/laurel/internal/domain/taxonomy"
)

// defaultMaxTextBytes caps accepted item text when no limit is configured.
const defaultMaxTextBytes = 1 << 20

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Idempotency operations over item IDs.
	SeenAndRecord(ctx context.Context, id string) bool
	Unrecord(ctx context.Context, id string)

	// Enqueue pushes an item for async processing. Returns false on backpressure.
	Enqueue(ctx context.Context, item model.ContentItem) bool

	// Classify scores text without mutating readiness state.
	Classify(ctx context.Context, text, title string) model.ClassificationResult

	// Read operations expose readiness data.
	StatusReport(ctx context.Context) model.StatusReport
	Award(ctx context.Context, key string) (model.AwardStatus, error)
	Taxonomy() *taxonomy.Taxonomy

	// Admin operations.
	Reset(ctx context.Context) error
	Reload(ctx context.Context) error

	// Stats returns operational counters.
	Stats() map[string]any
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	classifyHandler *ClassifyHandler
	itemsHandler    *ItemsHandler
	reportHandler   *ReportHandler
	awardsHandler   *AwardsHandler
	adminHandler    *AdminHandler
}

// NewServer creates a new API server with all handlers. maxTextBytes caps
// the accepted item text size; values < 1 fall back to the default.
func NewServer(deps Dependencies, maxTextBytes int) *Server {
	if maxTextBytes < 1 {
		maxTextBytes = defaultMaxTextBytes
	}
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(deps),
		classifyHandler: NewClassifyHandler(deps, maxTextBytes),
		itemsHandler:    NewItemsHandler(deps, maxTextBytes),
		reportHandler:   NewReportHandler(deps),
		awardsHandler:   NewAwardsHandler(deps),
		adminHandler:    NewAdminHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/classify", MetricsMiddleware(s.classifyHandler.HandleClassify, "classify"))
	mux.HandleFunc("/items", MetricsMiddleware(s.itemsHandler.HandlePostItem, "items"))
	mux.HandleFunc("/report", MetricsMiddleware(s.reportHandler.HandleGetReport, "report"))
	mux.HandleFunc("/awards", MetricsMiddleware(s.awardsHandler.HandleListAwards, "awards"))
	mux.HandleFunc("/awards/", MetricsMiddleware(s.awardsHandler.HandleGetAward, "award"))
	mux.HandleFunc("/reset", MetricsMiddleware(s.adminHandler.HandleReset, "reset"))
	mux.HandleFunc("/reload", MetricsMiddleware(s.adminHandler.HandleReload, "reload"))
}

// itemRequest mirrors the wire schema for POST /items.
type itemRequest struct {
	ExternalID string `json:"external_id"`
	Kind       string `json:"kind"`
	Title      string `json:"title"`
	Text       string `json:"text"`
}

// validate checks kind and size only. Empty text stays valid: an upstream
// extraction failure arrives as an item with no text and counts as zero
// evidence, not as an error.
func (i itemRequest) validate(maxTextBytes int) error {
	switch {
	case strings.TrimSpace(i.Kind) == "":
		return errors.New("missing kind")
	case !model.Kind(i.Kind).Valid():
		return errors.New("invalid kind; must be document or event")
	case len(i.Text) > maxTextBytes:
		return errors.New("text exceeds maximum size")
	}
	return nil
}

// itemID returns the client-supplied ID, or a content-derived one so that
// identical submissions without an ID are still deduplicated.
func (i itemRequest) itemID() string {
	if id := strings.TrimSpace(i.ExternalID); id != "" {
		return id
	}
	sum := sha256.Sum256([]byte(i.Kind + "\x00" + i.Title + "\x00" + i.Text))
	return hex.EncodeToString(sum[:])
}

type ackResponse struct {
	Status    string `json:"status"`
	ItemID    string `json:"item_id"`
	Duplicate bool   `json:"duplicate"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
