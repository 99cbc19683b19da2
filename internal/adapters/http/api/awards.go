// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/karium/laurel/internal/domain/model"
	"github.com/karium/laurel/internal/domain/taxonomy"
)

// AwardDependencies defines the interface for per-award status operations.
type AwardDependencies interface {
	Award(ctx context.Context, key string) (model.AwardStatus, error)
	Taxonomy() *taxonomy.Taxonomy
}

// AwardsHandler handles award category requests.
type AwardsHandler struct {
	deps AwardDependencies
}

// NewAwardsHandler creates a new awards handler.
func NewAwardsHandler(deps AwardDependencies) *AwardsHandler {
	return &AwardsHandler{deps: deps}
}

// awardCategory is the read shape for award category listings.
type awardCategory struct {
	Key       string   `json:"key"`
	Name      string   `json:"name"`
	Threshold int      `json:"threshold"`
	Criteria  []string `json:"criteria"`
}

// HandleListAwards handles GET /awards requests.
func (h *AwardsHandler) HandleListAwards(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	cats := h.deps.Taxonomy().Categories()
	out := make([]awardCategory, len(cats))
	for i, c := range cats {
		out[i] = awardCategory{
			Key:       c.Key,
			Name:      c.Name,
			Threshold: c.Threshold,
			Criteria:  c.Criteria,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleGetAward handles GET /awards/{key} requests.
func (h *AwardsHandler) HandleGetAward(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_award"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	// Extract path parameter after /awards/
	key := strings.TrimPrefix(r.URL.Path, "/awards/")
	if key == "" || strings.Contains(key, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	status, err := h.deps.Award(r.Context(), key)
	if err != nil {
		if errors.Is(err, taxonomy.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, status)
}
