// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/karium/laurel/internal/domain/model"
)

// ClassifyDependencies defines the interface for stateless classification.
type ClassifyDependencies interface {
	Classify(ctx context.Context, text, title string) model.ClassificationResult
}

// ClassifyHandler handles speculative classification requests.
type ClassifyHandler struct {
	deps         ClassifyDependencies
	maxTextBytes int
}

// NewClassifyHandler creates a new classify handler.
func NewClassifyHandler(deps ClassifyDependencies, maxTextBytes int) *ClassifyHandler {
	return &ClassifyHandler{deps: deps, maxTextBytes: maxTextBytes}
}

// classifyRequest mirrors the wire schema for POST /classify.
type classifyRequest struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// validate only caps the size. Empty text is a legal query and classifies
// to zero evidence everywhere.
func (c classifyRequest) validate(maxTextBytes int) error {
	if len(c.Text) > maxTextBytes {
		return errors.New("text exceeds maximum size")
	}
	return nil
}

// HandleClassify handles POST /classify requests. Classification here never
// touches readiness state, so repeated calls are safe.
func (h *ClassifyHandler) HandleClassify(w http.ResponseWriter, r *http.Request) {
	const op = "api.classify"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req classifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(h.maxTextBytes); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	result := h.deps.Classify(r.Context(), req.Text, req.Title)
	writeJSON(w, http.StatusOK, result)
}
