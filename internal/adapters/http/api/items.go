// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/karium/laurel/internal/domain/model"
)

// ItemDependencies defines the interface for item ingestion dependencies.
type ItemDependencies interface {
	SeenAndRecord(ctx context.Context, id string) bool
	Unrecord(ctx context.Context, id string)
	Enqueue(ctx context.Context, item model.ContentItem) bool
}

// ItemsHandler handles item submission requests.
type ItemsHandler struct {
	deps         ItemDependencies
	maxTextBytes int
}

// NewItemsHandler creates a new items handler.
func NewItemsHandler(deps ItemDependencies, maxTextBytes int) *ItemsHandler {
	return &ItemsHandler{deps: deps, maxTextBytes: maxTextBytes}
}

// HandlePostItem handles POST /items requests.
func (h *ItemsHandler) HandlePostItem(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_item"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req itemRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, int64(h.maxTextBytes)*2)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(h.maxTextBytes); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	// Idempotency check - mark as seen first
	id := req.itemID()
	if h.deps.SeenAndRecord(r.Context(), id) {
		writeJSON(w, http.StatusOK, ackResponse{Status: "duplicate", ItemID: id, Duplicate: true})
		return
	}

	item := model.ContentItem{
		ExternalID: id,
		Kind:       model.Kind(req.Kind),
		Title:      req.Title,
		Text:       req.Text,
	}

	// Try to enqueue for async processing
	if ok := h.deps.Enqueue(r.Context(), item); !ok {
		// Rollback the "seen" status since enqueue failed
		h.deps.Unrecord(r.Context(), id)
		writeError(w, http.StatusTooManyRequests, "backpressure", NewKind(op, ErrBackpressure))
		return
	}
	writeJSON(w, http.StatusAccepted, ackResponse{Status: "accepted", ItemID: id, Duplicate: false})
}
