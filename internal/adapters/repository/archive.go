// Package repository defines the processed-item archive and its
// implementations. The archive is the historical-item source used for bulk
// re-derivation: every processed item is recorded and can be streamed back
// in insertion order.
package repository

import (
	"context"
	"time"

	"github.com/karium/laurel/internal/domain/model"
)

// StoredItem is one archived submission with enough fields to re-run
// classification during a reload.
type StoredItem struct {
	ExternalID string     `db:"external_id" json:"external_id"`
	Kind       model.Kind `db:"kind" json:"kind"`
	Title      string     `db:"title" json:"title"`
	Text       string     `db:"text" json:"text"`
	ReceivedAt time.Time  `db:"received_at" json:"received_at"`
}

// Archive provides append-only access to the processed-item history.
type Archive interface {
	// Append records one processed item.
	Append(ctx context.Context, item StoredItem) error

	// All returns every archived item in insertion order.
	All(ctx context.Context) ([]StoredItem, error)

	// Len returns the number of archived items.
	Len(ctx context.Context) int

	// Close releases underlying resources.
	Close() error
}
