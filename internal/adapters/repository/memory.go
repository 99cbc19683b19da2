package repository

import (
	"context"
	"sync"
)

// MemoryArchive keeps the processed-item history in memory. State is lost on
// restart; use the SQLite archive when durability matters.
type MemoryArchive struct {
	mu     sync.RWMutex
	items  []StoredItem
	closed bool
}

// NewMemoryArchive creates an empty in-memory archive.
func NewMemoryArchive() *MemoryArchive {
	return &MemoryArchive{}
}

func (m *MemoryArchive) Append(_ context.Context, item StoredItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	m.items = append(m.items, item)
	return nil
}

func (m *MemoryArchive) All(_ context.Context) ([]StoredItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, ErrClosed
	}
	out := make([]StoredItem, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *MemoryArchive) Len(_ context.Context) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

func (m *MemoryArchive) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

var _ Archive = (*MemoryArchive)(nil)
