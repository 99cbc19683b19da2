package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/karium/laurel/internal/domain/model"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS items (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	external_id TEXT NOT NULL DEFAULT '',
	kind        TEXT NOT NULL,
	title       TEXT NOT NULL DEFAULT '',
	text        TEXT NOT NULL DEFAULT '',
	received_at TEXT NOT NULL
);
`

// SQLiteArchive persists the processed-item history to SQLite so a restart
// can replay it through the pipeline.
type SQLiteArchive struct {
	db *sqlx.DB
}

// NewSQLiteArchive opens (creating if needed) the archive database at path.
func NewSQLiteArchive(path string) (*SQLiteArchive, error) {
	db, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLiteArchive{db: db}, nil
}

func (s *SQLiteArchive) Append(ctx context.Context, item StoredItem) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO items (external_id, kind, title, text, received_at) VALUES (?, ?, ?, ?, ?)`,
		item.ExternalID,
		string(item.Kind),
		item.Title,
		item.Text,
		item.ReceivedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("append item: %w", err)
	}
	return nil
}

func (s *SQLiteArchive) All(ctx context.Context) ([]StoredItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT external_id, kind, title, text, received_at FROM items ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	var out []StoredItem
	for rows.Next() {
		var it StoredItem
		var kind, receivedAt string
		if err := rows.Scan(&it.ExternalID, &kind, &it.Title, &it.Text, &receivedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		it.Kind = model.Kind(kind)
		it.ReceivedAt, _ = time.Parse(time.RFC3339Nano, receivedAt)
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return out, nil
}

func (s *SQLiteArchive) Len(ctx context.Context) int {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM items`); err != nil {
		return 0
	}
	return n
}

func (s *SQLiteArchive) Close() error {
	return s.db.Close()
}

var _ Archive = (*SQLiteArchive)(nil)
