// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - External errors must be wrapped via this package's error helpers.
package config

import "runtime"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// QueueSize bounds the in-memory item queue.
	QueueSize int `koanf:"queue_size"`

	// WorkerCount sets the number of processing workers.
	WorkerCount int `koanf:"worker_count"`

	// DedupeSize bounds the idempotency cache.
	DedupeSize int `koanf:"dedupe_size"`

	// MultiLabelThreshold is the minimum confidence for a category to be
	// included in an item's multi-label classification.
	MultiLabelThreshold float64 `koanf:"multi_label_threshold"`

	// ReadyPercentage is the criteria-coverage floor for the ready flag.
	ReadyPercentage float64 `koanf:"ready_percentage"`

	// ArchivePath is the SQLite file holding the processed-item history.
	// Empty keeps the archive in memory only.
	ArchivePath string `koanf:"archive_path"`

	// TaxonomyFile optionally replaces the built-in award taxonomy with a
	// YAML file.
	TaxonomyFile string `koanf:"taxonomy_file"`

	// MaxTextBytes caps the accepted item text size.
	MaxTextBytes int `koanf:"max_text_bytes"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                ":9080",
		QueueSize:           10_000,
		WorkerCount:         runtime.NumCPU() * 2,
		DedupeSize:          50_000,
		MultiLabelThreshold: 0.2,
		ReadyPercentage:     80,
		MaxTextBytes:        1 << 20,
	}
}
