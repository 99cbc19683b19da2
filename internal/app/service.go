// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	itemqueue "github.com/karium/laurel/internal/adapters/mq/queue"
	workerpool "github.com/karium/laurel/internal/adapters/mq/worker"
	"github.com/karium/laurel/internal/adapters/repository"
	"github.com/karium/laurel/internal/domain/classify"
	"github.com/karium/laurel/internal/domain/dedupe"
	"github.com/karium/laurel/internal/domain/model"
	"github.com/karium/laurel/internal/domain/normalize"
	"github.com/karium/laurel/internal/domain/readiness"
	"github.com/karium/laurel/internal/domain/recommend"
	"github.com/karium/laurel/internal/domain/taxonomy"
	"github.com/karium/laurel/pkg/logger"
	"github.com/karium/laurel/pkg/metrics"
)

// Service wires the classification core, the readiness aggregator, and the
// ingestion pipeline together behind the four external operations:
// Classify, Process, StatusReport, and Reset (plus Reload for bulk
// re-derivation from the archive).
type Service struct {
	mu sync.RWMutex

	// Core components
	tax        *taxonomy.Taxonomy
	classifier *classify.Classifier
	aggregator *readiness.Aggregator
	deduper    dedupe.Deduper
	itemQueue  itemqueue.Queue
	workerPool *workerpool.Pool
	archive    repository.Archive

	// Configuration
	workerCount         int
	queueSize           int
	dedupeSize          int
	multiLabelThreshold float64
	readyPercentage     float64
	archivePath         string

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the number of processing workers.
func WithWorkerCount(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.workerCount = n
		}
	}
}

// WithQueueSize bounds the item queue.
func WithQueueSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.queueSize = n
		}
	}
}

// WithDedupeSize bounds the idempotency cache.
func WithDedupeSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.dedupeSize = n
		}
	}
}

// WithMultiLabelThreshold sets the multi-label confidence floor.
func WithMultiLabelThreshold(t float64) Option {
	return func(s *Service) {
		if t > 0 && t <= 1 {
			s.multiLabelThreshold = t
		}
	}
}

// WithReadyPercentage sets the criteria-coverage floor for readiness.
func WithReadyPercentage(p float64) Option {
	return func(s *Service) {
		if p > 0 && p <= 100 {
			s.readyPercentage = p
		}
	}
}

// WithArchivePath stores the processed-item history in a SQLite file.
func WithArchivePath(path string) Option {
	return func(s *Service) {
		s.archivePath = path
	}
}

// WithArchive injects a prebuilt archive, overriding WithArchivePath.
func WithArchive(a repository.Archive) Option {
	return func(s *Service) {
		if a != nil {
			s.archive = a
		}
	}
}

// WithTaxonomy replaces the built-in award taxonomy.
func WithTaxonomy(t *taxonomy.Taxonomy) Option {
	return func(s *Service) {
		if t != nil {
			s.tax = t
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount:         runtime.NumCPU() * 2,
		queueSize:           10_000,
		dedupeSize:          50_000,
		multiLabelThreshold: classify.DefaultMultiLabelThreshold,
		readyPercentage:     80,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the components and replays any archived history.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.tax == nil {
		s.tax = taxonomy.Default()
	}

	s.classifier = classify.New(s.tax, classify.WithMultiLabelThreshold(s.multiLabelThreshold))
	s.aggregator = readiness.New(s.tax, readiness.WithReadyPercentage(s.readyPercentage))
	s.deduper = dedupe.NewInMemory(dedupe.WithMaxSize(s.dedupeSize))
	s.itemQueue = itemqueue.NewInMemory(itemqueue.WithCapacity(s.queueSize))

	if s.archive == nil {
		if s.archivePath != "" {
			archive, err := repository.NewSQLiteArchive(s.archivePath)
			if err != nil {
				return fmt.Errorf("open archive: %w", err)
			}
			s.archive = archive
			s.logger.Info(ctx, "using sqlite archive", logger.String("path", s.archivePath))
		} else {
			s.archive = repository.NewMemoryArchive()
			s.logger.Info(ctx, "using in-memory archive")
		}
	}

	s.workerPool = workerpool.NewPool(s.workerCount, s.itemQueue, s)
	s.workerPool.Start(ctx)
	s.started = true

	if n, err := s.replayLocked(ctx); err != nil {
		s.logger.Warn(ctx, "archive replay failed", logger.Error(err))
	} else if n > 0 {
		s.logger.Info(ctx, "replayed archived items", logger.Int("count", n))
	}

	s.logger.Info(ctx, "award readiness service started",
		logger.Int("workers", s.workerCount),
		logger.Int("queueSize", s.queueSize),
		logger.Int("categories", s.tax.Len()),
	)
	return nil
}

// Stop gracefully shuts down the pipeline and releases the archive.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	ctx := context.Background()
	s.logger.Info(ctx, "stopping award readiness service...")

	if s.itemQueue != nil {
		_ = s.itemQueue.Close()
	}
	if s.workerPool != nil {
		s.workerPool.Stop()
	}
	if s.archive != nil {
		_ = s.archive.Close()
	}
	s.started = false
	s.logger.Info(ctx, "award readiness service stopped")
}

// Classify scores text (plus optional title) against every category without
// touching aggregator state. Safe to call speculatively.
func (s *Service) Classify(_ context.Context, text, title string) model.ClassificationResult {
	return s.classifier.Classify(normalize.Join(title, text))
}

// Process is the only state-mutating entry point: it classifies the item,
// assigns it to every category above the multi-label threshold, updates
// readiness, and records the item in the archive.
func (s *Service) Process(ctx context.Context, item model.ContentItem) (model.ProcessResult, error) {
	return s.apply(ctx, item, true)
}

// apply runs the processing pipeline; record controls whether the item is
// appended to the archive (replay skips that step).
func (s *Service) apply(ctx context.Context, item model.ContentItem, record bool) (model.ProcessResult, error) {
	if !item.Kind.Valid() {
		metrics.RecordItemFailed()
		return model.ProcessResult{}, fmt.Errorf("%w: %q", readiness.ErrInvalidKind, item.Kind)
	}

	normalized := normalize.Join(item.Title, item.Text)
	result := model.ProcessResult{
		Classification: s.classifier.Classify(normalized),
	}
	result.Assignments = result.Classification.Labels

	if len(result.Assignments) > 0 {
		keys := make([]string, len(result.Assignments))
		for i, l := range result.Assignments {
			keys[i] = l.Key
		}
		statuses, err := s.aggregator.Assign(keys, item.Kind, normalized)
		if err != nil {
			metrics.RecordItemFailed()
			return model.ProcessResult{}, err
		}
		result.Awards = statuses

		for _, l := range result.Assignments {
			metrics.RecordClassification(l.Key)
		}
		for _, st := range statuses {
			metrics.UpdateAwardReadiness(st.Key, st.Readiness.ReadinessPercentage)
		}
	} else {
		metrics.RecordUnclassified()
	}

	if record {
		stored := repository.StoredItem{
			ExternalID: item.ExternalID,
			Kind:       item.Kind,
			Title:      item.Title,
			Text:       item.Text,
			ReceivedAt: time.Now().UTC(),
		}
		if err := s.archive.Append(ctx, stored); err != nil {
			// Readiness state is already updated; losing one archive row only
			// degrades a future replay.
			metrics.RecordErrorByComponent("archive", "append_failed")
			s.logger.Warn(ctx, "failed to archive item",
				logger.String("externalID", item.ExternalID),
				logger.Error(err),
			)
		}
	}

	metrics.RecordItemProcessed()
	return result, nil
}

// StatusReport walks every category and builds the summary, per-category
// detail, and recommendations for any not-ready category. The per-category
// snapshot is taken atomically.
func (s *Service) StatusReport(_ context.Context) model.StatusReport {
	statuses := s.aggregator.Snapshot()

	report := model.StatusReport{
		Awards:          statuses,
		Recommendations: []model.Recommendation{},
	}
	for _, st := range statuses {
		report.Summary.TotalDocuments += st.Counter.Documents
		report.Summary.TotalEvents += st.Counter.Events
		report.Summary.TotalItems += st.Counter.Total
		if st.Readiness.Ready {
			report.Summary.ReadyAwards++
		}
		report.Recommendations = append(report.Recommendations, recommend.ForAward(st)...)
	}
	report.Summary.TotalAwards = len(statuses)

	metrics.UpdateReadyAwards(report.Summary.ReadyAwards)
	metrics.UpdateTotalItems(report.Summary.TotalItems)
	return report
}

// Award returns the current snapshot for one category key.
func (s *Service) Award(_ context.Context, key string) (model.AwardStatus, error) {
	return s.aggregator.Status(key)
}

// Taxonomy exposes the immutable category set for read-only listings.
func (s *Service) Taxonomy() *taxonomy.Taxonomy { return s.tax }

// Reset clears all aggregator and idempotency state. The archive is kept so
// Reload can re-derive state from history.
func (s *Service) Reset(ctx context.Context) error {
	s.aggregator.Reset()
	s.deduper.Clear(ctx)
	s.logger.Info(ctx, "readiness state reset")
	return nil
}

// Reload clears state and replays every archived item through the
// classification pipeline in insertion order.
func (s *Service) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.aggregator.Reset()
	s.deduper.Clear(ctx)
	n, err := s.replayLocked(ctx)
	if err != nil {
		return err
	}
	s.logger.Info(ctx, "state rebuilt from archive", logger.Int("items", n))
	return nil
}

// replayLocked feeds archived items back through the pipeline without
// re-recording them. Caller must hold s.mu.
func (s *Service) replayLocked(ctx context.Context) (int, error) {
	items, err := s.archive.All(ctx)
	if err != nil {
		return 0, fmt.Errorf("read archive: %w", err)
	}
	for _, it := range items {
		item := model.ContentItem{
			ExternalID: it.ExternalID,
			Kind:       it.Kind,
			Title:      it.Title,
			Text:       it.Text,
		}
		if _, err := s.apply(ctx, item, false); err != nil {
			return 0, fmt.Errorf("replay item %q: %w", it.ExternalID, err)
		}
	}
	return len(items), nil
}

// SeenAndRecord atomically checks if an item id was seen and records it if
// not. Returns true if the item was already seen.
func (s *Service) SeenAndRecord(ctx context.Context, id string) bool {
	seen := s.deduper.SeenAndRecord(ctx, id)
	if seen {
		metrics.RecordItemDuplicate()
	}
	return seen
}

// Unrecord removes an item ID from the seen set, allowing a retry.
func (s *Service) Unrecord(ctx context.Context, id string) {
	s.deduper.Unrecord(ctx, id)
}

// Enqueue submits an item for asynchronous processing. Returns false on
// backpressure.
func (s *Service) Enqueue(ctx context.Context, item model.ContentItem) bool {
	return s.itemQueue.Enqueue(ctx, item)
}

// Stats returns operational counters for monitoring.
func (s *Service) Stats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]any{
		"started":     s.started,
		"workerCount": s.workerCount,
		"queueSize":   s.queueSize,
		"categories":  0,
	}
	if s.tax != nil {
		stats["categories"] = s.tax.Len()
	}
	if s.started {
		ctx := context.Background()
		stats["queueLength"] = s.itemQueue.Len(ctx)
		stats["archivedItems"] = s.archive.Len(ctx)
		stats["dedupeEntries"] = s.deduper.Size()
	}
	return stats
}
