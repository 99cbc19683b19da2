// Package worker drains the item queue into the processing service.
package worker

import (
	"context"
	"runtime"
	"strconv"
	"time"

	"github.com/karium/laurel/internal/domain/model"
	"github.com/karium/laurel/pkg/logger"
	"github.com/karium/laurel/pkg/metrics"
)

const workerShutdownTimeout = 5 * time.Second

// Item is what workers read off the queue.
type Item = model.ContentItem

// Processor runs the state-mutating processing pipeline for one item.
type Processor interface {
	Process(ctx context.Context, item model.ContentItem) (model.ProcessResult, error)
}

// Queue defines how workers receive items.
type Queue interface {
	Dequeue(ctx context.Context) <-chan Item
}

// Option applies a configuration option to a worker.
type Option func(*Worker)

// WithName sets the worker's name for logging.
func WithName(name string) Option {
	return func(w *Worker) {
		if name != "" {
			w.name = name
			w.logger = logger.Named(name)
		}
	}
}

// Worker consumes items from the queue and feeds them to the processor.
type Worker struct {
	queue     Queue
	processor Processor
	name      string

	done chan struct{}

	logger logger.Logger
}

// New creates a worker.
func New(queue Queue, processor Processor, opts ...Option) *Worker {
	w := &Worker{
		queue:     queue,
		processor: processor,
		name:      "worker",
		done:      make(chan struct{}),
		logger:    logger.Named("worker"),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run consumes items until ctx is canceled or the queue closes.
func (w *Worker) Run(ctx context.Context) {
	defer close(w.done)

	items := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case item, ok := <-items:
			if !ok {
				return
			}
			w.process(ctx, item)
		}
	}
}

func (w *Worker) process(ctx context.Context, item Item) {
	start := time.Now()
	_, err := w.processor.Process(ctx, item)
	metrics.RecordWorkerProcessingLatency(float64(time.Since(start).Milliseconds()))

	if err != nil {
		metrics.RecordWorkerError()
		metrics.RecordErrorByComponent("worker", "process_error")
		w.logger.Error(ctx, "item processing failed",
			logger.String("externalID", item.ExternalID),
			logger.String("kind", string(item.Kind)),
			logger.Error(err),
		)
	}
}

// Pool manages a fixed set of workers.
type Pool struct {
	workers []*Worker
	logger  logger.Logger
}

// NewPool creates a pool of count workers; count < 1 defaults to the number
// of CPUs.
func NewPool(count int, queue Queue, processor Processor) *Pool {
	if count < 1 {
		count = runtime.NumCPU()
	}
	p := &Pool{
		workers: make([]*Worker, count),
		logger:  logger.Named("worker-pool"),
	}
	for i := 0; i < count; i++ {
		p.workers[i] = New(queue, processor, WithName("worker-"+strconv.Itoa(i)))
	}
	metrics.UpdateWorkerCount(count)
	return p
}

// Start launches every worker.
func (p *Pool) Start(ctx context.Context) {
	for _, w := range p.workers {
		go w.Run(ctx)
	}
}

// Stop waits for every worker to drain, bounded per worker.
func (p *Pool) Stop() {
	for _, w := range p.workers {
		select {
		case <-w.done:
		case <-time.After(workerShutdownTimeout):
		}
	}
	metrics.UpdateWorkerCount(0)
}
