package async

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// OrderProcessor is the work the queue hands to its workers.
// *orders.Engine satisfies it.
type OrderProcessor interface {
	ProcessOrder(ctx context.Context, orderID uuid.UUID) error
}

type OrderQueue struct {
	proc    OrderProcessor
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*OrderQueue)

func WithWorkers(n int) Option {
	return func(q *OrderQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *OrderQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(q *OrderQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewOrderQueue(proc OrderProcessor, logger *slog.Logger, opts ...Option) *OrderQueue {
	q := &OrderQueue{
		proc:    proc,
		logger:  logger,
		workers: 2,
		timeout: 10 * time.Minute,
		ch:      make(chan Job, 64),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *OrderQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					err := q.proc.ProcessOrder(ctx, job.OrderID)
					cancel()

					if err != nil {
						q.logger.Error("order processing failed", "worker_id", workerID, "order_id", job.OrderID, "error", err)
					} else {
						q.logger.Info("order processed", "worker_id", workerID, "order_id", job.OrderID)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *OrderQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "order_id", job.OrderID)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued order for processing", "order_id", job.OrderID)
	default:
		q.logger.Warn("queue full, applying backpressure", "order_id", job.OrderID)
		q.ch <- job
	}
	return nil
}

func (q *OrderQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
