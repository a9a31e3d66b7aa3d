package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// Job is the smallest useful unit: one statement file to audit.
type Job struct {
	Path        string
	SubmittedAt time.Time
}

// ProcessFunc runs the extract-audit-persist flow for one statement path.
type ProcessFunc func(ctx context.Context, path string) error

// Queue fans statement jobs out to a fixed worker pool. Used by the
// watcher daemon so a burst of dropped files doesn't serialize.
type Queue struct {
	process ProcessFunc
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*Queue)

func WithWorkers(n int) Option {
	return func(q *Queue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *Queue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(q *Queue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewQueue(process ProcessFunc, logger *slog.Logger, opts ...Option) *Queue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &Queue{
		process: process,
		logger:  logger,
		workers: 4,
		timeout: time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *Queue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					err := q.process(ctx, job.Path)
					cancel()

					if err != nil {
						q.logger.Error("processing failed", "worker_id", workerID, "path", job.Path, "error", err)
						continue
					}
					q.logger.Info("processing done", "worker_id", workerID, "path", job.Path,
						"queued_for", time.Since(job.SubmittedAt).String())
				}
			}(i)
		}
	})
}

// Enqueue submits a job; it fails once the queue has been shut down.
func (q *Queue) Enqueue(job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return errors.New("queue is shut down")
	}
	if job.SubmittedAt.IsZero() {
		job.SubmittedAt = time.Now()
	}
	q.ch <- job
	return nil
}

// Shutdown stops intake and waits for in-flight jobs to drain.
func (q *Queue) Shutdown() {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.ch)
	}
	q.mu.Unlock()
	q.wg.Wait()
}
