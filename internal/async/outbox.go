// Package async carries the background mail outbox: invoice emails are
// enqueued by the invoicing service and delivered by a small worker pool.
package async

import (
	"context"
	"sync"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/ozgarage/workshop-tracker/internal/mail"
)

// Job is one queued delivery.
type Job struct {
	ID          uuid.UUID
	Message     mail.Message
	SubmittedAt time.Time
}

type Outbox struct {
	mailer  mail.Mailer
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*Outbox)

func WithWorkers(n int) Option {
	return func(o *Outbox) {
		if n > 0 {
			o.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(o *Outbox) {
		if n > 0 {
			o.ch = make(chan Job, n)
		}
	}
}

func WithSendTimeout(d time.Duration) Option {
	return func(o *Outbox) {
		if d > 0 {
			o.timeout = d
		}
	}
}

func NewOutbox(mailer mail.Mailer, logger *slog.Logger, opts ...Option) *Outbox {
	if logger == nil {
		logger = slog.Default()
	}
	o := &Outbox{
		mailer:  mailer,
		logger:  logger,
		workers: 2,
		timeout: 1 * time.Minute,
		ch:      make(chan Job, 64),
	}
	for _, opt := range opts {
		opt(o)
	}
	o.start()
	return o
}

func (o *Outbox) start() {
	o.once.Do(func() {
		for i := 0; i < o.workers; i++ {
			o.wg.Add(1)
			go func(workerID int) {
				defer o.wg.Done()
				o.logger.Info("outbox worker started", "worker_id", workerID)

				for job := range o.ch {
					ctx, cancel := context.WithTimeout(context.Background(), o.timeout)
					err := o.mailer.Send(ctx, job.Message)
					cancel()

					if err != nil {
						o.logger.Error("mail delivery failed",
							"worker_id", workerID, "job_id", job.ID, "recipient", job.Message.To, "error", err)
					} else {
						o.logger.Info("mail delivered",
							"worker_id", workerID, "job_id", job.ID, "recipient", job.Message.To)
					}
				}

				o.logger.Info("outbox worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (o *Outbox) Enqueue(_ context.Context, msg mail.Message) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		o.logger.Warn("cannot enqueue: outbox is shutting down", "recipient", msg.To)
		return nil
	}

	job := Job{ID: uuid.New(), Message: msg, SubmittedAt: time.Now()}
	select {
	case o.ch <- job:
		o.logger.Info("queued mail for delivery", "job_id", job.ID, "recipient", msg.To)
	default:
		o.logger.Warn("outbox full, applying backpressure", "recipient", msg.To)
		o.ch <- job
	}
	return nil
}

// Shutdown closes the queue and waits for in-flight deliveries to drain, or
// for ctx to expire.
func (o *Outbox) Shutdown(ctx context.Context) {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	o.closed = true
	close(o.ch)
	o.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); o.wg.Wait() }()

	select {
	case <-ctx.Done():
		o.logger.Warn("shutdown interrupted by context")
	case <-done:
		o.logger.Info("outbox drained, shutdown complete")
	}
}
