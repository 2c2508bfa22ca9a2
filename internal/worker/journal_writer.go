package worker

import (
	"context"
	"log/slog"
	"sync"

	"github.com/polkiloo/minivenmo/internal/domain/model"
	"github.com/polkiloo/minivenmo/internal/domain/repository"
)

// JournalWriter persists settled card payments in the background.
type JournalWriter struct {
	payments repository.PaymentRepository
	workers  int
	buffer   int
	logger   *slog.Logger

	jobs    chan model.Payment
	wg      sync.WaitGroup
	mu      sync.RWMutex
	running bool
}

// NewJournalWriter constructs journal worker pool.
func NewJournalWriter(payments repository.PaymentRepository, workers, buffer int, logger *slog.Logger) *JournalWriter {
	if workers <= 0 {
		workers = 1
	}
	if buffer <= 0 {
		buffer = 1
	}
	return &JournalWriter{
		payments: payments,
		workers:  workers,
		buffer:   buffer,
		logger:   logger,
	}
}

// Start launches background workers. Saves outlive the start context's deadline.
func (w *JournalWriter) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return
	}

	w.jobs = make(chan model.Payment, w.buffer)
	w.running = true

	runCtx := context.WithoutCancel(ctx)
	for i := 0; i < w.workers; i++ {
		w.wg.Add(1)
		go w.worker(runCtx, w.jobs)
	}
}

// Stop closes the queue and waits until every queued payment is saved.
func (w *JournalWriter) Stop() {
	w.mu.Lock()
	if w.running {
		w.running = false
		close(w.jobs)
	}
	w.mu.Unlock()

	w.wg.Wait()
}

// Record enqueues the payment. It saves synchronously when the writer is
// stopped or the queue is full, so no settled payment is dropped.
func (w *JournalWriter) Record(ctx context.Context, payment *model.Payment) {
	w.mu.RLock()
	if w.running {
		select {
		case w.jobs <- *payment:
			w.mu.RUnlock()
			return
		default:
		}
	}
	w.mu.RUnlock()

	w.save(ctx, *payment)
}

func (w *JournalWriter) worker(ctx context.Context, jobs <-chan model.Payment) {
	defer w.wg.Done()
	for payment := range jobs {
		w.save(ctx, payment)
	}
}

func (w *JournalWriter) save(ctx context.Context, payment model.Payment) {
	if err := w.payments.Save(ctx, &payment); err != nil {
		w.logger.Error("journal payment failed",
			slog.String("payment", payment.ID.String()),
			slog.String("actor", payment.Actor),
			slog.String("error", err.Error()))
	}
}
