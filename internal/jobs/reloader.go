package jobs

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"faqbot/internal/answers"
)

// Reloader refreshes the FAQ mapping from the source of truth on a fixed
// wall-clock interval.
type Reloader struct {
	store    *answers.Store
	source   answers.Source
	interval time.Duration
	running  atomic.Bool
}

// NewReloader creates a new FAQ reloader.
func NewReloader(store *answers.Store, source answers.Source, interval time.Duration) *Reloader {
	return &Reloader{
		store:    store,
		source:   source,
		interval: interval,
	}
}

// Start begins the background reload loop. It runs once immediately, then on
// every tick until the context is cancelled.
func (r *Reloader) Start(ctx context.Context) {
	log.Printf("FAQ reloader started (interval: %v)", r.interval)

	r.reload(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("FAQ reloader stopped")
			return
		case <-ticker.C:
			r.reload(ctx)
		}
	}
}

// reload runs one refresh cycle. A cycle is skipped entirely if the previous
// one is still in flight; a failed cycle keeps the previous mapping and is
// retried on the next tick.
func (r *Reloader) reload(ctx context.Context) {
	if !r.running.CompareAndSwap(false, true) {
		log.Println("FAQ reload skipped: previous reload still running")
		return
	}
	defer r.running.Store(false)

	count, err := r.store.Reload(ctx, r.source)
	if err != nil {
		log.Printf("FAQ reload failed, keeping previous mapping: %v", err)
		return
	}
	log.Printf("FAQ reload complete: %d entries", count)
}
