package jobs

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"faqbot/internal/answers"
	"faqbot/internal/models"
)

type countingSource struct {
	mu      sync.Mutex
	calls   int
	entries []models.FaqEntry
	err     error
	block   chan struct{} // when set, Fetch waits until it is closed
}

func (s *countingSource) Fetch(ctx context.Context) ([]models.FaqEntry, error) {
	s.mu.Lock()
	s.calls++
	block := s.block
	s.mu.Unlock()
	if block != nil {
		<-block
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.entries, nil
}

func (s *countingSource) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func newTestStore(t *testing.T) *answers.Store {
	t.Helper()
	store, err := answers.New(nil, nil)
	if err != nil {
		t.Fatalf("answers.New() error = %v", err)
	}
	return store
}

func TestReload_LoadsEntries(t *testing.T) {
	store := newTestStore(t)
	source := &countingSource{entries: []models.FaqEntry{
		{Question: "when is allowance paid?", Answer: "25th-30th"},
	}}
	r := NewReloader(store, source, time.Hour)

	r.reload(context.Background())

	if store.Len() != 1 {
		t.Errorf("store has %d entries after reload, want 1", store.Len())
	}
	if source.callCount() != 1 {
		t.Errorf("source fetched %d times, want 1", source.callCount())
	}
}

func TestReload_FailureKeepsMapping(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.Reload(context.Background(), &countingSource{entries: []models.FaqEntry{
		{Question: "kept", Answer: "a"},
	}}); err != nil {
		t.Fatalf("seed reload error = %v", err)
	}

	r := NewReloader(store, &countingSource{err: errors.New("sheet down")}, time.Hour)
	r.reload(context.Background())

	if _, ok := store.Get("kept"); !ok {
		t.Error("failed reload dropped the previous mapping")
	}
}

func TestReload_SkipsOverlappingCycle(t *testing.T) {
	store := newTestStore(t)
	block := make(chan struct{})
	source := &countingSource{block: block}
	r := NewReloader(store, source, time.Hour)

	done := make(chan struct{})
	go func() {
		defer close(done)
		r.reload(context.Background())
	}()

	// Wait for the first cycle to be in flight.
	for i := 0; source.callCount() == 0 && i < 100; i++ {
		time.Sleep(time.Millisecond)
	}
	if source.callCount() == 0 {
		t.Fatal("first reload never started")
	}

	// A second cycle while the first is running must not touch the source.
	r.reload(context.Background())
	if source.callCount() != 1 {
		t.Errorf("overlapping reload fetched the source, calls = %d", source.callCount())
	}

	close(block)
	<-done

	// Once the first cycle finishes, reloads run again.
	r.reload(context.Background())
	if source.callCount() != 2 {
		t.Errorf("post-overlap reload did not run, calls = %d", source.callCount())
	}
}

func TestStart_StopsOnContextCancel(t *testing.T) {
	store := newTestStore(t)
	source := &countingSource{}
	r := NewReloader(store, source, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	var stopped atomic.Bool
	go func() {
		r.Start(ctx)
		stopped.Store(true)
	}()

	// Let the immediate run and at least one tick happen.
	for i := 0; source.callCount() < 2 && i < 200; i++ {
		time.Sleep(time.Millisecond)
	}
	if source.callCount() < 2 {
		t.Fatalf("reloader ran %d times, want at least the immediate run and one tick", source.callCount())
	}

	cancel()
	for i := 0; !stopped.Load() && i < 200; i++ {
		time.Sleep(time.Millisecond)
	}
	if !stopped.Load() {
		t.Error("Start() did not return after context cancellation")
	}
}
