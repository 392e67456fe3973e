// Package answers holds the in-memory answer store: a fixed instant-response
// table plus a periodically reloaded FAQ mapping.
package answers

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"faqbot/internal/models"
	"faqbot/internal/validation"
)

// Source is an external source of truth for the FAQ list.
type Source interface {
	Fetch(ctx context.Context) ([]models.FaqEntry, error)
}

// Persister mirrors the in-memory FAQ mapping into a durable store so it can
// be rebuilt after a restart, before the next scheduled reload.
type Persister interface {
	ReplaceFaqs(ctx context.Context, entries []models.FaqEntry) error
	UpsertFaq(ctx context.Context, entry models.FaqEntry) error
	GetAllFaqs(ctx context.Context) ([]models.FaqEntry, error)
}

// Store holds the instant-response table and the mutable FAQ mapping.
// Reads run concurrently with the single writer; the FAQ mapping is swapped
// atomically under the lock so a reader never sees a partial reload.
type Store struct {
	instant []models.InstantResponse

	mu         sync.RWMutex
	byQuestion map[string]models.FaqEntry
	order      []string // questions in first-seen order, for deterministic scans

	persister Persister
}

// New creates a store with the given instant-response table. The table is
// validated once and immutable afterwards. persister may be nil in tests.
func New(instant []models.InstantResponse, persister Persister) (*Store, error) {
	if err := ValidateInstantResponses(instant); err != nil {
		return nil, err
	}
	return &Store{
		instant:    instant,
		byQuestion: make(map[string]models.FaqEntry),
		persister:  persister,
	}, nil
}

// LookupInstant scans the instant-response table in definition order and
// returns the answer for the first keyword contained in the input.
func (s *Store) LookupInstant(text string) (string, bool) {
	input := validation.NormalizeInput(text)
	for _, r := range s.instant {
		if strings.Contains(input, r.Keyword) {
			return r.Answer, true
		}
	}
	return "", false
}

// LookupExact returns the first FAQ entry whose question is a substring of
// the input, scanning in first-seen order.
func (s *Store) LookupExact(text string) (models.FaqEntry, bool) {
	input := validation.NormalizeInput(text)
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, q := range s.order {
		if strings.Contains(input, q) {
			return s.byQuestion[q], true
		}
	}
	return models.FaqEntry{}, false
}

// Entries returns the loaded FAQ entries in first-seen order. The returned
// slice is a self-consistent snapshot: a reload landing mid-scan cannot mix
// questions from one mapping with answers from another.
func (s *Store) Entries() []models.FaqEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.FaqEntry, 0, len(s.order))
	for _, q := range s.order {
		out = append(out, s.byQuestion[q])
	}
	return out
}

// Get returns the FAQ entry for a normalized question.
func (s *Store) Get(question string) (models.FaqEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.byQuestion[question]
	return e, ok
}

// Len returns the number of FAQ entries currently loaded.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Upsert adds or replaces a single FAQ entry and persists it. The question
// key is normalized; re-applying the same pair leaves state unchanged.
func (s *Store) Upsert(ctx context.Context, question, answer, category string) error {
	entry := models.FaqEntry{
		Question: validation.NormalizeQuestion(question),
		Answer:   answer,
		Category: category,
	}
	if entry.Question == "" {
		return fmt.Errorf("empty question")
	}

	s.mu.Lock()
	if _, exists := s.byQuestion[entry.Question]; !exists {
		s.order = append(s.order, entry.Question)
	}
	s.byQuestion[entry.Question] = entry
	s.mu.Unlock()

	if s.persister != nil {
		if err := s.persister.UpsertFaq(ctx, entry); err != nil {
			return fmt.Errorf("failed to persist faq: %w", err)
		}
	}
	return nil
}

// Reload replaces the entire FAQ mapping from the source of truth. The fetch
// builds a complete replacement first; on any failure the previous mapping is
// retained untouched. Returns the number of entries loaded.
func (s *Store) Reload(ctx context.Context, source Source) (int, error) {
	entries, err := source.Fetch(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch faq source: %w", err)
	}

	byQuestion := make(map[string]models.FaqEntry, len(entries))
	order := make([]string, 0, len(entries))
	for _, e := range entries {
		q := validation.NormalizeQuestion(e.Question)
		if q == "" {
			continue
		}
		if _, exists := byQuestion[q]; !exists {
			order = append(order, q)
		}
		byQuestion[q] = models.FaqEntry{Question: q, Answer: e.Answer, Category: e.Category}
	}

	if s.persister != nil {
		snapshot := make([]models.FaqEntry, 0, len(order))
		for _, q := range order {
			snapshot = append(snapshot, byQuestion[q])
		}
		if err := s.persister.ReplaceFaqs(ctx, snapshot); err != nil {
			return 0, fmt.Errorf("failed to persist faq snapshot: %w", err)
		}
	}

	s.mu.Lock()
	s.byQuestion = byQuestion
	s.order = order
	s.mu.Unlock()

	return len(order), nil
}

// Restore loads the FAQ mapping from the durable snapshot, for use at boot
// before the first scheduled reload.
func (s *Store) Restore(ctx context.Context) (int, error) {
	if s.persister == nil {
		return 0, nil
	}
	entries, err := s.persister.GetAllFaqs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load faq snapshot: %w", err)
	}

	byQuestion := make(map[string]models.FaqEntry, len(entries))
	order := make([]string, 0, len(entries))
	for _, e := range entries {
		q := validation.NormalizeQuestion(e.Question)
		if q == "" {
			continue
		}
		if _, exists := byQuestion[q]; !exists {
			order = append(order, q)
		}
		byQuestion[q] = models.FaqEntry{Question: q, Answer: e.Answer, Category: e.Category}
	}

	s.mu.Lock()
	s.byQuestion = byQuestion
	s.order = order
	s.mu.Unlock()

	return len(order), nil
}
