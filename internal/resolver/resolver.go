// Package resolver implements the three-tier answer resolution pipeline.
package resolver

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"faqbot/internal/answers"
	"faqbot/internal/models"
	"faqbot/internal/validation"
)

// Kind identifies which tier produced a result.
type Kind int

const (
	NoMatch Kind = iota
	InstantMatch
	ExactMatch
	FuzzyMatch
)

// DefaultThreshold is the minimum exclusive fuzzy score for a match.
const DefaultThreshold = 75

// Result is the outcome of resolving one input text.
type Result struct {
	Kind     Kind
	Question string // matched FAQ question (exact and fuzzy tiers)
	Answer   string
	Score    int // similarity score, fuzzy tier only
}

// Outcome returns the metrics label for the result.
func (r Result) Outcome() string {
	switch r.Kind {
	case InstantMatch:
		return models.OutcomeInstant
	case ExactMatch:
		return models.OutcomeExact
	case FuzzyMatch:
		return models.OutcomeFuzzy
	default:
		return models.OutcomeNone
	}
}

// Resolver resolves user text against an answer store.
type Resolver struct {
	store     *answers.Store
	threshold int
}

// New creates a resolver. threshold <= 0 falls back to DefaultThreshold.
func New(store *answers.Store, threshold int) *Resolver {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Resolver{store: store, threshold: threshold}
}

// Resolve runs the tiers in strict priority order: instant keyword substring,
// exact question substring, then best fuzzy score strictly above the
// threshold. The first tier to produce a hit wins; instant keywords beat any
// FAQ match regardless of fuzzy score.
func (r *Resolver) Resolve(text string) Result {
	if answer, ok := r.store.LookupInstant(text); ok {
		return Result{Kind: InstantMatch, Answer: answer}
	}

	if entry, ok := r.store.LookupExact(text); ok {
		return Result{Kind: ExactMatch, Question: entry.Question, Answer: entry.Answer}
	}

	input := validation.NormalizeInput(text)
	var best models.FaqEntry
	bestScore := 0
	// One snapshot for the whole scan, so question and answer always come
	// from the same mapping. Ties keep the first question seen.
	for _, e := range r.store.Entries() {
		if score := ratio(input, e.Question); score > bestScore {
			best, bestScore = e, score
		}
	}
	if bestScore > r.threshold {
		return Result{Kind: FuzzyMatch, Question: best.Question, Answer: best.Answer, Score: bestScore}
	}

	return Result{Kind: NoMatch}
}

// ratio computes a normalized edit-distance similarity on a 0-100 scale:
// 100 for identical strings, 0 for completely different ones.
func ratio(a, b string) int {
	if a == b {
		return 100
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	// ComputeDistance counts runes, so the length must too.
	dist := levenshtein.ComputeDistance(a, b)
	maxLen := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	return int(100 * (1 - float64(dist)/float64(maxLen)))
}
