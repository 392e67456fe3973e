package models

import (
	"time"

	"github.com/google/uuid"
)

// Resolution outcome constants
const (
	OutcomeInstant = "instant"
	OutcomeExact   = "exact"
	OutcomeFuzzy   = "fuzzy"
	OutcomeNone    = "none"
)

// CategoryUserAdded labels FAQ entries learned through the moderator loop, as
// opposed to the topical categories carried by curated spreadsheet rows.
const CategoryUserAdded = "user-added"

// InstantResponse is a curated keyword-triggered canned answer.
// Keywords are lowercase and matched as substrings of user input.
type InstantResponse struct {
	Keyword string
	Answer  string
}

// FaqEntry is a question/answer pair from the crowd-sourced FAQ list.
// Question is stored lowercase and trimmed; it is the unique key.
type FaqEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

// UnansweredQuestion is a logged question no tier could answer, awaiting
// a moderator. Answered flips false -> true exactly once.
type UnansweredQuestion struct {
	ID         uuid.UUID  `json:"id"`
	Question   string     `json:"question"` // original casing, as the user typed it
	ChatID     string     `json:"chat_id"`
	Answered   bool       `json:"answered"`
	Answer     *string    `json:"answer,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	AnsweredAt *time.Time `json:"answered_at,omitempty"`
}

// ResolutionStat is a per-outcome hit count for metrics export.
type ResolutionStat struct {
	Outcome    string
	Count      int64
	LastSeenAt time.Time
}
