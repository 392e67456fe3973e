package db

import "errors"

// Domain-level database error sentinels.
var (
	// Unanswered question errors
	ErrQuestionNotFound = errors.New("question not found")
	ErrAlreadyAnswered  = errors.New("question is already answered")
	ErrNotAnswered      = errors.New("question has not been answered yet")
)
