package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"faqbot/internal/models"
)

// RecordQuestion appends a new unanswered question and returns its id.
// The timestamp is server-assigned.
func (d *DB) RecordQuestion(ctx context.Context, question, chatID string) (uuid.UUID, error) {
	var id uuid.UUID
	err := d.Pool.QueryRow(ctx, `
		INSERT INTO unanswered_questions (question, chat_id)
		VALUES ($1, $2)
		RETURNING id
	`, question, chatID).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to record question: %w", err)
	}
	return id, nil
}

// GetQuestion retrieves an unanswered-question log entry by id.
func (d *DB) GetQuestion(ctx context.Context, id uuid.UUID) (*models.UnansweredQuestion, error) {
	var q models.UnansweredQuestion
	err := d.Pool.QueryRow(ctx, `
		SELECT id, question, chat_id, answered, answer, created_at, answered_at
		FROM unanswered_questions
		WHERE id = $1
	`, id).Scan(&q.ID, &q.Question, &q.ChatID, &q.Answered, &q.Answer, &q.CreatedAt, &q.AnsweredAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrQuestionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// GetPendingQuestions returns unanswered entries, oldest first.
func (d *DB) GetPendingQuestions(ctx context.Context) ([]models.UnansweredQuestion, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT id, question, chat_id, answered, answer, created_at, answered_at
		FROM unanswered_questions
		WHERE answered = FALSE
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []models.UnansweredQuestion
	for rows.Next() {
		var q models.UnansweredQuestion
		if err := rows.Scan(&q.ID, &q.Question, &q.ChatID, &q.Answered, &q.Answer, &q.CreatedAt, &q.AnsweredAt); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// ResolveQuestion marks an entry answered and stores the answer text.
// The answered flag is monotonic: resolving an already-answered entry fails
// with ErrAlreadyAnswered and leaves the stored answer untouched.
func (d *DB) ResolveQuestion(ctx context.Context, id uuid.UUID, answer string) error {
	result, err := d.Pool.Exec(ctx, `
		UPDATE unanswered_questions
		SET answered = TRUE, answer = $2, answered_at = NOW()
		WHERE id = $1 AND answered = FALSE
	`, id, answer)
	if err != nil {
		return fmt.Errorf("failed to resolve question: %w", err)
	}
	if result.RowsAffected() == 0 {
		// Distinguish a missing id from a second resolve
		if _, err := d.GetQuestion(ctx, id); err != nil {
			return err
		}
		return ErrAlreadyAnswered
	}
	return nil
}

// AmendAnswer overwrites the answer of an already-answered entry. This is the
// moderator correction path; it never flips the answered flag back.
func (d *DB) AmendAnswer(ctx context.Context, id uuid.UUID, answer string) error {
	result, err := d.Pool.Exec(ctx, `
		UPDATE unanswered_questions
		SET answer = $2, answered_at = NOW()
		WHERE id = $1 AND answered = TRUE
	`, id, answer)
	if err != nil {
		return fmt.Errorf("failed to amend answer: %w", err)
	}
	if result.RowsAffected() == 0 {
		if _, err := d.GetQuestion(ctx, id); err != nil {
			return err
		}
		return ErrNotAnswered
	}
	return nil
}
