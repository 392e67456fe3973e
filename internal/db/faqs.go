package db

import (
	"context"
	"fmt"

	"faqbot/internal/models"
)

// ReplaceFaqs swaps the entire FAQ snapshot in a single transaction so a
// restart never observes a half-written snapshot.
func (d *DB) ReplaceFaqs(ctx context.Context, entries []models.FaqEntry) error {
	tx, err := d.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM faqs`); err != nil {
		return fmt.Errorf("failed to clear faqs: %w", err)
	}

	for _, e := range entries {
		_, err := tx.Exec(ctx, `
			INSERT INTO faqs (question, answer, category, updated_at)
			VALUES ($1, $2, $3, NOW())
		`, e.Question, e.Answer, e.Category)
		if err != nil {
			return fmt.Errorf("failed to insert faq %q: %w", e.Question, err)
		}
	}

	return tx.Commit(ctx)
}

// UpsertFaq inserts or updates a single FAQ entry. Last write wins.
func (d *DB) UpsertFaq(ctx context.Context, entry models.FaqEntry) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO faqs (question, answer, category, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (question) DO UPDATE
		SET answer = EXCLUDED.answer, category = EXCLUDED.category, updated_at = NOW()
	`, entry.Question, entry.Answer, entry.Category)
	if err != nil {
		return fmt.Errorf("failed to upsert faq %q: %w", entry.Question, err)
	}
	return nil
}

// GetAllFaqs returns the persisted FAQ snapshot in first-seen order, so a
// restore rebuilds the exact scan order the process had before restarting.
func (d *DB) GetAllFaqs(ctx context.Context) ([]models.FaqEntry, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT question, answer, category FROM faqs ORDER BY ordinal ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.FaqEntry
	for rows.Next() {
		var e models.FaqEntry
		if err := rows.Scan(&e.Question, &e.Answer, &e.Category); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
