package db

import (
	"context"

	"faqbot/internal/models"
)

// IncrementResolution upserts a resolution count by outcome.
func (d *DB) IncrementResolution(ctx context.Context, outcome string) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO resolution_stats (outcome, count, last_seen_at)
		VALUES ($1, 1, NOW())
		ON CONFLICT (outcome) DO UPDATE
		SET count = resolution_stats.count + 1, last_seen_at = NOW()
	`, outcome)
	return err
}

// GetAllResolutionStats returns all resolution counter rows for metrics export.
func (d *DB) GetAllResolutionStats(ctx context.Context) ([]models.ResolutionStat, error) {
	rows, err := d.Pool.Query(ctx, `SELECT outcome, count, last_seen_at FROM resolution_stats`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []models.ResolutionStat
	for rows.Next() {
		var s models.ResolutionStat
		if err := rows.Scan(&s.Outcome, &s.Count, &s.LastSeenAt); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
