package db

import (
	"context"

	"brewfinder/internal/models"
)

// IncrementSearchOutcome upserts a search count by query kind and outcome.
func (d *DB) IncrementSearchOutcome(ctx context.Context, kind, outcome string) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO search_outcomes (kind, outcome, count, last_seen_at)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (kind, outcome) DO UPDATE
		SET count = search_outcomes.count + 1, last_seen_at = NOW()
	`, kind, outcome)
	return err
}

// GetAllSearchOutcomes returns all search outcome rows for metrics export.
func (d *DB) GetAllSearchOutcomes(ctx context.Context) ([]models.SearchOutcome, error) {
	rows, err := d.Pool.Query(ctx, `SELECT kind, outcome, count, last_seen_at FROM search_outcomes`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var outcomes []models.SearchOutcome
	for rows.Next() {
		var o models.SearchOutcome
		if err := rows.Scan(&o.Kind, &o.Outcome, &o.Count, &o.LastSeenAt); err != nil {
			return nil, err
		}
		outcomes = append(outcomes, o)
	}
	return outcomes, rows.Err()
}
