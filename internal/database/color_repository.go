package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/swatch/internal/models"
)

// ColorRepo handles all color-related database operations.
type ColorRepo struct {
	db *sql.DB
}

// InsertColor stores a new record and returns it with its generated ID
func (r *ColorRepo) InsertColor(ctx context.Context, code string, timeMillis int64) (*models.ColorRecord, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO colors (code, time) VALUES (?, ?)`,
		code, timeMillis,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert color %s: %w", code, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get color ID after insert: %w", err)
	}

	return &models.ColorRecord{
		ID:   int(id),
		Code: code,
		Time: timeMillis,
	}, nil
}

// GetAllColors returns every record in insertion order
func (r *ColorRepo) GetAllColors(ctx context.Context) ([]*models.ColorRecord, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, code, time FROM colors ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query colors: %w", err)
	}
	defer rows.Close()

	colors := []*models.ColorRecord{}
	for rows.Next() {
		c := &models.ColorRecord{}
		if err := rows.Scan(&c.ID, &c.Code, &c.Time); err != nil {
			return nil, fmt.Errorf("failed to scan color: %w", err)
		}
		colors = append(colors, c)
	}

	return colors, rows.Err()
}

// CountColors returns the number of stored records
func (r *ColorRepo) CountColors(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM colors`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count colors: %w", err)
	}
	return count, nil
}
