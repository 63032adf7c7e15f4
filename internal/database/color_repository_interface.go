package database

import (
	"context"

	"github.com/thenoetrevino/swatch/internal/models"
)

// ColorReader defines read operations for color records.
type ColorReader interface {
	GetAllColors(ctx context.Context) ([]*models.ColorRecord, error)
	CountColors(ctx context.Context) (int, error)
}

// ColorWriter defines write operations for color records.
// Records are never updated or deleted.
type ColorWriter interface {
	InsertColor(ctx context.Context, code string, timeMillis int64) (*models.ColorRecord, error)
}

// ColorRepository combines all color-related operations.
type ColorRepository interface {
	ColorReader
	ColorWriter
}
