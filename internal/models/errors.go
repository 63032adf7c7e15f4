package models

import "errors"

// Domain-specific errors for color records
var (
	// ErrInvalidColorCode indicates a code that is not an uppercase #RRGGBB triplet
	ErrInvalidColorCode = errors.New("invalid color code (must be #RRGGBB, uppercase hex)")
)
