package models

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// codePattern is the only accepted shape of a stored color code
var codePattern = regexp.MustCompile(`^#[0-9A-F]{6}$`)

// ColorRecord is a stored swatch: an uppercase hex code and the time it was created.
// ID is assigned by the database on insert and is zero until then.
type ColorRecord struct {
	ID   int
	Code string // "#RRGGBB", uppercase
	Time int64  // milliseconds since the Unix epoch
}

// GetID returns the record ID (used by the CLI quiet output mode)
func (c *ColorRecord) GetID() int {
	return c.ID
}

// CreatedAt converts Time to a time.Time in the local zone
func (c *ColorRecord) CreatedAt() time.Time {
	return time.UnixMilli(c.Time)
}

// RGB splits Code back into its three channels.
func (c *ColorRecord) RGB() (r, g, b uint8, err error) {
	if !ValidCode(c.Code) {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidColorCode, c.Code)
	}
	v, err := strconv.ParseUint(c.Code[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, err
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

// Contrast returns the foreground ("#FFFFFF" or "#000000") that reads best on top of the swatch.
// Uses the ITU-R BT.601 luma weights.
func (c *ColorRecord) Contrast() string {
	r, g, b, err := c.RGB()
	if err != nil {
		return "#FFFFFF"
	}
	luma := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
	if luma > 150 {
		return "#000000"
	}
	return "#FFFFFF"
}

// FormatCode renders channel values as "#RRGGBB"
func FormatCode(r, g, b uint8) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// ValidCode reports whether code is a well-formed uppercase "#RRGGBB" triplet
func ValidCode(code string) bool {
	return codePattern.MatchString(code)
}
