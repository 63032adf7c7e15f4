package theme

import "github.com/thenoetrevino/swatch/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Accent         string
	Background     string
	Title          string
	Subtle         string
	Normal         string
	SelectedBorder string
	InfoFg         string
	InfoBg         string
	StatusBarFg    string
	StatusBarBg    string
)

func init() {
	Init(config.Default().ColorScheme)
}

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Accent = colors.Accent
	Background = colors.Background
	Title = colors.Title
	Subtle = colors.Subtle
	Normal = colors.Normal
	SelectedBorder = colors.SelectedBorder
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	StatusBarFg = colors.StatusBarFg
	StatusBarBg = colors.StatusBarBg
}
