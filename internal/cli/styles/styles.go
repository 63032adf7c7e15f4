package styles

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/swatch/internal/config"
	"github.com/thenoetrevino/swatch/internal/models"
)

var (
	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	ValueStyle    lipgloss.Style

	// Status styles
	SuccessStyle lipgloss.Style
)

func init() {
	Init(config.Default().ColorScheme)
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.InfoFg)).
		Background(lipgloss.Color(colors.InfoBg)).
		Padding(0, 1)
}

// RenderSwatch renders the record's code on a block of its own color
func RenderSwatch(record *models.ColorRecord) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(record.Code)).
		Foreground(lipgloss.Color(record.Contrast())).
		Padding(0, 1).
		Render(record.Code)
}
