package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/swatch/internal/models"
	"github.com/thenoetrevino/swatch/internal/tui/theme"
)

// Card dimensions. CardOuterWidth includes the border and the gap to the next card.
const (
	CardWidth      = 26
	CardHeight     = 5
	CardGap        = 1
	CardOuterWidth = CardWidth + 2 + CardGap
	CardOuterRows  = CardHeight + 2
)

// DateLayout renders dates as dd/MM/yyyy
const DateLayout = "02/01/2006"

// RenderCard renders a color card: the code on top and the creation date below,
// on a background of the color itself.
func RenderCard(c *models.ColorRecord, selected bool) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(c.Code),
		"",
		"Created at "+c.CreatedAt().Format(DateLayout),
	)

	style := lipgloss.NewStyle().
		Background(lipgloss.Color(c.Code)).
		Foreground(lipgloss.Color(c.Contrast())).
		Width(CardWidth).
		Height(CardHeight).
		Padding(1, 1)

	if selected {
		style = style.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.SelectedBorder))
	} else {
		// hidden border keeps every card the same size
		style = style.Border(lipgloss.HiddenBorder())
	}

	return style.Render(content)
}

// RenderGrid lays out cards in rows of columns, drawing rows [startRow, endRow)
func RenderGrid(colors []*models.ColorRecord, selected, columns, startRow, endRow int) string {
	if columns <= 0 {
		columns = 1
	}

	gap := lipgloss.NewStyle().Width(CardGap).Render("")
	var rows []string
	for row := startRow; row < endRow; row++ {
		var cards []string
		for col := 0; col < columns; col++ {
			i := row*columns + col
			if i >= len(colors) {
				break
			}
			if col > 0 {
				cards = append(cards, gap)
			}
			cards = append(cards, RenderCard(colors[i], i == selected))
		}
		if len(cards) == 0 {
			break
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
