package state

// MinColumns is the narrowest grid the board will lay out
const MinColumns = 2

// GridState tracks the selected card and how the cards wrap into rows.
// Selection is a flat index into the color list.
type GridState struct {
	selected  int
	columns   int
	rowOffset int
}

// NewGridState creates a GridState with the minimum column count
func NewGridState() *GridState {
	return &GridState{columns: MinColumns}
}

// Selected returns the index of the selected card
func (g *GridState) Selected() int {
	return g.selected
}

// Columns returns the number of cards per row
func (g *GridState) Columns() int {
	return g.columns
}

// RowOffset returns the first visible row
func (g *GridState) RowOffset() int {
	return g.rowOffset
}

// Resize recomputes the column count for a terminal width.
// cardWidth is the full rendered width of one card including its gap.
func (g *GridState) Resize(width, cardWidth int) {
	cols := MinColumns
	if cardWidth > 0 && width/cardWidth > cols {
		cols = width / cardWidth
	}
	g.columns = cols
}

// Clamp keeps the selection inside [0, total)
func (g *GridState) Clamp(total int) {
	if total <= 0 {
		g.selected = 0
		g.rowOffset = 0
		return
	}
	if g.selected >= total {
		g.selected = total - 1
	}
	if g.selected < 0 {
		g.selected = 0
	}
}

// Next moves one card right, wrapping to the next row
func (g *GridState) Next(total int) {
	if g.selected < total-1 {
		g.selected++
	}
}

// Prev moves one card left, wrapping to the previous row
func (g *GridState) Prev() {
	if g.selected > 0 {
		g.selected--
	}
}

// Down moves one row down, landing on the last card if the row below is short
func (g *GridState) Down(total int) {
	if total == 0 {
		return
	}
	target := g.selected + g.columns
	lastRow := (total - 1) / g.columns
	if g.selected/g.columns >= lastRow {
		return
	}
	if target > total-1 {
		target = total - 1
	}
	g.selected = target
}

// Up moves one row up
func (g *GridState) Up() {
	if g.selected-g.columns >= 0 {
		g.selected -= g.columns
	}
}

// Last selects the final card
func (g *GridState) Last(total int) {
	if total > 0 {
		g.selected = total - 1
	}
}

// VisibleRows adjusts the scroll offset so the selected row is on screen and
// returns the half-open range of rows to draw.
func (g *GridState) VisibleRows(total, maxRows int) (start, end int) {
	rows := (total + g.columns - 1) / g.columns
	if maxRows <= 0 || rows <= maxRows {
		g.rowOffset = 0
		return 0, rows
	}

	selectedRow := g.selected / g.columns
	if selectedRow < g.rowOffset {
		g.rowOffset = selectedRow
	}
	if selectedRow >= g.rowOffset+maxRows {
		g.rowOffset = selectedRow - maxRows + 1
	}
	if g.rowOffset > rows-maxRows {
		g.rowOffset = rows - maxRows
	}

	return g.rowOffset, g.rowOffset + maxRows
}
