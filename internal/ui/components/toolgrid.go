package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mxtools/internal/desktop"
	"mxtools/internal/i18n"
	"mxtools/internal/layout"
	"mxtools/internal/models"
	"mxtools/internal/ui"
)

// ToolGrid renders a layout grid and tracks the selected button
type ToolGrid struct {
	grid        layout.Grid
	buttonWidth int
	cursor      int // Index into grid.Buttons
	offset      int // First visible row

	Width  int
	Height int
}

// NewToolGrid creates an empty grid view
func NewToolGrid(buttonWidth int) *ToolGrid {
	if buttonWidth <= 0 {
		buttonWidth = layout.ButtonWidth
	}
	return &ToolGrid{buttonWidth: buttonWidth, Width: 80, Height: 20}
}

// SetGrid replaces the grid. The selection follows the same descriptor when
// it is still shown, otherwise it returns to the first button.
func (g *ToolGrid) SetGrid(grid layout.Grid) {
	selected := ""
	if rec, ok := g.Current(); ok {
		selected = rec.Path
	}

	g.grid = grid
	g.cursor = 0
	g.offset = 0
	for i, b := range grid.Buttons {
		if b.Record.Path == selected {
			g.cursor = i
			break
		}
	}
	g.ensureVisible()
}

// Grid returns the grid being shown
func (g *ToolGrid) Grid() layout.Grid {
	return g.grid
}

// SetSize updates the visible area
func (g *ToolGrid) SetSize(width, height int) {
	g.Width = width
	if height < 1 {
		height = 1
	}
	g.Height = height
	g.ensureVisible()
}

// Cursor returns the selected button index
func (g *ToolGrid) Cursor() int {
	return g.cursor
}

// Offset returns the first visible row
func (g *ToolGrid) Offset() int {
	return g.offset
}

// Current returns the selected record
func (g *ToolGrid) Current() (models.Record, bool) {
	if g.cursor < 0 || g.cursor >= len(g.grid.Buttons) {
		return models.Record{}, false
	}
	return g.grid.Buttons[g.cursor].Record, true
}

// MoveLeft selects the previous button
func (g *ToolGrid) MoveLeft() {
	g.Select(g.cursor - 1)
}

// MoveRight selects the next button
func (g *ToolGrid) MoveRight() {
	g.Select(g.cursor + 1)
}

// MoveUp selects the button above, in the nearest button row
func (g *ToolGrid) MoveUp() {
	g.moveRows(-1)
}

// MoveDown selects the button below, in the nearest button row
func (g *ToolGrid) MoveDown() {
	g.moveRows(1)
}

// PageUp moves the selection up by a screen
func (g *ToolGrid) PageUp() {
	for i := 0; i < g.Height; i++ {
		g.moveRows(-1)
	}
}

// PageDown moves the selection down by a screen
func (g *ToolGrid) PageDown() {
	for i := 0; i < g.Height; i++ {
		g.moveRows(1)
	}
}

// Home selects the first button
func (g *ToolGrid) Home() {
	g.Select(0)
}

// End selects the last button
func (g *ToolGrid) End() {
	g.Select(len(g.grid.Buttons) - 1)
}

// Select moves the selection to button i if it exists
func (g *ToolGrid) Select(i int) {
	if i < 0 || i >= len(g.grid.Buttons) {
		return
	}
	g.cursor = i
	g.ensureVisible()
}

// ClickAt selects the button at view coordinates x, y
func (g *ToolGrid) ClickAt(x, y int) (models.Record, bool) {
	if x < 0 || y < 0 || y >= g.Height {
		return models.Record{}, false
	}
	i, ok := g.grid.ButtonAt(g.offset+y, x/g.buttonWidth)
	if !ok {
		return models.Record{}, false
	}
	g.Select(i)
	return g.grid.Buttons[i].Record, true
}

func (g *ToolGrid) moveRows(dir int) {
	if len(g.grid.Buttons) == 0 {
		return
	}
	cur := g.grid.Buttons[g.cursor]
	for row := cur.Row + dir; row >= 0 && row < len(g.grid.Rows); row += dir {
		r := g.grid.Rows[row]
		if r.Kind != layout.RowButtons {
			continue
		}
		col := min(cur.Col, len(r.Buttons)-1)
		g.Select(r.Buttons[col])
		return
	}
}

// ensureVisible scrolls so the selected row, and the label above the first
// row of a section, are on screen
func (g *ToolGrid) ensureVisible() {
	if len(g.grid.Buttons) == 0 {
		g.offset = 0
		return
	}
	row := g.grid.Buttons[g.cursor].Row
	top := row
	if top > 0 && g.grid.Rows[top-1].Kind == layout.RowLabel {
		top--
	}
	if top < g.offset {
		g.offset = top
	}
	if row >= g.offset+g.Height {
		g.offset = row - g.Height + 1
	}
	if maxOffset := max(len(g.grid.Rows)-g.Height, 0); g.offset > maxOffset {
		g.offset = maxOffset
	}
}

// View renders the visible rows
func (g *ToolGrid) View() string {
	if g.grid.Empty() {
		return ui.MutedStyle.Render(i18n.T("No tools match the search"))
	}

	end := min(g.offset+g.Height, len(g.grid.Rows))
	lines := make([]string, 0, end-g.offset)
	ruleWidth := max(g.grid.UsedColumns()*g.buttonWidth, g.buttonWidth)

	for _, r := range g.grid.Rows[g.offset:end] {
		switch r.Kind {
		case layout.RowSeparator:
			lines = append(lines, ui.RenderSeparator(ruleWidth))
		case layout.RowLabel:
			lines = append(lines, ui.CategoryStyle.Render(i18n.T(r.Category.Label())))
		case layout.RowButtons:
			cells := make([]string, 0, len(r.Buttons))
			for _, i := range r.Buttons {
				name := desktop.DisplayName(g.grid.Buttons[i].Record.Name)
				cells = append(cells, ui.RenderButton(name, g.buttonWidth, i == g.cursor))
			}
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		}
	}
	return strings.Join(lines, "\n")
}
