package layout

import "mxtools/internal/models"

// Engine builds grids and decides when a width change needs a
// rebuild. Rebuilds are always total.
type Engine struct {
	buttonWidth int
	width       int
	colCount    int // Widest row used by the last build
	maxElements int // Largest category of the last build
	builds      int
}

// NewEngine creates a layout engine. buttonWidth <= 0 selects ButtonWidth.
func NewEngine(buttonWidth int) *Engine {
	if buttonWidth <= 0 {
		buttonWidth = ButtonWidth
	}
	return &Engine{buttonWidth: buttonWidth}
}

// Build discards the current grid and lays out idx for width
func (e *Engine) Build(idx *models.Index, width int) Grid {
	e.width = width
	g := Build(idx, Columns(width, e.buttonWidth))
	e.colCount = g.UsedColumns()
	e.maxElements = idx.MaxCategorySize()
	e.builds++
	return g
}

// Resize records a new width and reports whether the grid must be rebuilt.
// No rebuild happens when the width or the column count is unchanged, or
// when every category already fits on one row and the new width only adds
// room.
func (e *Engine) Resize(width int) bool {
	if width == e.width {
		return false
	}
	e.width = width

	n := Columns(width, e.buttonWidth)
	if n == e.colCount {
		return false
	}
	if n > e.maxElements && e.colCount == e.maxElements {
		return false
	}
	return true
}

// Width returns the last width seen
func (e *Engine) Width() int {
	return e.width
}

// ButtonWidth returns the cell width used for column math
func (e *Engine) ButtonWidth() int {
	return e.buttonWidth
}

// ColCount returns the widest row of the current grid
func (e *Engine) ColCount() int {
	return e.colCount
}

// MaxElements returns the largest category size of the current grid
func (e *Engine) MaxElements() int {
	return e.maxElements
}

// Builds returns how many times the grid was built
func (e *Engine) Builds() int {
	return e.builds
}
