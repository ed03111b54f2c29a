// Package layout arranges indexed records into a wrapping grid of buttons
// grouped by category.
package layout

import "mxtools/internal/models"

// ButtonWidth is the width of one button cell in terminal columns
const ButtonWidth = 24

// RowKind tells what a grid row holds
type RowKind int

const (
	RowSeparator RowKind = iota
	RowLabel
	RowButtons
)

// Button is one record placed in the grid
type Button struct {
	Record models.Record
	Row    int // Index into Grid.Rows
	Col    int
}

// Row is one line of the grid
type Row struct {
	Kind     RowKind
	Category models.Category
	Buttons  []int // Indexes into Grid.Buttons, RowButtons only
}

// Grid is a fully built layout. It is replaced, never patched.
type Grid struct {
	Columns int // Columns available at build time
	Rows    []Row
	Buttons []Button
}

// Columns returns how many buttons fit in width, at least one
func Columns(width, buttonWidth int) int {
	if buttonWidth <= 0 {
		buttonWidth = ButtonWidth
	}
	if n := width / buttonWidth; n > 0 {
		return n
	}
	return 1
}

// Build lays out idx for the given number of columns. Every non-empty
// category gets a label row, preceded by a separator row unless it is the
// first section, followed by its buttons wrapped at columns.
func Build(idx *models.Index, columns int) Grid {
	if columns < 1 {
		columns = 1
	}
	g := Grid{Columns: columns}

	for _, cat := range idx.NonEmpty() {
		if len(g.Rows) > 0 {
			g.Rows = append(g.Rows, Row{Kind: RowSeparator, Category: cat})
		}
		g.Rows = append(g.Rows, Row{Kind: RowLabel, Category: cat})

		col := 0
		for _, rec := range idx.Records(cat) {
			if col == 0 {
				g.Rows = append(g.Rows, Row{Kind: RowButtons, Category: cat})
			}
			row := len(g.Rows) - 1
			g.Buttons = append(g.Buttons, Button{Record: rec, Row: row, Col: col})
			g.Rows[row].Buttons = append(g.Rows[row].Buttons, len(g.Buttons)-1)
			col++
			if col >= columns {
				col = 0
			}
		}
	}
	return g
}

// UsedColumns returns the widest button row in the grid
func (g Grid) UsedColumns() int {
	used := 0
	for _, r := range g.Rows {
		if len(r.Buttons) > used {
			used = len(r.Buttons)
		}
	}
	return used
}

// Empty reports whether the grid shows no sections
func (g Grid) Empty() bool {
	return len(g.Rows) == 0
}

// ButtonAt returns the button at a row and column
func (g Grid) ButtonAt(row, col int) (int, bool) {
	if row < 0 || row >= len(g.Rows) || col < 0 {
		return 0, false
	}
	r := g.Rows[row]
	if col >= len(r.Buttons) {
		return 0, false
	}
	return r.Buttons[col], true
}
