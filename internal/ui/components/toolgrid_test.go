package components

import (
	"fmt"
	"strings"
	"testing"

	"mxtools/internal/layout"
	"mxtools/internal/models"
)

// testGrid lays out sizes[i] records for the i-th category at columns
func testGrid(columns int, sizes ...int) layout.Grid {
	idx := models.NewIndex()
	for ci, n := range sizes {
		cat := models.Categories()[ci]
		for i := 0; i < n; i++ {
			idx.Add(models.Record{
				Path:     fmt.Sprintf("/%s/%d.desktop", cat.Label(), i),
				Name:     fmt.Sprintf("%s %d", cat.Label(), i),
				Category: cat,
			})
		}
	}
	return layout.Build(idx, columns)
}

func TestNewToolGrid(t *testing.T) {
	g := NewToolGrid(0)
	if _, ok := g.Current(); ok {
		t.Error("Empty grid should have no selection")
	}
	if !strings.Contains(g.View(), "No tools") {
		t.Errorf("Expected empty message, got %q", g.View())
	}
}

func TestToolGrid_MoveDownKeepsColumn(t *testing.T) {
	g := NewToolGrid(24)
	// Live: 3 buttons over 2 rows, Maintenance: 2 buttons
	g.SetGrid(testGrid(2, 3, 2))

	g.MoveRight()
	g.MoveDown()
	rec, _ := g.Current()
	if rec.Name != "Live 2" {
		t.Errorf("Expected Live 2 (clamped column), got %s", rec.Name)
	}

	g.MoveDown()
	rec, _ = g.Current()
	if rec.Name != "Maintenance 0" {
		t.Errorf("Expected to skip separator and label, got %s", rec.Name)
	}

	g.MoveUp()
	g.MoveUp()
	rec, _ = g.Current()
	if rec.Name != "Live 0" {
		t.Errorf("Expected Live 0, got %s", rec.Name)
	}
}

func TestToolGrid_LeftRightBounds(t *testing.T) {
	g := NewToolGrid(24)
	g.SetGrid(testGrid(4, 2))

	g.MoveLeft()
	if g.Cursor() != 0 {
		t.Errorf("Expected cursor 0, got %d", g.Cursor())
	}
	g.End()
	g.MoveRight()
	if g.Cursor() != 1 {
		t.Errorf("Expected cursor to stay on last button, got %d", g.Cursor())
	}
	g.Home()
	if g.Cursor() != 0 {
		t.Errorf("Expected Home to select first, got %d", g.Cursor())
	}
}

func TestToolGrid_ScrollsToSelection(t *testing.T) {
	g := NewToolGrid(24)
	g.SetSize(24, 3)
	g.SetGrid(testGrid(1, 10))

	g.End()
	if g.Offset() != len(g.Grid().Rows)-3 {
		t.Errorf("Expected offset %d, got %d", len(g.Grid().Rows)-3, g.Offset())
	}
	g.Home()
	if g.Offset() != 0 {
		t.Errorf("Expected label row to come back into view, got offset %d", g.Offset())
	}
}

func TestToolGrid_SetGridKeepsSelection(t *testing.T) {
	g := NewToolGrid(24)
	g.SetGrid(testGrid(2, 3, 2))
	g.Select(3) // Maintenance 0

	g.SetGrid(testGrid(5, 3, 2))
	rec, _ := g.Current()
	if rec.Name != "Maintenance 0" {
		t.Errorf("Expected selection to follow record, got %s", rec.Name)
	}

	g.SetGrid(testGrid(5, 1))
	if g.Cursor() != 0 {
		t.Errorf("Expected reset when record disappears, got %d", g.Cursor())
	}
}

func TestToolGrid_ClickAt(t *testing.T) {
	g := NewToolGrid(24)
	g.SetGrid(testGrid(3, 3))

	rec, ok := g.ClickAt(30, 1)
	if !ok || rec.Name != "Live 1" {
		t.Errorf("Expected Live 1, got %s (%v)", rec.Name, ok)
	}
	if g.Cursor() != 1 {
		t.Errorf("Click should select, got cursor %d", g.Cursor())
	}
	if _, ok := g.ClickAt(5, 0); ok {
		t.Error("Clicking a label should not hit a button")
	}
	if _, ok := g.ClickAt(90, 1); ok {
		t.Error("Clicking past the last column should miss")
	}
}

func TestToolGrid_View(t *testing.T) {
	g := NewToolGrid(24)
	g.SetGrid(testGrid(2, 1, 1))

	view := g.View()
	for _, want := range []string{"Live", "Maintenance", "Live 0", "─"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected %q in view:\n%s", want, view)
		}
	}
	if lines := strings.Count(view, "\n") + 1; lines != len(g.Grid().Rows) {
		t.Errorf("Expected one line per row, got %d", lines)
	}
}
