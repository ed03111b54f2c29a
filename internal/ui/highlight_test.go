package ui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestHighlightLine_KeepsText(t *testing.T) {
	h := NewHighlighter()
	lines := []string{
		"[Desktop Entry]",
		"Name=MX Boot Options",
		"Name[de]=MX Boot-Optionen",
		"# comment",
		"",
	}
	for _, line := range lines {
		got := ansi.Strip(h.HighlightLine(line))
		if got != line {
			t.Errorf("Expected visible text %q, got %q", line, got)
		}
	}
}

func TestHighlightLines(t *testing.T) {
	h := NewHighlighter()
	got := h.HighlightLines([]string{"Exec=foo", "Terminal=true"})
	if len(got) != 2 {
		t.Errorf("Expected 2 lines, got %d", len(got))
	}
}
