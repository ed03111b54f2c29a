package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

func TestColors(t *testing.T) {
	colors := []lipgloss.Color{
		Primary, Secondary, Success, Warning, Error,
		Muted, Foreground, Border, Selected,
	}

	for _, c := range colors {
		if c == "" {
			t.Error("Color should not be empty")
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Boot Options", 20, "Boot Options"},
		{"Boot Options", 6, "Boot …"},
		{"Boot Options", 0, ""},
		{"日本語のツール", 7, "日本語…"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d): expected %q, got %q", tt.in, tt.width, tt.want, got)
		}
	}
}

func TestRenderButton_FixedWidth(t *testing.T) {
	for _, label := range []string{"Conky", "A very long tool name that overflows"} {
		for _, active := range []bool{false, true} {
			got := RenderButton(label, 24, active)
			if w := lipgloss.Width(got); w != 24 {
				t.Errorf("RenderButton(%q, %v): expected width 24, got %d", label, active, w)
			}
		}
	}
}

func TestRenderSeparator(t *testing.T) {
	got := RenderSeparator(10)
	if !strings.Contains(got, "─") || lipgloss.Width(got) != 10 {
		t.Errorf("Expected 10 cell rule, got %q", got)
	}
	if runewidth.StringWidth(lipgloss.NewStyle().Render(RenderSeparator(0))) < 1 {
		t.Error("Separator should never be empty")
	}
}

func TestStylesRender(t *testing.T) {
	styles := map[string]lipgloss.Style{
		"App":      AppStyle,
		"Header":   HeaderStyle,
		"Category": CategoryStyle,
		"Search":   SearchStyle,
		"Status":   StatusBarStyle,
		"Dialog":   DialogStyle,
	}
	for name, s := range styles {
		if s.Render("x") == "" {
			t.Errorf("%s style should render content", name)
		}
	}
}
