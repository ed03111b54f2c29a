package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Colors
var (
	Primary    = lipgloss.Color("#2E86DE") // MX blue
	Secondary  = lipgloss.Color("#06B6D4") // Cyan
	Success    = lipgloss.Color("#10B981") // Green
	Warning    = lipgloss.Color("#F59E0B") // Amber
	Error      = lipgloss.Color("#EF4444") // Red
	Muted      = lipgloss.Color("#6B7280") // Gray
	Foreground = lipgloss.Color("#F9FAFB") // Light
	Border     = lipgloss.Color("#374151") // Border gray
	Selected   = lipgloss.Color("#1E5AA8") // Dark blue
)

// Styles
var (
	// App container
	AppStyle = lipgloss.NewStyle().
			Padding(0, 1)

	// Header
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			Padding(0, 1)

	VersionStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Search box
	SearchStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)

	SearchActiveStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Primary).
				Padding(0, 1)

	// Category label row
	CategoryStyle = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true).
			Padding(0, 1)

	// Separator row
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(Border)

	// Tool buttons
	ButtonStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Padding(0, 1)

	ButtonActiveStyle = lipgloss.NewStyle().
				Foreground(Foreground).
				Background(Selected).
				Padding(0, 1).
				Bold(true)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 1)

	CommentStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Italic(true)

	// Help bar
	HelpBarStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 1)

	// Muted text
	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// Dialog box style
	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(Success)
)

// Truncate shortens s to width terminal cells, adding an ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// RenderButton renders a tool label padded to exactly width cells
func RenderButton(label string, width int, active bool) string {
	style := ButtonStyle
	if active {
		style = ButtonActiveStyle
	}
	inner := width - style.GetHorizontalPadding()
	label = runewidth.FillRight(Truncate(label, inner), inner)
	return style.Render(label)
}

// RenderSeparator renders a horizontal rule width cells wide
func RenderSeparator(width int) string {
	if width < 1 {
		width = 1
	}
	return SeparatorStyle.Render(strings.Repeat("─", width))
}
