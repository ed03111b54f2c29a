package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"mxtools/internal/ui"
)

// Pager shows a scrollable text: a descriptor, the changelog or a diff
type Pager struct {
	viewport    viewport.Model
	highlighter *ui.Highlighter

	Title      string
	Subtitle   string
	TotalLines int

	// Dimensions
	Width  int
	Height int

	lineNumStyle lipgloss.Style
	headerStyle  lipgloss.Style
	infoStyle    lipgloss.Style
	addStyle     lipgloss.Style
	delStyle     lipgloss.Style
	borderStyle  lipgloss.Style
}

// NewPager creates an empty pager
func NewPager() *Pager {
	vp := viewport.New(80, 20)
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return &Pager{
		viewport:    vp,
		highlighter: ui.NewHighlighter(),
		Width:       80,
		Height:      20,
		lineNumStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6c7086")).
			Width(4).
			Align(lipgloss.Right),
		headerStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ui.Primary),
		infoStyle: lipgloss.NewStyle().
			Foreground(ui.Muted),
		addStyle: lipgloss.NewStyle().Foreground(ui.Success),
		delStyle: lipgloss.NewStyle().Foreground(ui.Error),
		borderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.Primary).
			Padding(0, 1),
	}
}

// SetSize updates the viewport dimensions
func (p *Pager) SetSize(width, height int) {
	p.Width = width
	p.Height = height

	// header (3 lines) and border (2 lines)
	p.viewport.Height = max(height-5, 3)
	p.viewport.Width = max(width-4, 20)
}

// ShowDescriptor displays descriptor text with line numbers and highlighting
func (p *Pager) ShowDescriptor(path, text string) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	maxWidth := max(p.viewport.Width-8, 20)

	var b strings.Builder
	for i, line := range lines {
		line = ansi.Truncate(line, maxWidth, "…")
		b.WriteString(p.lineNumStyle.Render(fmt.Sprintf("%d", i+1)) + " │ " + p.highlighter.HighlightLine(line))
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
	}
	p.set(path, fmt.Sprintf("%d lines", len(lines)), b.String(), len(lines))
}

// ShowText displays plain text
func (p *Pager) ShowText(title, text string) {
	text = strings.TrimRight(text, "\n")
	p.set(title, "", text, strings.Count(text, "\n")+1)
}

// ShowDiff displays a unified diff, coloring added and removed lines
func (p *Pager) ShowDiff(title, diff string) {
	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			lines[i] = p.headerStyle.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = p.addStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = p.delStyle.Render(line)
		}
	}
	p.set(title, "", strings.Join(lines, "\n"), len(lines))
}

func (p *Pager) set(title, subtitle, content string, total int) {
	p.Title = title
	p.Subtitle = subtitle
	p.TotalLines = total
	p.viewport.SetContent(content)
	p.viewport.GotoTop()
}

// Update handles messages for viewport scrolling
func (p *Pager) Update(msg tea.Msg) (*Pager, tea.Cmd) {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// View renders the pager
func (p *Pager) View() string {
	var b strings.Builder

	b.WriteString(p.headerStyle.Render(p.Title))
	if p.Subtitle != "" {
		b.WriteString(p.infoStyle.Render("  " + p.Subtitle))
	}
	b.WriteString("\n")
	b.WriteString(ui.RenderSeparator(max(p.Width-4, 1)) + "\n")

	b.WriteString(p.viewport.View())

	if p.TotalLines > p.viewport.Height {
		b.WriteString("\n" + p.infoStyle.Render(fmt.Sprintf("─── %.0f%% ───", p.viewport.ScrollPercent()*100)))
	}

	return p.borderStyle.
		Width(p.Width).
		Render(b.String())
}

// ScrollPercent reports how far the content is scrolled
func (p *Pager) ScrollPercent() float64 {
	return p.viewport.ScrollPercent()
}
