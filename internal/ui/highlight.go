package ui

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// Highlighter colors desktop entry files
type Highlighter struct {
	style *chroma.Style
	lexer chroma.Lexer
}

// NewHighlighter creates a highlighter for key=value descriptor syntax
func NewHighlighter() *Highlighter {
	lexer := lexers.Get("ini")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return &Highlighter{
		style: styles.Get("catppuccin-mocha"),
		lexer: chroma.Coalesce(lexer),
	}
}

// HighlightLine highlights a single descriptor line
func (h *Highlighter) HighlightLine(line string) string {
	iterator, err := h.lexer.Tokenise(nil, line)
	if err != nil {
		return line
	}

	var result strings.Builder
	for token := iterator(); token != chroma.EOF; token = iterator() {
		entry := h.style.Get(token.Type)
		text := strings.TrimSuffix(token.Value, "\n")

		if entry.Colour.IsSet() {
			styled := lipgloss.NewStyle().Foreground(lipgloss.Color(entry.Colour.String()))
			if entry.Bold == chroma.Yes {
				styled = styled.Bold(true)
			}
			if entry.Italic == chroma.Yes {
				styled = styled.Italic(true)
			}
			result.WriteString(styled.Render(text))
		} else {
			result.WriteString(text)
		}
	}

	return result.String()
}

// HighlightLines highlights multiple lines
func (h *Highlighter) HighlightLines(lines []string) []string {
	result := make([]string, len(lines))
	for i, line := range lines {
		result[i] = h.HighlightLine(line)
	}
	return result
}
