package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mxtools/internal/i18n"
	"mxtools/internal/ui"
)

// HomePage is shown in the about box
const HomePage = "https://mxlinux.org"

// RenderAbout renders the about box for version
func RenderAbout(version string) string {
	var b strings.Builder
	b.WriteString(ui.HeaderStyle.Render(i18n.T("MX Tools")) + "\n")
	b.WriteString(ui.VersionStyle.Render(i18n.T("Version: ")+version) + "\n\n")
	b.WriteString(i18n.T("Configuration Tools for MX Linux") + "\n")
	b.WriteString(ui.MutedStyle.Render(HomePage) + "\n\n")
	b.WriteString(i18n.T("Copyright (c) MX Linux"))

	return ui.DialogStyle.Render(lipgloss.NewStyle().Align(lipgloss.Center).Render(b.String()))
}
