package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"mxtools/internal/i18n"
)

// KeyMap defines all keybindings for the launcher
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Launch   key.Binding
	Search   key.Binding
	Escape   key.Binding
	Preview  key.Binding // Show the descriptor of the current tool
	About    key.Binding
	Manual   key.Binding // Open the user manual
	HideMenu key.Binding // Toggle tools in the desktop menu
	MenuDiff key.Binding // Show what the toggle would write
	Help     key.Binding
	Quit     key.Binding

	// About screen
	Changelog key.Binding
	License   key.Binding
	Close     key.Binding
}

// DefaultKeyMap returns the default keybindings. Descriptions go through
// the message catalog, so build it after i18n.Init.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", i18n.T("up")),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", i18n.T("down")),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", i18n.T("left")),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", i18n.T("right")),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("PgUp", i18n.T("page up")),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("PgDn", i18n.T("page down")),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("Home/g", i18n.T("first")),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("End/G", i18n.T("last")),
		),
		Launch: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", i18n.T("launch")),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", i18n.T("search")),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", i18n.T("back")),
		),
		Preview: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", i18n.T("view descriptor")),
		),
		About: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", i18n.T("about")),
		),
		Manual: key.NewBinding(
			key.WithKeys("f1", "m"),
			key.WithHelp("F1/m", i18n.T("manual")),
		),
		HideMenu: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", i18n.T("hide in menu")),
		),
		MenuDiff: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", i18n.T("menu changes")),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", i18n.T("help")),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", i18n.T("quit")),
		),
		Changelog: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", i18n.T("changelog")),
		),
		License: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", i18n.T("license")),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "q", "enter"),
			key.WithHelp("esc", i18n.T("close")),
		),
	}
}

// ShortHelp returns keybindings to show in short help
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Launch, k.Search, k.Preview, k.HideMenu, k.Help, k.Quit}
}

// AboutHelp returns the keybindings of the about screen
func (k KeyMap) AboutHelp() []key.Binding {
	return []key.Binding{k.Changelog, k.License, k.Close}
}

// FullHelp returns all keybindings for full help
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Navigation
		{k.Up, k.Down, k.Left, k.Right, k.PageUp, k.PageDown, k.Home, k.End},
		// Tools
		{k.Launch, k.Search, k.Escape, k.Preview},
		// General
		{k.HideMenu, k.MenuDiff, k.About, k.Manual, k.Help, k.Quit},
	}
}
