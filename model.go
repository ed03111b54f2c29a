package main

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toqueteos/webbrowser"

	"mxtools/internal/desktop"
	"mxtools/internal/i18n"
	"mxtools/internal/launch"
	"mxtools/internal/layout"
	"mxtools/internal/menu"
	"mxtools/internal/models"
	"mxtools/internal/scanner"
	"mxtools/internal/search"
	"mxtools/internal/system"
	"mxtools/internal/ui"
	"mxtools/internal/ui/components"
)

// Screen represents different screens in the app
type Screen int

const (
	ScreenScanning Screen = iota
	ScreenMain
	ScreenPager // Descriptor, changelog or dry-run diff
	ScreenAbout
)

// changelogCmd prints the packaged changelog
const changelogCmd = "zless /usr/share/doc/mxtools/changelog.gz"

// Rows taken by the header, search box, status bar and help bar
const (
	headerHeight = 4 // header line + bordered search box
	footerHeight = 2
)

// Messages
type scanCompleteMsg struct {
	index   *models.Index
	listing scanner.Listing
}

type changelogMsg struct {
	text string
	err  error
}

type menuToggledMsg struct {
	hidden bool
	err    error
}

type openedMsg struct {
	what string
	err  error
}

// Model is the main application model
type Model struct {
	ctx context.Context
	app *app

	index   *models.Index   // Everything that was scanned
	listing scanner.Listing // Descriptors before parsing, toggled in the menu
	active  *models.Index   // What the grid shows
	engine  *layout.Engine

	// UI Components
	grid   *components.ToolGrid
	pager  *components.Pager
	search textinput.Model
	help   help.Model
	keys   ui.KeyMap

	// State
	screen      Screen
	status      string
	iconPath    string
	menuHidden  bool
	width       int
	height      int
	sizeChanged bool
}

// NewModel creates the UI model for a wired app
func NewModel(ctx context.Context, a *app) *Model {
	ti := textinput.New()
	ti.Placeholder = i18n.T("Search tools")
	ti.Prompt = "🔍 "
	ti.CharLimit = 128

	m := &Model{
		ctx:        ctx,
		app:        a,
		index:      models.NewIndex(),
		active:     models.NewIndex(),
		engine:     layout.NewEngine(layout.ButtonWidth),
		grid:       components.NewToolGrid(layout.ButtonWidth),
		pager:      components.NewPager(),
		search:     ti,
		help:       help.New(),
		keys:       ui.DefaultKeyMap(),
		screen:     ScreenScanning,
		status:     i18n.T("Scanning tools..."),
		menuHidden: a.menu.Hidden(),
		width:      80,
		height:     24,
	}

	// Lay out for the last known size until the terminal reports one
	if w, h, ok := a.settings.Size(); ok {
		m.width, m.height = w, h
	}
	m.updateSizes()
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(i18n.T("MX Tools")), m.scanTools)
}

func (m *Model) scanTools() tea.Msg {
	idx, listing := m.app.scanner.Scan(m.ctx)
	return scanCompleteMsg{index: idx, listing: listing}
}

func (m *Model) loadChangelog() tea.Msg {
	out, err := m.app.runner.Output(m.ctx, changelogCmd)
	return changelogMsg{text: out, err: err}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.sizeChanged = true
		m.updateSizes()
		if m.screen != ScreenScanning && m.engine.Resize(m.gridWidth()) {
			m.rebuild()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case scanCompleteMsg:
		m.index = msg.index
		m.listing = msg.listing
		m.screen = ScreenMain
		m.rebuild()
		m.status = i18n.Tf(i18n.Tn("%d tool", "%d tools", m.index.Len()), m.index.Len())
		return m, nil

	case launch.FinishedMsg:
		m.status = i18n.Tf("Returned from %s", desktop.DisplayName(msg.Record.Name))
		return m, nil

	case changelogMsg:
		if msg.err != nil {
			m.status = i18n.Tf("Error: %v", msg.err)
			return m, nil
		}
		m.pager.ShowText(i18n.T("Changelog"), msg.text)
		m.screen = ScreenPager
		return m, nil

	case menuToggledMsg:
		if msg.err != nil {
			m.status = i18n.Tf("Error: %v", msg.err)
			return m, nil
		}
		m.menuHidden = msg.hidden
		if msg.hidden {
			m.status = i18n.T("Tools hidden from the menu")
		} else {
			m.status = i18n.T("Tools shown in the menu")
		}
		return m, nil

	case openedMsg:
		if msg.err != nil {
			m.app.logger.Warn("open failed", "what", msg.what, "err", msg.err)
			m.status = i18n.Tf("Error: %v", msg.err)
		}
		return m, nil
	}

	return m, nil
}

// rebuild lays out the active records from scratch
func (m *Model) rebuild() {
	m.active = search.Filter(m.index, m.search.Value())
	m.grid.SetGrid(m.engine.Build(m.active, m.gridWidth()))
	m.updateIcon()
}

func (m *Model) gridWidth() int {
	return max(m.width-ui.AppStyle.GetHorizontalPadding(), 1)
}

func (m *Model) updateSizes() {
	m.grid.SetSize(m.gridWidth(), max(m.height-headerHeight-footerHeight, 1))
	m.pager.SetSize(m.width-2, m.height-1)
	m.search.Width = max(m.gridWidth()-8, 10)
	m.help.Width = m.width
}

func (m *Model) updateIcon() {
	rec, ok := m.grid.Current()
	if !ok {
		m.iconPath = ""
		return
	}
	m.iconPath = m.app.icons.Resolve(m.ctx, rec.Icon)
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	switch m.screen {
	case ScreenPager:
		return m.handlePagerKeys(msg)
	case ScreenAbout:
		return m.handleAboutKeys(msg)
	case ScreenScanning:
		if key.Matches(msg, m.keys.Quit) {
			return m.quit()
		}
		return m, nil
	}

	if m.search.Focused() {
		return m.handleSearchKeys(msg)
	}
	return m.handleMainKeys(msg)
}

func (m *Model) handleMainKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Search):
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Escape):
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.rebuild()
		}
	case key.Matches(msg, m.keys.Launch):
		return m.launchCurrent()
	case key.Matches(msg, m.keys.Preview):
		return m.handlePreview()
	case key.Matches(msg, m.keys.About):
		m.screen = ScreenAbout
	case key.Matches(msg, m.keys.Manual):
		return m, m.openManual()
	case key.Matches(msg, m.keys.HideMenu):
		return m, m.toggleMenu()
	case key.Matches(msg, m.keys.MenuDiff):
		m.showMenuDiff()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	default:
		m.handleNavigation(msg)
	}
	return m, nil
}

// handleNavigation moves the grid selection
func (m *Model) handleNavigation(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.grid.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.grid.MoveDown()
	case key.Matches(msg, m.keys.Left):
		m.grid.MoveLeft()
	case key.Matches(msg, m.keys.Right):
		m.grid.MoveRight()
	case key.Matches(msg, m.keys.PageUp):
		m.grid.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.grid.PageDown()
	case key.Matches(msg, m.keys.Home):
		m.grid.Home()
	case key.Matches(msg, m.keys.End):
		m.grid.End()
	default:
		return false
	}
	m.updateIcon()
	return true
}

// handleSearchKeys handles key input while the search box has focus
func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		if m.search.Value() == "" {
			m.search.Blur()
			return m, nil
		}
		m.search.SetValue("")
		m.rebuild()
		return m, nil
	case tea.KeyEnter:
		m.search.Blur()
		return m.launchCurrent()
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
		m.handleNavigation(msg)
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.rebuild()
		m.status = i18n.Tf(i18n.Tn("%d tool", "%d tools", m.active.Len()), m.active.Len())
	}
	return m, cmd
}

func (m *Model) handlePagerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Escape) || key.Matches(msg, m.keys.Quit) {
		m.screen = ScreenMain
		return m, nil
	}
	var cmd tea.Cmd
	m.pager, cmd = m.pager.Update(msg)
	return m, cmd
}

func (m *Model) handleAboutKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Changelog):
		return m, m.loadChangelog
	case key.Matches(msg, m.keys.License):
		return m, openURL("license", m.app.opts.LicenseURL)
	case key.Matches(msg, m.keys.Close):
		m.screen = ScreenMain
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.screen == ScreenPager {
		var cmd tea.Cmd
		m.pager, cmd = m.pager.Update(msg)
		return m, cmd
	}
	if m.screen != ScreenMain {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.grid.MoveUp()
		m.updateIcon()
	case tea.MouseButtonWheelDown:
		m.grid.MoveDown()
		m.updateIcon()
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionRelease {
			return m, nil
		}
		x := msg.X - ui.AppStyle.GetPaddingLeft()
		if rec, ok := m.grid.ClickAt(x, msg.Y-headerHeight); ok {
			m.updateIcon()
			return m, m.app.launcher.Exec(rec)
		}
	}
	return m, nil
}

// launchCurrent suspends the UI while the selected tool runs
func (m *Model) launchCurrent() (tea.Model, tea.Cmd) {
	rec, ok := m.grid.Current()
	if !ok {
		return m, nil
	}
	m.status = i18n.Tf("Running %s", desktop.DisplayName(rec.Name))
	return m, m.app.launcher.Exec(rec)
}

func (m *Model) handlePreview() (tea.Model, tea.Cmd) {
	rec, ok := m.grid.Current()
	if !ok {
		return m, nil
	}
	data, err := m.app.fs.ReadFile(rec.Path)
	if err != nil {
		m.status = i18n.Tf("Error: %v", err)
		return m, nil
	}
	m.pager.ShowDescriptor(rec.Path, string(data))
	m.screen = ScreenPager
	return m, nil
}

func (m *Model) toggleMenu() tea.Cmd {
	hide := !m.menuHidden
	paths := m.listing.Paths()
	return func() tea.Msg {
		err := m.app.menu.SetHidden(m.ctx, paths, hide)
		return menuToggledMsg{hidden: hide, err: err}
	}
}

// showMenuDiff previews the files the next toggle writes or removes
func (m *Model) showMenuDiff() {
	changes := m.app.menu.Plan(m.listing.Paths(), !m.menuHidden)
	if len(changes) == 0 {
		m.status = i18n.T("No menu changes")
		return
	}
	m.pager.ShowDiff(i18n.T("Menu changes"), menu.Render(changes))
	m.screen = ScreenPager
}

// openManual runs the local manual when installed, else the online one
func (m *Model) openManual() tea.Cmd {
	if system.Exists(m.app.fs, m.app.opts.Manual) {
		return tea.ExecProcess(system.Command(m.ctx, m.app.opts.Manual), func(err error) tea.Msg {
			return openedMsg{what: "manual", err: err}
		})
	}
	return openURL("manual", m.app.opts.ManualURL)
}

func openURL(what, url string) tea.Cmd {
	return func() tea.Msg {
		return openedMsg{what: what, err: webbrowser.Open(url)}
	}
}

// quit saves the window size and exits
func (m *Model) quit() (tea.Model, tea.Cmd) {
	if m.sizeChanged {
		m.app.settings.SetGeometry(m.width, m.height)
	}
	m.app.saveSettings()
	return m, tea.Quit
}

func (m *Model) View() string {
	switch m.screen {
	case ScreenPager:
		return ui.AppStyle.Render(m.pager.View())
	case ScreenAbout:
		about := components.RenderAbout(version)
		return ui.AppStyle.Render(about + "\n" + ui.HelpBarStyle.Render(m.help.ShortHelpView(m.keys.AboutHelp())))
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	searchStyle := ui.SearchStyle
	if m.search.Focused() {
		searchStyle = ui.SearchActiveStyle
	}
	b.WriteString(searchStyle.Width(max(m.gridWidth()-2, 10)).Render(m.search.View()))
	b.WriteString("\n")

	if m.screen == ScreenScanning {
		b.WriteString(ui.MutedStyle.Render(m.status))
	} else {
		b.WriteString(m.grid.View())
	}

	// Pin the footer to the bottom
	used := strings.Count(b.String(), "\n") + 1
	if pad := m.height - footerHeight - used; pad > 0 {
		b.WriteString(strings.Repeat("\n", pad))
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(ui.HelpBarStyle.Render(m.help.View(m.keys)))

	return ui.AppStyle.Render(b.String())
}

func (m *Model) renderHeader() string {
	title := i18n.T("MX Tools")
	ver := ui.VersionStyle.Render("v" + version)
	menuState := ""
	if m.menuHidden {
		menuState = ui.MutedStyle.Render("  " + i18n.T("[hidden in menu]"))
	}
	return ui.HeaderStyle.Render(title) + " " + ver + menuState
}

func (m *Model) renderStatusBar() string {
	rec, ok := m.grid.Current()
	if !ok || m.screen != ScreenMain {
		return ui.StatusBarStyle.Render(m.status)
	}

	parts := []string{m.status}
	if rec.Comment != "" {
		parts = append(parts, ui.CommentStyle.Render(rec.Comment))
	}
	if m.iconPath != "" {
		parts = append(parts, m.iconPath)
	}
	line := strings.Join(parts, "  •  ")
	return ui.StatusBarStyle.Render(ui.Truncate(line, max(m.width-4, 10)))
}
