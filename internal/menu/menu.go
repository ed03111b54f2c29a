// Package menu hides the indexed tools from the desktop menu by shadowing
// their descriptors in the user's applications directory.
package menu

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"charm.land/log/v2"

	"mxtools/internal/logging"
	"mxtools/internal/system"
)

const (
	// MarkerFile is checked to tell whether the tools are currently hidden
	MarkerFile = "mx-user.desktop"

	noDisplayLine = "NoDisplay=true"

	restartPanelCmd = "which xfce4-panel >/dev/null 2>&1 && xfce4-panel --restart"
)

var visibilityKey = regexp.MustCompile(`^(NoDisplay|Hidden)=`)

// Action is what happens to a shadow copy
type Action int

const (
	ActionWrite Action = iota
	ActionRemove
)

// Change is one planned shadow copy update
type Change struct {
	Source string // Descriptor in the search directory
	Target string // Shadow copy in the user's applications directory
	Action Action
	Before string // Current target content, "" when absent
	After  string // Target content after the change, "" when removed
}

// Options configures a Menu
type Options struct {
	Home   string
	Runner system.Runner
	Logger *log.Logger
}

// Menu toggles tool visibility in the desktop menu
type Menu struct {
	appsDir string
	runner  system.Runner
	logger  *log.Logger
}

// New creates a Menu for the user's home directory
func New(opts Options) *Menu {
	if opts.Home == "" {
		opts.Home, _ = os.UserHomeDir()
	}
	if opts.Runner == nil {
		opts.Runner = system.NewShellRunner()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	return &Menu{
		appsDir: AppsDir(opts.Home),
		runner:  opts.Runner,
		logger:  opts.Logger,
	}
}

// AppsDir returns the user's applications directory
func AppsDir(home string) string {
	return filepath.Join(home, ".local", "share", "applications")
}

// Dir returns the directory holding shadow copies
func (m *Menu) Dir() string {
	return m.appsDir
}

// Hidden reports whether the marker descriptor carries NoDisplay=true.
// All tools are toggled together, so one file tells the state.
func (m *Menu) Hidden() bool {
	data, err := os.ReadFile(filepath.Join(m.appsDir, MarkerFile))
	if err != nil {
		return false
	}
	return strings.Contains(string(data), noDisplayLine)
}

// HideContent drops NoDisplay and Hidden lines from a descriptor and adds
// NoDisplay=true after every line mentioning Exec
func HideContent(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines)+1)
	for _, line := range lines {
		if visibilityKey.MatchString(line) {
			continue
		}
		out = append(out, line)
		if strings.Contains(line, "Exec") {
			out = append(out, noDisplayLine)
		}
	}
	return strings.Join(out, "\n")
}

// Plan computes the changes needed to hide or show the descriptors at paths.
// Unreadable sources are skipped when hiding; absent copies are skipped when
// showing.
func (m *Menu) Plan(paths []string, hide bool) []Change {
	var changes []Change
	for _, src := range paths {
		target := filepath.Join(m.appsDir, filepath.Base(src))
		before := ""
		if data, err := os.ReadFile(target); err == nil {
			before = string(data)
		}

		if !hide {
			if _, err := os.Stat(target); err != nil {
				continue
			}
			changes = append(changes, Change{Source: src, Target: target, Action: ActionRemove, Before: before})
			continue
		}

		data, err := os.ReadFile(src)
		if err != nil {
			m.logger.Debug("skipping unreadable descriptor", "path", src, "err", err)
			continue
		}
		changes = append(changes, Change{
			Source: src,
			Target: target,
			Action: ActionWrite,
			Before: before,
			After:  HideContent(string(data)),
		})
	}
	return changes
}

// Apply performs planned changes and restarts the panel
func (m *Menu) Apply(ctx context.Context, changes []Change) error {
	if err := os.MkdirAll(m.appsDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", m.appsDir, err)
	}

	var errs []error
	for _, c := range changes {
		switch c.Action {
		case ActionWrite:
			if err := os.WriteFile(c.Target, []byte(c.After), 0644); err != nil {
				errs = append(errs, fmt.Errorf("failed to write %s: %w", c.Target, err))
			}
		case ActionRemove:
			if err := os.Remove(c.Target); err != nil && !errors.Is(err, os.ErrNotExist) {
				errs = append(errs, fmt.Errorf("failed to remove %s: %w", c.Target, err))
			}
		}
	}

	m.logger.Debug("menu visibility updated", "changes", len(changes))
	if _, err := m.runner.Output(ctx, restartPanelCmd); err != nil {
		m.logger.Warn("panel restart failed", "err", err)
	}
	return errors.Join(errs...)
}

// SetHidden hides or shows the descriptors at paths
func (m *Menu) SetHidden(ctx context.Context, paths []string, hide bool) error {
	return m.Apply(ctx, m.Plan(paths, hide))
}
