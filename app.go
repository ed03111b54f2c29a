package main

import (
	"context"
	"os"
	"path/filepath"

	"charm.land/log/v2"

	"mxtools/internal/config"
	"mxtools/internal/desktop"
	"mxtools/internal/i18n"
	"mxtools/internal/icons"
	"mxtools/internal/launch"
	"mxtools/internal/logging"
	"mxtools/internal/menu"
	"mxtools/internal/scanner"
	"mxtools/internal/system"
	"mxtools/internal/terminal"
)

// appOptions selects the system the app runs against. Zero values select
// the real one.
type appOptions struct {
	ConfigDir  string
	Home       string
	SearchDir  string // --dir, wins over settings
	LocaleDir  string
	Logger     *log.Logger
	Runner     system.Runner
	FS         system.FileSystem
	Env        *system.Environment
	Locale     *desktop.Locale
	LookPath   terminal.LookPathFunc
	Manual     string // Local manual command
	ManualURL  string
	LicenseURL string
}

// app wires the launcher services together
type app struct {
	opts      appOptions
	settings  *config.Settings
	logger    *log.Logger
	runner    system.Runner
	fs        system.FileSystem
	env       system.Environment
	locale    desktop.Locale
	scanner   *scanner.Scanner
	icons     *icons.Resolver
	launcher  *launch.Launcher
	menu      *menu.Menu
	configDir string
}

// buildOptions returns the options used by the commands
var buildOptions = func() appOptions {
	return appOptions{}
}

func newApp(ctx context.Context, opts appOptions) *app {
	if opts.ConfigDir == "" {
		opts.ConfigDir = config.ConfigDir()
	}
	if opts.Home == "" {
		opts.Home, _ = os.UserHomeDir()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	if opts.Runner == nil {
		opts.Runner = system.NewShellRunner()
	}
	if opts.FS == nil {
		opts.FS = system.OSFileSystem{}
	}
	if opts.Manual == "" {
		opts.Manual = "/usr/bin/mx-manual"
	}
	if opts.ManualURL == "" {
		opts.ManualURL = "file:///usr/local/share/doc/mxum.html#toc-Subsection-3.2"
	}
	if opts.LicenseURL == "" {
		opts.LicenseURL = "file:///usr/share/doc/mxtools/license.html"
	}
	logger := opts.Logger

	settings, err := config.Load(opts.ConfigDir)
	if err != nil {
		logger.Warn("using default settings", "err", err)
		settings = config.Default()
	}
	// Overrides apply to this run only and are never saved
	effective := *settings
	if err := effective.ApplyEnv(opts.ConfigDir); err != nil {
		logger.Warn("ignoring environment overrides", "err", err)
	}
	if opts.SearchDir != "" {
		effective.SearchDir = opts.SearchDir
	}

	loc := desktop.DetectLocale()
	if opts.Locale != nil {
		loc = *opts.Locale
	}
	i18n.Init(opts.LocaleDir, loc)

	env := system.Environment{}
	if opts.Env != nil {
		env = *opts.Env
	} else {
		env = system.Probe(ctx, opts.Runner)
	}
	logger.Debug("environment", "rootfs", env.RootFSType, "desktop", env.CurrentDesktop, "session", env.SessionDesktop, "locale", loc.Name())

	term, err := terminal.Detect(effective.Terminal, opts.LookPath)
	if err != nil {
		logger.Warn("terminal detection failed", "err", err, "using", term.Name)
	}

	themeName := icons.ThemeName(opts.FS, filepath.Join(opts.Home, ".config", "gtk-3.0", "settings.ini"))
	theme := icons.NewXDGTheme(opts.FS, icons.DefaultRoots(opts.Home), themeName)

	return &app{
		opts:     opts,
		settings: settings,
		logger:   logger,
		runner:   opts.Runner,
		fs:       opts.FS,
		env:      env,
		locale:   loc,
		scanner: scanner.New(scanner.Options{
			Dir:    effective.SearchDir,
			Runner: opts.Runner,
			FS:     opts.FS,
			Env:    env,
			Locale: loc,
			Logger: logger,
		}),
		icons: icons.NewResolver(icons.Options{
			FS:     opts.FS,
			Runner: opts.Runner,
			Theme:  theme,
			Home:   opts.Home,
			Size:   effective.IconSize,
			Logger: logger,
		}),
		launcher:  launch.New(opts.Runner, term, logger),
		menu:      menu.New(menu.Options{Home: opts.Home, Runner: opts.Runner, Logger: logger}),
		configDir: opts.ConfigDir,
	}
}

// saveSettings writes settings back, logging failures
func (a *app) saveSettings() {
	if err := a.settings.Save(a.configDir); err != nil {
		a.logger.Warn("failed to save settings", "err", err)
	}
}
