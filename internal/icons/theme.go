package icons

import (
	"path/filepath"
	"strings"

	"mxtools/internal/system"

	"gopkg.in/ini.v1"
)

// FallbackTheme is searched after the configured theme and its parents
const FallbackTheme = "hicolor"

// Theme finds icons by name in an installed icon theme
type Theme interface {
	// Lookup returns the file for name, or false if the theme lacks it
	Lookup(name string) (string, bool)
}

// XDGTheme resolves icons through index.theme files below the icon roots
type XDGTheme struct {
	fs     system.FileSystem
	roots  []string
	chain  []string
	dirs   map[string][]string
	loaded map[string]bool
}

// ThemeName reads gtk-icon-theme-name from a GTK settings.ini. It returns
// FallbackTheme when the file or key is missing.
func ThemeName(fsys system.FileSystem, settingsPath string) string {
	data, err := fsys.ReadFile(settingsPath)
	if err != nil {
		return FallbackTheme
	}
	cfg, err := ini.Load(data)
	if err != nil {
		return FallbackTheme
	}
	name := strings.TrimSpace(cfg.Section("Settings").Key("gtk-icon-theme-name").String())
	if name == "" {
		return FallbackTheme
	}
	return name
}

// DefaultRoots returns the icon theme base directories in lookup order
func DefaultRoots(home string) []string {
	return []string{
		filepath.Join(home, ".local", "share", "icons"),
		filepath.Join(home, ".icons"),
		"/usr/local/share/icons",
		"/usr/share/icons",
	}
}

// NewXDGTheme creates a theme rooted at roots, starting with name and
// following Inherits= entries.
func NewXDGTheme(fsys system.FileSystem, roots []string, name string) *XDGTheme {
	t := &XDGTheme{
		fs:     fsys,
		roots:  roots,
		dirs:   make(map[string][]string),
		loaded: make(map[string]bool),
	}
	t.load(name)
	if !t.loaded[FallbackTheme] {
		t.load(FallbackTheme)
	}
	return t
}

// Chain returns the themes searched, in order
func (t *XDGTheme) Chain() []string {
	return t.chain
}

func (t *XDGTheme) load(name string) {
	if name == "" || t.loaded[name] {
		return
	}
	t.loaded[name] = true
	t.chain = append(t.chain, name)

	var parents []string
	for _, root := range t.roots {
		data, err := t.fs.ReadFile(filepath.Join(root, name, "index.theme"))
		if err != nil {
			continue
		}
		cfg, err := ini.Load(data)
		if err != nil {
			continue
		}
		sec := cfg.Section("Icon Theme")
		t.dirs[name] = splitList(sec.Key("Directories").String())
		parents = splitList(sec.Key("Inherits").String())
		break
	}
	for _, p := range parents {
		t.load(p)
	}
}

func (t *XDGTheme) Lookup(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	for _, theme := range t.chain {
		for _, root := range t.roots {
			for _, dir := range t.dirs[theme] {
				for _, ext := range extensions {
					p := filepath.Join(root, theme, dir, name+ext)
					if system.Exists(t.fs, p) {
						return p, true
					}
				}
			}
		}
	}
	return "", false
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
