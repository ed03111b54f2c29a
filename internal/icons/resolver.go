// Package icons maps Icon= tokens to image files.
package icons

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"mxtools/internal/logging"
	"mxtools/internal/system"

	"charm.land/log/v2"
)

// DefaultSize is the hicolor size probed when no icon size is configured
const DefaultSize = 48

// extensions are probed in this order
var extensions = []string{".png", ".svg", ".xpm"}

// Resolver finds the image file for an icon token. Results, including
// misses, are cached for the lifetime of the resolver.
type Resolver struct {
	fs     system.FileSystem
	runner system.Runner
	theme  Theme
	home   string
	size   int
	cache  map[string]string
	logger *log.Logger
}

// Options configures a Resolver
type Options struct {
	FS     system.FileSystem
	Runner system.Runner
	Theme  Theme // nil disables theme lookups
	Home   string
	Size   int
	Logger *log.Logger
}

// NewResolver creates a new icon resolver
func NewResolver(opts Options) *Resolver {
	r := &Resolver{
		fs:     opts.FS,
		runner: opts.Runner,
		theme:  opts.Theme,
		home:   opts.Home,
		size:   opts.Size,
		cache:  make(map[string]string),
		logger: opts.Logger,
	}
	if r.fs == nil {
		r.fs = system.OSFileSystem{}
	}
	if r.runner == nil {
		r.runner = system.NewShellRunner()
	}
	if r.size <= 0 {
		r.size = DefaultSize
	}
	if r.logger == nil {
		r.logger = logging.Nop()
	}
	return r
}

// Resolve returns the icon file for token, or "" when nothing matches
func (r *Resolver) Resolve(ctx context.Context, token string) string {
	if token == "" {
		return ""
	}
	if p, ok := r.cache[token]; ok {
		return p
	}
	p := r.resolve(ctx, token)
	r.cache[token] = p
	if p == "" {
		r.logger.Debug("icon not found", "token", token)
	}
	return p
}

func (r *Resolver) resolve(ctx context.Context, token string) string {
	if filepath.IsAbs(token) && system.Exists(r.fs, token) {
		return token
	}

	searchTerm := token
	if !hasImageExt(token) {
		searchTerm = token + ".*"
	}
	name := stripImageExt(token)

	if r.theme != nil {
		if p, ok := r.theme.Lookup(name); ok {
			return p
		}
	}

	paths := r.existing(r.probePaths())
	for _, dir := range paths {
		for _, ext := range extensions {
			p := filepath.Join(dir, name+ext)
			if system.Exists(r.fs, p) {
				return p
			}
		}
	}

	out, err := r.runner.Output(ctx, r.findCommand(paths, searchTerm))
	if err != nil {
		return ""
	}
	if lines := system.Lines(out); len(lines) > 0 {
		return lines[0]
	}
	return ""
}

// probePaths are the conventional icon directories checked by exact name
func (r *Resolver) probePaths() []string {
	return []string{
		filepath.Join(r.home, ".local", "share", "icons"),
		"/usr/share/pixmaps",
		"/usr/local/share/icons",
		r.hicolorDir("apps"),
	}
}

// recursivePaths are searched after probePaths, least specific last
func (r *Resolver) recursivePaths() []string {
	return []string{
		r.hicolorDir(""),
		"/usr/share/icons/hicolor",
		"/usr/share/icons",
	}
}

func (r *Resolver) hicolorDir(sub string) string {
	size := fmt.Sprintf("%dx%d", r.size, r.size)
	return filepath.Join("/usr/share/icons/hicolor", size, sub)
}

func (r *Resolver) existing(paths []string) []string {
	kept := paths[:0:0]
	for _, p := range paths {
		if system.Exists(r.fs, p) {
			kept = append(kept, p)
		}
	}
	return kept
}

// findCommand builds a find invocation that stops at the first match
func (r *Resolver) findCommand(probed []string, term string) string {
	var quoted []string
	for _, p := range append(append([]string{}, probed...), r.recursivePaths()...) {
		quoted = append(quoted, system.Quote(p+"/"))
	}
	return fmt.Sprintf("find %s -iname %s -print -quit 2>/dev/null", strings.Join(quoted, " "), system.Quote(term))
}

func hasImageExt(token string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(token, ext) {
			return true
		}
	}
	return false
}

func stripImageExt(token string) string {
	for _, ext := range extensions {
		if strings.HasSuffix(token, ext) {
			return strings.TrimSuffix(token, ext)
		}
	}
	return token
}
