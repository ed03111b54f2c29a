// Package scanner finds tool descriptors and builds the category index.
package scanner

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"mxtools/internal/desktop"
	"mxtools/internal/logging"
	"mxtools/internal/models"
	"mxtools/internal/system"

	"charm.land/log/v2"
)

// DefaultSearchDir is where descriptors are installed
const DefaultSearchDir = "/usr/share/applications"

// Exclusion markers found in descriptor content
const (
	MarkerOnlyInstalled = "MX-OnlyInstalled"
	MarkerOnlyLive      = "MX-OnlyLive"
	MarkerXfceOnly      = "OnlyShowIn=XFCE"
	MarkerFluxboxOnly   = "OnlyShowIn=FLUXBOX"
)

// Desktop identifiers that keep the environment specific entries
const (
	DesktopXfce    = "XFCE"
	SessionFluxbox = "fluxbox"
)

// liveOnlyFiles are dropped from the list unless running live
var liveOnlyFiles = []string{
	"mx-remastercc.desktop",
	"live-kernel-updater.desktop",
}

// Listing holds descriptor paths per category before parsing
type Listing map[models.Category][]string

// Paths returns every listed path, categories in display order
func (l Listing) Paths() []string {
	var paths []string
	for _, c := range models.Categories() {
		paths = append(paths, l[c]...)
	}
	return paths
}

// Scanner builds the category index from descriptor files
type Scanner struct {
	dir    string
	runner system.Runner
	fs     system.FileSystem
	env    system.Environment
	parser *desktop.Parser
	logger *log.Logger
}

// Options configures a Scanner. Zero values select the real system.
type Options struct {
	Dir    string
	Runner system.Runner
	FS     system.FileSystem
	Env    system.Environment
	Locale desktop.Locale
	Logger *log.Logger
}

// New creates a new Scanner
func New(opts Options) *Scanner {
	s := &Scanner{
		dir:    opts.Dir,
		runner: opts.Runner,
		fs:     opts.FS,
		env:    opts.Env,
		parser: desktop.NewParser(opts.Locale),
		logger: opts.Logger,
	}
	if s.dir == "" {
		s.dir = DefaultSearchDir
	}
	if s.runner == nil {
		s.runner = system.NewShellRunner()
	}
	if s.fs == nil {
		s.fs = system.OSFileSystem{}
	}
	if s.logger == nil {
		s.logger = logging.Nop()
	}
	return s
}

// Dir returns the directory being searched
func (s *Scanner) Dir() string {
	return s.dir
}

// Scan lists, filters and parses descriptors
func (s *Scanner) Scan(ctx context.Context) (*models.Index, Listing) {
	start := time.Now()
	listing := s.List(ctx)
	idx := s.Index(listing)
	s.logger.Debug("scan complete", "dir", s.dir, "records", idx.Len(), "live", s.env.Live(), "took", time.Since(start))
	return idx, listing
}

// List finds descriptors for every category and applies the environment filters
func (s *Scanner) List(ctx context.Context) Listing {
	listing := make(Listing)
	for _, c := range models.Categories() {
		listing[c] = s.ListFiles(ctx, c.Marker())
	}

	live := s.env.Live()
	if !live {
		listing[models.CategoryLive] = removeNamed(listing[models.CategoryLive], liveOnlyFiles)
	}

	exclusive := MarkerOnlyLive
	if live {
		exclusive = MarkerOnlyInstalled
	}

	for _, c := range models.Categories() {
		list := s.removeContaining(listing[c], exclusive)
		if s.env.CurrentDesktop != DesktopXfce {
			list = s.removeContaining(list, MarkerXfceOnly)
		}
		if s.env.SessionDesktop != SessionFluxbox {
			list = s.removeContaining(list, MarkerFluxboxOnly)
		}
		listing[c] = list
	}
	return listing
}

// ListFiles returns descriptors under the search directory whose content
// matches marker, sorted lexically.
func (s *Scanner) ListFiles(ctx context.Context, marker string) []string {
	cmd := fmt.Sprintf("grep -Elr %s %s | sort", system.Quote(marker), system.Quote(s.dir))
	out, err := s.runner.Output(ctx, cmd)
	if err != nil {
		s.logger.Debug("listing failed", "marker", marker, "err", err)
		return nil
	}
	files := system.Lines(out)
	sort.Strings(files)
	return files
}

// Index parses every listed descriptor. Unreadable files are skipped.
func (s *Scanner) Index(listing Listing) *models.Index {
	idx := models.NewIndex()
	for _, c := range models.Categories() {
		for _, path := range listing[c] {
			rec, ok := s.parser.ReadRecord(s.fs, path, c)
			if !ok {
				s.logger.Debug("skipping unreadable descriptor", "path", path)
				continue
			}
			idx.Add(rec)
		}
	}
	return idx
}

// removeContaining drops files whose content contains term. Files that
// cannot be read stay in the list.
func (s *Scanner) removeContaining(files []string, term string) []string {
	kept := files[:0:0]
	for _, f := range files {
		data, err := s.fs.ReadFile(f)
		if err == nil && strings.Contains(string(data), term) {
			s.logger.Debug("filtered descriptor", "path", f, "marker", term)
			continue
		}
		kept = append(kept, f)
	}
	return kept
}

// removeNamed drops paths that contain any of names
func removeNamed(files []string, names []string) []string {
	kept := files[:0:0]
outer:
	for _, f := range files {
		for _, n := range names {
			if strings.Contains(f, n) {
				continue outer
			}
		}
		kept = append(kept, f)
	}
	return kept
}
