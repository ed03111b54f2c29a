// Package i18n translates UI strings through gettext catalogs.
package i18n

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/leonelquinteros/gotext"

	"mxtools/internal/desktop"
)

const (
	// Domain is the gettext domain of the catalogs
	Domain = "mxtools"

	// DefaultDir is where system catalogs are installed
	DefaultDir = "/usr/share/locale"
)

var (
	mu     sync.RWMutex
	locale *gotext.Locale
)

// Init loads the catalog for loc from dir. Without a catalog every string is
// returned untranslated. A region-specific catalog is preferred over the
// language one.
func Init(dir string, loc desktop.Locale) {
	if dir == "" {
		dir = DefaultDir
	}

	lang := loc.Name()
	if !hasCatalog(dir, lang) {
		lang = loc.Language
	}
	l := gotext.NewLocale(dir, lang)
	l.AddDomain(Domain)

	mu.Lock()
	locale = l
	mu.Unlock()
}

func hasCatalog(dir, lang string) bool {
	for _, ext := range []string{".mo", ".po"} {
		if _, err := os.Stat(filepath.Join(dir, lang, "LC_MESSAGES", Domain+ext)); err == nil {
			return true
		}
	}
	return false
}

// Reset drops the loaded catalog
func Reset() {
	mu.Lock()
	locale = nil
	mu.Unlock()
}

// T translates msgid
func T(msgid string) string {
	mu.RLock()
	defer mu.RUnlock()
	if locale == nil {
		return msgid
	}
	return locale.Get(msgid)
}

// Tf translates a format string and applies args
func Tf(format string, args ...any) string {
	return fmt.Sprintf(T(format), args...)
}

// Tn translates a string with plural forms
func Tn(msgid, plural string, n int) string {
	mu.RLock()
	defer mu.RUnlock()
	if locale == nil {
		if n == 1 {
			return msgid
		}
		return plural
	}
	return locale.GetN(msgid, plural, n)
}
