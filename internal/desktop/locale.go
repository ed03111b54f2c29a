package desktop

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage has no translated keys; untagged fields are used directly
const DefaultLanguage = "en"

// Locale selects which Name[..]/Comment[..] keys are read
type Locale struct {
	Language string // e.g. "pt"
	Region   string // e.g. "BR", may be empty
}

// DefaultLocale is used when the environment names no usable locale
var DefaultLocale = Locale{Language: DefaultLanguage, Region: "US"}

// regionOnly lists locales whose generic language tag belongs to another
// regional variant, so only the region-tagged key is consulted.
var regionOnly = map[string]bool{
	"pt_BR": true,
}

// ParseLocale parses POSIX (pt_BR.UTF-8@euro) and BCP 47 (pt-BR) names
func ParseLocale(s string) Locale {
	s = strings.Split(s, ".")[0]
	s = strings.Split(s, "@")[0]
	if s == "" || s == "C" || s == "POSIX" {
		return DefaultLocale
	}

	// The tag is only validated; canonical forms (tl -> fil) would miss the
	// keys descriptors are written with.
	s = strings.ReplaceAll(s, "_", "-")
	if _, err := language.Parse(s); err != nil {
		return DefaultLocale
	}
	parts := strings.Split(s, "-")
	loc := Locale{Language: strings.ToLower(parts[0])}
	for _, p := range parts[1:] {
		if isRegion(p) {
			loc.Region = strings.ToUpper(p)
			break
		}
	}
	return loc
}

// isRegion reports whether a subtag is an ISO 3166 or UN M.49 region
func isRegion(p string) bool {
	switch len(p) {
	case 2:
		return isAlpha(p)
	case 3:
		return strings.Trim(p, "0123456789") == ""
	}
	return false
}

func isAlpha(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

// DetectLocale reads LC_ALL, LC_MESSAGES and LANG in that order
func DetectLocale() Locale {
	for _, envVar := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(envVar); v != "" && v != "C" && v != "POSIX" {
			return ParseLocale(v)
		}
	}
	return DefaultLocale
}

// Name returns the POSIX form, e.g. "pt_BR"
func (l Locale) Name() string {
	if l.Region == "" {
		return l.Language
	}
	return l.Language + "_" + l.Region
}

// IsDefault reports whether descriptors should be read untranslated
func (l Locale) IsDefault() bool {
	return l.Language == "" || l.Language == DefaultLanguage
}

// RegionOnly reports whether the generic language fallback is disabled
func (l Locale) RegionOnly() bool {
	return regionOnly[l.Name()]
}
