// Package desktop extracts display fields from .desktop descriptor files.
package desktop

import (
	"regexp"
	"strings"

	"mxtools/internal/models"
	"mxtools/internal/system"
)

// ProductPrefix is stripped from untranslated names
const ProductPrefix = "MX "

// Parser extracts fields for one locale. Patterns are compiled once.
type Parser struct {
	locale Locale

	nameRegion, nameLang       *regexp.Regexp
	commentRegion, commentLang *regexp.Regexp
}

var (
	nameRe     = fieldPattern("Name")
	commentRe  = fieldPattern("Comment")
	execRe     = fieldPattern("Exec")
	iconRe     = fieldPattern("Icon")
	terminalRe = fieldPattern("Terminal")
)

// fieldPattern matches "key=value" at the start of a line
func fieldPattern(key string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(key) + `=(.*)$`)
}

// NewParser creates a parser for loc
func NewParser(loc Locale) *Parser {
	p := &Parser{locale: loc}
	if loc.IsDefault() && !loc.RegionOnly() {
		return p
	}
	p.nameRegion = fieldPattern("Name[" + loc.Name() + "]")
	p.commentRegion = fieldPattern("Comment[" + loc.Name() + "]")
	if !loc.RegionOnly() && loc.Region != "" {
		p.nameLang = fieldPattern("Name[" + loc.Language + "]")
		p.commentLang = fieldPattern("Comment[" + loc.Language + "]")
	}
	return p
}

// Parse extracts the display fields of a descriptor. Path and Category are
// left for the caller.
func (p *Parser) Parse(text string) models.Record {
	name := firstOf(text, p.nameRegion, p.nameLang)
	comment := firstOf(text, p.commentRegion, p.commentLang)

	if name == "" {
		name = CleanName(capture(nameRe, text))
	}
	if comment == "" {
		comment = capture(commentRe, text)
	}

	return models.Record{
		Name:     name,
		Comment:  comment,
		Exec:     capture(execRe, text),
		Icon:     capture(iconRe, text),
		Terminal: capture(terminalRe, text) == "true",
	}
}

// ReadRecord reads and parses one descriptor. ok is false when the file
// cannot be read.
func (p *Parser) ReadRecord(fsys system.FileSystem, path string, cat models.Category) (rec models.Record, ok bool) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return models.Record{}, false
	}
	rec = p.Parse(string(data))
	rec.Path = path
	rec.Category = cat
	return rec, true
}

// CleanName strips the product prefix and doubles ampersands so they are
// shown literally instead of as accelerator markers.
func CleanName(raw string) string {
	return strings.ReplaceAll(strings.TrimPrefix(raw, ProductPrefix), "&", "&&")
}

// DisplayName undoes the ampersand escaping for renderers without accelerators
func DisplayName(name string) string {
	return strings.ReplaceAll(name, "&&", "&")
}

func firstOf(text string, patterns ...*regexp.Regexp) string {
	for _, re := range patterns {
		if re == nil {
			continue
		}
		if v := capture(re, text); v != "" {
			return v
		}
	}
	return ""
}

func capture(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSuffix(m[1], "\r")
}
