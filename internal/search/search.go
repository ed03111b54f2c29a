// Package search filters a category index by a free-text query.
package search

import (
	"strings"

	"golang.org/x/text/cases"

	"mxtools/internal/models"
)

// Filter returns the records whose name, comment or category marker
// (e.g. "MX-Maintenance") contain query, compared case-insensitively. An empty query returns idx itself.
// Categories without a match are absent from the result and idx is never
// modified.
func Filter(idx *models.Index, query string) *models.Index {
	if query == "" {
		return idx
	}

	fold := cases.Fold()
	needle := fold.String(query)

	result := models.NewIndex()
	for _, rec := range idx.All() {
		if Matches(fold, rec, needle) {
			result.Add(rec)
		}
	}
	return result
}

// Matches reports whether a record matches an already folded query
func Matches(fold cases.Caser, rec models.Record, needle string) bool {
	for _, field := range []string{rec.Name, rec.Comment, rec.Category.Marker()} {
		if strings.Contains(fold.String(field), needle) {
			return true
		}
	}
	return false
}
