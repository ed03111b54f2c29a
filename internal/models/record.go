package models

import "strings"

// Record is one parsed descriptor file
type Record struct {
	Path     string   // Descriptor file path
	Name     string   // Display name
	Comment  string   // Tooltip / description
	Icon     string   // Raw Icon= token (name or path)
	Exec     string   // Command line from Exec=
	Category Category // Category the file was indexed under
	Terminal bool     // Terminal=true
}

// Category is one of the fixed tool categories
type Category int

const (
	CategoryLive Category = iota
	CategoryMaintenance
	CategorySetup
	CategorySoftware
	CategoryUtilities
	categoryCount
)

// markerPrefix is stripped from markers to build the section label
const markerPrefix = "MX-"

var categoryMarkers = [categoryCount]string{
	CategoryLive:        "MX-Live",
	CategoryMaintenance: "MX-Maintenance",
	CategorySetup:       "MX-Setup",
	CategorySoftware:    "MX-Software",
	CategoryUtilities:   "MX-Utilities",
}

// Categories returns all categories in display order
func Categories() []Category {
	all := make([]Category, 0, categoryCount)
	for c := Category(0); c < categoryCount; c++ {
		all = append(all, c)
	}
	return all
}

// Marker returns the substring that classifies a descriptor into the category
func (c Category) Marker() string {
	if c < 0 || c >= categoryCount {
		return ""
	}
	return categoryMarkers[c]
}

// Label returns the section header text
func (c Category) Label() string {
	return strings.TrimPrefix(c.Marker(), markerPrefix)
}

func (c Category) String() string {
	return c.Marker()
}

// Valid reports whether c is one of the enumerated categories
func (c Category) Valid() bool {
	return c >= 0 && c < categoryCount
}

// Index maps each category to its ordered records.
// An Index is never mutated after it is built; filters return a new one.
type Index struct {
	lists [categoryCount][]Record
}

// NewIndex creates an empty index
func NewIndex() *Index {
	return &Index{}
}

// Add appends a record to its category. Records without a path or a valid
// category are ignored.
func (idx *Index) Add(r Record) {
	if r.Path == "" || !r.Category.Valid() {
		return
	}
	idx.lists[r.Category] = append(idx.lists[r.Category], r)
}

// Records returns the records of a category in insertion order
func (idx *Index) Records(c Category) []Record {
	if idx == nil || !c.Valid() {
		return nil
	}
	return idx.lists[c]
}

// Len returns the total number of records
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	n := 0
	for _, l := range idx.lists {
		n += len(l)
	}
	return n
}

// Empty reports whether no category holds a record
func (idx *Index) Empty() bool {
	return idx.Len() == 0
}

// NonEmpty returns the categories that hold at least one record, in display order
func (idx *Index) NonEmpty() []Category {
	var cats []Category
	for _, c := range Categories() {
		if len(idx.Records(c)) > 0 {
			cats = append(cats, c)
		}
	}
	return cats
}

// MaxCategorySize returns the size of the largest category
func (idx *Index) MaxCategorySize() int {
	largest := 0
	for _, c := range Categories() {
		if n := len(idx.Records(c)); n > largest {
			largest = n
		}
	}
	return largest
}

// All returns every record, categories in display order
func (idx *Index) All() []Record {
	var all []Record
	for _, c := range Categories() {
		all = append(all, idx.Records(c)...)
	}
	return all
}
