package bankexport

import (
	"strings"
	"unicode/utf8"

	"github.com/etnz/positions/sheet"
)

// SectionKeywords are section labels recognized regardless of their length in words.
var SectionKeywords = []string{"FONDI", "GESTIONI", "OBBLIGAZIONI", "TITOLI", "CASH", "LIQUIDITA", "LIQUIDITÀ"}

const (
	maxSectionLen   = 30
	maxSectionWords = 3
)

// SectionedRow is a row with the label of the section it belongs to.
type SectionedRow struct {
	RawRow
	Section string // "" before the first section row
}

// IsSectionMarker reports whether a product name cell is a section row: an already
// upper-case text of at most 30 characters that is either a known keyword or has at most
// three words.
func IsSectionMarker(c sheet.Cell) bool {
	if c.Kind != sheet.Text {
		return false
	}
	v := c.Text
	if v == "" || strings.ToUpper(v) != v || utf8.RuneCountInString(v) > maxSectionLen {
		return false
	}
	for _, k := range SectionKeywords {
		if v == k {
			return true
		}
	}
	return len(strings.Fields(v)) <= maxSectionWords
}

// TagSections labels every row with the latest section row seen, itself included.
func TagSections(rows []RawRow) []SectionedRow {
	out := make([]SectionedRow, len(rows))
	current := ""
	for i, r := range rows {
		if name := r.Get(ColName); IsSectionMarker(name) {
			current = name.Text
		}
		out[i] = SectionedRow{RawRow: r, Section: current}
	}
	return out
}
