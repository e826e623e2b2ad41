// Package reference completes positions with attributes found in reference spreadsheets.
//
// Reference spreadsheets come from different desks and never agree on column names: each
// canonical attribute is looked up through a list of accepted spellings, see [Aliases].
// Sources are merged in a fixed order, the first one providing a value for an attribute wins.
package reference

import (
	"github.com/etnz/positions"
	"github.com/etnz/positions/sheet"
)

// Alias lists the accepted header spellings of a canonical column, by priority.
type Alias struct {
	Column string
	Names  []string
}

// Aliases is the alias table, identifier first.
var Aliases = []Alias{
	{positions.ColID, []string{"ISIN", "Codice ISIN", "Isin", "Cod. ISIN", "ISIN Code"}},
	{positions.ColCategory, []string{"Categoria", "Categoria Morningstar", "Asset Class", "Category"}},
	{positions.ColCurrency, []string{"Valuta", "Divisa", "Currency"}},
	{positions.ColArea, []string{"Area", "Area Geografica", "Region"}},
	{positions.ColSector, []string{"Settore", "Sector"}},
	{positions.ColRating, []string{"Rating", "Rating Morningstar", "Stelle Morningstar", "Stars"}},
	{positions.ColQuartile, []string{"Quartile", "Quartile 1A", "Quartile 3A"}},
	{positions.ColAnnualCost, []string{"Costo_annuo_%", "TER", "Spese correnti", "Ongoing Charges", "Commissione di gestione"}},
	{positions.ColMarginBps, []string{"Margine_bps", "Retrocessione (bps)", "Provvigione (bps)", "Retrocessione"}},
	{positions.ColNote, []string{"Note", "Commento", "Notes"}},
}

// Mapping locates canonical columns in a reference spreadsheet.
type Mapping struct {
	ID      int            // identifier column, -1 when unresolved
	Columns map[string]int // other canonical columns to their column index
}

// Usable reports whether the mapping can contribute anything: an identifier and at least
// one other attribute.
func (m Mapping) Usable() bool { return m.ID >= 0 && len(m.Columns) > 0 }

// strategy finds a column, or returns -1.
type strategy func(header []string, rows [][]sheet.Cell) int

// aliasStrategy finds the first of 'names' present in the header.
func aliasStrategy(names []string) strategy {
	return func(header []string, _ [][]sheet.Cell) int {
		for _, n := range names {
			for j, h := range header {
				if h == n {
					return j
				}
			}
		}
		return -1
	}
}

// sniffStrategy finds the first column holding at least one identifier shaped value.
func sniffStrategy(header []string, rows [][]sheet.Cell) int {
	width := len(header)
	for _, row := range rows {
		width = max(width, len(row))
	}
	for j := 0; j < width; j++ {
		for _, row := range rows {
			if j < len(row) && positions.LooksLikeIdentifier(row[j].Text) {
				return j
			}
		}
	}
	return -1
}

// firstOf tries each strategy in turn.
func firstOf(strategies ...strategy) strategy {
	return func(header []string, rows [][]sheet.Cell) int {
		for _, s := range strategies {
			if j := s(header, rows); j >= 0 {
				return j
			}
		}
		return -1
	}
}

// Resolve maps canonical columns onto the columns of a reference spreadsheet.
//
// The identifier is found by alias, or by content when no alias matches. Other attributes
// are found by alias only.
func Resolve(header []string, rows [][]sheet.Cell) Mapping {
	m := Mapping{Columns: make(map[string]int)}
	for _, a := range Aliases {
		if a.Column == positions.ColID {
			m.ID = firstOf(aliasStrategy(a.Names), sniffStrategy)(header, rows)
			continue
		}
		if j := aliasStrategy(a.Names)(header, rows); j >= 0 {
			m.Columns[a.Column] = j
		}
	}
	return m
}
