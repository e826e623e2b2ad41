package positions

import (
	"github.com/etnz/positions/sheet"
)

// this file contains the canonical import/export format: a single worksheet whose first row
// holds the canonical column names. It is what the export writes and what the canonical mode reads.

// ValidateSchema checks that 'header' holds every required canonical column.
// Labels are compared after trimming. It returns a *SchemaError listing the missing ones.
func ValidateSchema(header []string) error {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}
	var missing []string
	for _, col := range RequiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}

// ImportCanonical reads positions from a grid in the canonical format.
//
// Values are taken as-is: weights are not renormalized, numbers that cannot be parsed
// degrade to zero. Fully empty rows are skipped.
func ImportCanonical(g sheet.Grid) ([]Position, error) {
	t := g.Table(0)
	if err := ValidateSchema(t.Header); err != nil {
		return nil, err
	}
	cols := make(map[string]int, len(t.Header))
	for _, name := range Columns() {
		cols[name] = t.Column(name)
	}

	ps := make([]Position, 0, len(t.Rows))
	for i, row := range t.Rows {
		if blank(row) {
			continue
		}
		text := func(name string) string { return t.Value(i, cols[name]).Text }
		number := func(name string) float64 { f, _ := ParseFloat(text(name)); return f }
		integer := func(name string) int { n, _ := ParseInt(text(name)); return n }
		ps = append(ps, Position{
			ID:          NewID(text(ColID)),
			Name:        text(ColName),
			Type:        ParseInstrumentType(text(ColType)),
			MarketValue: number(ColMarketValue),
			Weight:      number(ColWeight),
			Category:    text(ColCategory),
			Currency:    text(ColCurrency),
			Area:        text(ColArea),
			Sector:      text(ColSector),
			Rating:      integer(ColRating),
			Quartile:    integer(ColQuartile),
			AnnualCost:  number(ColAnnualCost),
			MarginBps:   number(ColMarginBps),
			Note:        text(ColNote),
		})
	}
	return ps, nil
}

func blank(row []sheet.Cell) bool {
	for _, c := range row {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

// ExportRows returns the canonical worksheet content for 'ps': the header row followed by
// one row per position. Numbers keep their Go type.
func ExportRows(ps []Position) [][]any {
	var header []any
	for _, c := range Columns() {
		header = append(header, c)
	}

	rows := make([][]any, 0, len(ps)+1)
	rows = append(rows, header)
	for _, p := range ps {
		rows = append(rows, []any{
			p.Type.String(), p.ID.String(), p.Name, p.Category, p.Currency, p.Area, p.Sector,
			p.Weight, p.MarketValue, p.Rating, p.Quartile, p.AnnualCost, p.MarginBps, p.Note,
		})
	}
	return rows
}
