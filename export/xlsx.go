// Package export writes the artifacts of an analysis: a workbook for further processing and
// a one page PDF synthesis.
package export

import (
	"io"

	"github.com/etnz/positions"
	"github.com/etnz/positions/sheet"
)

// Sheet names of the exported workbook.
const (
	SheetPositions  = "Posizioni"
	SheetByType     = "Alloc_Tipo"
	SheetByArea     = "Alloc_Area"
	SheetByCategory = "Alloc_Categoria"
)

// WriteXLSX writes the positions of 'a' in the canonical format, followed by the
// allocations by type, area and category.
//
// The first sheet can be read back in canonical mode.
func WriteXLSX(w io.Writer, a *positions.Analysis) error {
	wb := sheet.NewWorkbook()
	defer wb.Close()

	sheets := []struct {
		name string
		rows [][]any
	}{
		{SheetPositions, positions.ExportRows(a.Positions)},
		{SheetByType, allocationRows(positions.ColType, a.Summary.ByType)},
		{SheetByArea, allocationRows(positions.ColArea, a.Summary.ByArea)},
		{SheetByCategory, allocationRows(positions.ColCategory, a.Summary.ByCategory)},
	}
	for _, s := range sheets {
		if err := wb.AddSheet(s.name, s.rows); err != nil {
			return err
		}
	}
	_, err := wb.WriteTo(w)
	return err
}

func allocationRows(label string, allocs []positions.Allocation) [][]any {
	rows := make([][]any, 0, len(allocs)+1)
	rows = append(rows, []any{label, positions.ColMarketValue})
	for _, a := range allocs {
		rows = append(rows, []any{a.Label, a.Value.Float()})
	}
	return rows
}
