package sheet

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Workbook builds an xlsx document one sheet at a time.
type Workbook struct {
	f      *excelize.File
	sheets int
}

// NewWorkbook returns an empty workbook.
func NewWorkbook() *Workbook {
	return &Workbook{f: excelize.NewFile()}
}

// AddSheet appends a sheet named 'name' filled with 'rows', starting at A1.
// Values keep their Go type, so numbers are written as numeric cells.
func (w *Workbook) AddSheet(name string, rows [][]any) error {
	if w.sheets == 0 {
		// a new file always comes with one default sheet, reuse it.
		if err := w.f.SetSheetName(w.f.GetSheetName(0), name); err != nil {
			return fmt.Errorf("cannot rename default sheet to %q: %w", name, err)
		}
	} else if _, err := w.f.NewSheet(name); err != nil {
		return fmt.Errorf("cannot create sheet %q: %w", name, err)
	}
	w.sheets++

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := row
		if err := w.f.SetSheetRow(name, cell, &values); err != nil {
			return fmt.Errorf("cannot write row %d of sheet %q: %w", i+1, name, err)
		}
	}
	return nil
}

// WriteTo writes the xlsx document to 'out'.
func (w *Workbook) WriteTo(out io.Writer) (int64, error) {
	return w.f.WriteTo(out)
}

// SaveAs writes the xlsx document to the file at 'path'.
func (w *Workbook) SaveAs(path string) error {
	return w.f.SaveAs(path)
}

// Close releases the resources held by the workbook.
func (w *Workbook) Close() error {
	return w.f.Close()
}
