// Package sheet reads and writes the spreadsheets exchanged with the rest of the world.
//
// Reading always materializes the first worksheet into a [Grid]: rows of [Cell] with no header
// assumed. Deciding which row is the header is the caller's job.
package sheet

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Kind is the coarse type of a cell value.
type Kind int

const (
	Empty Kind = iota
	Number
	Text
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Text:
		return "text"
	default:
		return "empty"
	}
}

// Cell is a single spreadsheet value.
type Cell struct {
	Text string // trimmed raw value
	Kind Kind
}

// NewCell classifies a raw cell value.
func NewCell(raw string) Cell {
	t := strings.TrimSpace(raw)
	switch {
	case t == "":
		return Cell{Kind: Empty}
	case isNumber(t):
		return Cell{Text: t, Kind: Number}
	default:
		return Cell{Text: t, Kind: Text}
	}
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool { return c.Kind == Empty }

// Grid is the content of one worksheet.
type Grid struct {
	rows [][]Cell
}

// NewGrid builds a grid from raw string rows.
func NewGrid(rows [][]string) Grid {
	g := Grid{rows: make([][]Cell, len(rows))}
	for i, row := range rows {
		cells := make([]Cell, len(row))
		for j, v := range row {
			cells[j] = NewCell(v)
		}
		g.rows[i] = cells
	}
	return g
}

// Len returns the number of rows.
func (g Grid) Len() int { return len(g.rows) }

// Row returns the i-th row. Rows are ragged: trailing empty cells may be absent.
func (g Grid) Row(i int) []Cell {
	if i < 0 || i >= len(g.rows) {
		return nil
	}
	return g.rows[i]
}

// Cell returns the cell at row i, column j or an empty cell when out of range.
func (g Grid) Cell(i, j int) Cell {
	row := g.Row(i)
	if j < 0 || j >= len(row) {
		return Cell{}
	}
	return row[j]
}

// Labels returns the trimmed values of row i, to be used as a header.
func (g Grid) Labels(i int) []string {
	row := g.Row(i)
	labels := make([]string, len(row))
	for j, c := range row {
		labels[j] = c.Text
	}
	return labels
}

// Table is a grid split at a header row.
type Table struct {
	Header []string
	Rows   [][]Cell
}

// Table splits the grid using row 'header' as header; following rows become data rows.
func (g Grid) Table(header int) Table {
	t := Table{Header: g.Labels(header)}
	if header+1 < len(g.rows) {
		t.Rows = g.rows[header+1:]
	}
	return t
}

// Column returns the index of the column labelled 'label', or -1.
func (t Table) Column(label string) int {
	for j, h := range t.Header {
		if h == label {
			return j
		}
	}
	return -1
}

// Value returns the cell of row i in column j, empty when out of range.
func (t Table) Value(i, j int) Cell {
	if i < 0 || i >= len(t.Rows) || j < 0 || j >= len(t.Rows[i]) {
		return Cell{}
	}
	return t.Rows[i][j]
}

// Read reads the first worksheet of an xlsx stream.
func Read(r io.Reader) (Grid, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Grid{}, fmt.Errorf("cannot open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Grid{}, fmt.Errorf("no sheets found in workbook")
	}
	// raw values keep numbers parseable regardless of the cell number format.
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return Grid{}, fmt.Errorf("cannot read sheet %q: %w", sheets[0], err)
	}
	return NewGrid(rows), nil
}

// ReadFile reads the first worksheet of the xlsx file at 'path'.
// The file is closed before returning.
func ReadFile(path string) (Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return Grid{}, err
	}
	defer f.Close()
	g, err := Read(f)
	if err != nil {
		return Grid{}, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
