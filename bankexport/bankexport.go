// Package bankexport parses the portfolio exports produced by the bank platform.
//
// Those exports are meant to be printed: a title block precedes the real header, positions
// are grouped under upper-case section rows, and there is no instrument type column. Parse
// turns them into canonical positions without reference data, see the reference package
// for the enrichment.
package bankexport

import (
	"fmt"

	"github.com/etnz/positions"
	"github.com/etnz/positions/sheet"
)

// Column labels of the vendor export.
const (
	ColName    = "Nome Prodotto"
	ColID      = "Codice ISIN"
	ColValue   = "Controvalore di fine periodo (€)"
	ColWeight  = "Peso sul Totale (%)"
	ColDossier = "Nome contratto / dossier"
	ColIssuer  = "SGR / Emittente"
)

// RawRow is a data row of the export, keyed by header label.
type RawRow struct {
	Index int // row index in the sheet
	cells map[string]sheet.Cell
}

// NewRawRow returns a row at 'index' with the given labelled values.
func NewRawRow(index int, values map[string]string) RawRow {
	cells := make(map[string]sheet.Cell, len(values))
	for k, v := range values {
		cells[k] = sheet.NewCell(v)
	}
	return RawRow{Index: index, cells: cells}
}

// Get returns the cell under 'label', empty when the column does not exist.
func (r RawRow) Get(label string) sheet.Cell { return r.cells[label] }

func (r RawRow) Name() string     { return r.Get(ColName).Text }
func (r RawRow) ID() positions.ID { return positions.NewID(r.Get(ColID).Text) }
func (r RawRow) Issuer() string   { return r.Get(ColIssuer).Text }

// Rows reads the data rows following the header at index 'header'.
// When a label appears twice in the header the leftmost column is used.
func Rows(g sheet.Grid, header int) []RawRow {
	t := g.Table(header)
	rows := make([]RawRow, len(t.Rows))
	for i := range t.Rows {
		cells := make(map[string]sheet.Cell, len(t.Header))
		for j, label := range t.Header {
			if _, dup := cells[label]; dup || label == "" {
				continue
			}
			cells[label] = t.Value(i, j)
		}
		rows[i] = RawRow{Index: header + 1 + i, cells: cells}
	}
	return rows
}

// Parse reads the positions of a vendor export.
//
// It returns positions.ErrNoIdentifier when no row carries an identifier, which is also what
// happens when the header could not be found.
func Parse(g sheet.Grid) ([]positions.Position, error) {
	header := LocateHeader(g)
	ps := Normalize(TagSections(Rows(g, header)))
	if len(ps) == 0 {
		return nil, fmt.Errorf("header at row %d: %w", header+1, positions.ErrNoIdentifier)
	}
	return ps, nil
}
