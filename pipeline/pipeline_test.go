package pipeline

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/etnz/positions"
	"github.com/etnz/positions/sheet"
	"github.com/etnz/positions/bankexport"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vendorGrid() sheet.Grid {
	return sheet.NewGrid([][]string{
		{"Portafoglio al 30/06"},
		{bankexport.ColName, bankexport.ColID, bankexport.ColValue, bankexport.ColWeight},
		{"FONDI"},
		{"Fondo Azionario Europa", "LU0000000001", "7500", ""},
		{"GESTIONI"},
		{"Linea Dinamica", "IT0000000001", "2500", ""},
	})
}

func canonicalGrid() sheet.Grid {
	return sheet.NewGrid([][]string{
		positions.RequiredColumns,
		{"Fondo", "LU0000000001", "Fondo A", "", "EUR", "", "", "100", "1000", "4", "1", "1.2", "50"},
	})
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, Auto, m)

	m, err = ParseMode("vendor")
	require.NoError(t, err)
	assert.Equal(t, Vendor, m)

	_, err = ParseMode("csv")
	assert.Error(t, err)
}

func TestDetect(t *testing.T) {
	assert.Equal(t, Canonical, Detect(canonicalGrid()))
	assert.Equal(t, Vendor, Detect(vendorGrid()))
	assert.Equal(t, Canonical, Detect(sheet.NewGrid([][]string{{"a"}})))
}

func TestRunVendorWithReferences(t *testing.T) {
	dir := t.TempDir()
	wb := sheet.NewWorkbook()
	require.NoError(t, wb.AddSheet("Foglio1", [][]any{
		{"ISIN", "Rating", "Quartile", "TER", "Retrocessione (bps)"},
		{"LU0000000001", 2, 4, 1.9, 80},
	}))
	require.NoError(t, wb.SaveAs(filepath.Join(dir, "Fondi.xlsx")))
	require.NoError(t, wb.Close())

	r := &Runner{Log: zerolog.Nop(), ReferenceDir: dir}
	a, err := r.Run(vendorGrid())
	require.NoError(t, err)

	assert.Equal(t, "vendor", a.Mode)
	assert.Equal(t, []string{"Fondi.xlsx"}, a.Sources)
	require.Len(t, a.Positions, 2)

	fund := a.Positions[0]
	assert.Equal(t, positions.Fund, fund.Type)
	assert.Equal(t, 75.0, fund.Weight)
	assert.Equal(t, 2, fund.Rating)
	assert.Equal(t, 4, fund.Quartile)
	assert.Equal(t, positions.Management, a.Positions[1].Type)

	// 7500 * 80 / 10000
	assert.InDelta(t, 60, a.Summary.Margin.Float(), 1e-9)
	require.Len(t, a.Summary.Flags, 4)
	for _, f := range a.Summary.Flags[:3] {
		assert.Len(t, f.Positions, 1, f.Name)
	}
	assert.Len(t, a.Summary.Flags[3].Positions, 1, "unrated management")
}

func TestRunCanonical(t *testing.T) {
	r := &Runner{Mode: Canonical}
	a, err := r.Run(canonicalGrid())
	require.NoError(t, err)
	assert.Equal(t, "canonical", a.Mode)
	assert.Empty(t, a.Sources)
	assert.True(t, a.Summary.WeightsOK)
}

func TestRunErrors(t *testing.T) {
	r := &Runner{Mode: Canonical}
	_, err := r.Run(vendorGrid())
	var se *positions.SchemaError
	assert.True(t, errors.As(err, &se))

	r = &Runner{Mode: Vendor}
	_, err = r.Run(sheet.NewGrid([][]string{{"x"}, {"y"}}))
	assert.ErrorIs(t, err, positions.ErrNoIdentifier)

	r = &Runner{}
	_, err = r.Run(sheet.NewGrid([][]string{{"x"}, {"y"}}))
	assert.True(t, errors.As(err, &se), "auto reports the canonical columns")
}

func TestRunReader(t *testing.T) {
	wb := sheet.NewWorkbook()
	defer wb.Close()
	require.NoError(t, wb.AddSheet("Posizioni", positions.ExportRows([]positions.Position{
		{ID: "LU0000000001", Name: "Fondo", Type: positions.Fund, MarketValue: 10, Weight: 100},
	})))
	var buf bytes.Buffer
	_, err := wb.WriteTo(&buf)
	require.NoError(t, err)

	a, err := (&Runner{}).RunReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, "canonical", a.Mode)
	assert.Len(t, a.Positions, 1)
}
