package positions

import (
	"github.com/etnz/positions/sheet"
	"github.com/shopspring/decimal"
)

// pos is a helper for test to create a position of type 't' with a market value.
func pos(id string, t InstrumentType, mv float64) Position {
	return Position{ID: ID(id), Name: "name of " + id, Type: t, MarketValue: mv}
}

// canonicalGrid is a helper for test to build a canonical grid from data rows.
func canonicalGrid(rows ...[]string) sheet.Grid {
	all := [][]string{Columns()}
	return sheet.NewGrid(append(all, rows...))
}

// decimalOf is a helper for test to get an exact decimal.
func decimalOf(v int64) decimal.Decimal { return decimal.NewFromInt(v) }
