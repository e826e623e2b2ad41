package renderer

import (
	"github.com/etnz/positions"
)

// PositionsView is the data of a positions table.
type PositionsView struct {
	Title     string
	Positions []positions.Position
}

// PositionsMarkdown renders 'ps' as a table, under 'title'.
func PositionsMarkdown(title string, ps []positions.Position) string {
	partials := map[string]string{
		"position_row": "position_row.md",
	}
	return renderTemplate("positions", "positions.md", partials, PositionsView{Title: title, Positions: ps})
}
