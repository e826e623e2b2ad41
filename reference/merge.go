package reference

import (
	"strings"

	"github.com/etnz/positions"
)

// fillers set a canonical attribute from its raw value when it is still at its default.
// They report whether the attribute was filled; a value coercing to the default is no value.
var fillers = map[string]func(p *positions.Position, raw string) bool{
	positions.ColCategory:   fillText(func(p *positions.Position) *string { return &p.Category }),
	positions.ColCurrency:   fillText(func(p *positions.Position) *string { return &p.Currency }),
	positions.ColArea:       fillText(func(p *positions.Position) *string { return &p.Area }),
	positions.ColSector:     fillText(func(p *positions.Position) *string { return &p.Sector }),
	positions.ColNote:       fillText(func(p *positions.Position) *string { return &p.Note }),
	positions.ColRating:     fillInt(func(p *positions.Position) *int { return &p.Rating }),
	positions.ColQuartile:   fillInt(func(p *positions.Position) *int { return &p.Quartile }),
	positions.ColAnnualCost: fillFloat(func(p *positions.Position) *float64 { return &p.AnnualCost }),
	positions.ColMarginBps:  fillFloat(func(p *positions.Position) *float64 { return &p.MarginBps }),
}

func fillText(field func(*positions.Position) *string) func(*positions.Position, string) bool {
	return func(p *positions.Position, raw string) bool {
		f, v := field(p), strings.TrimSpace(raw)
		if *f != "" || v == "" {
			return false
		}
		*f = v
		return true
	}
}

func fillInt(field func(*positions.Position) *int) func(*positions.Position, string) bool {
	return func(p *positions.Position, raw string) bool {
		f := field(p)
		v, _ := positions.ParseInt(raw)
		if *f != 0 || v == 0 {
			return false
		}
		*f = v
		return true
	}
}

func fillFloat(field func(*positions.Position) *float64) func(*positions.Position, string) bool {
	return func(p *positions.Position, raw string) bool {
		f := field(p)
		v, _ := positions.ParseFloat(raw)
		if *f != 0 || v == 0 {
			return false
		}
		*f = v
		return true
	}
}

// Contribution counts the positions a source completed.
type Contribution struct {
	Source    string
	Positions int // positions with at least one attribute filled
	Values    int // attributes filled
}

// Merge completes a copy of 'ps' with the attributes of 'srcs', taken in order.
//
// An attribute is filled only while it is at its default, so the first source providing
// a value wins. Identifier, name, type, weight and market value are never changed.
func Merge(ps []positions.Position, srcs []Source) []positions.Position {
	out, _ := merge(ps, srcs)
	return out
}

// Contributions reports what each source brings to 'ps' during Merge.
func Contributions(ps []positions.Position, srcs []Source) []Contribution {
	_, c := merge(ps, srcs)
	return c
}

func merge(ps []positions.Position, srcs []Source) ([]positions.Position, []Contribution) {
	out := make([]positions.Position, len(ps))
	copy(out, ps)
	contributions := make([]Contribution, len(srcs))
	for k, src := range srcs {
		contributions[k].Source = src.Name
		idx := src.index()
		for i := range out {
			row, ok := idx[out[i].ID]
			if !ok {
				continue
			}
			filled := 0
			for col, raw := range row.Values {
				if fill, ok := fillers[col]; ok && fill(&out[i], raw) {
					filled++
				}
			}
			if filled > 0 {
				contributions[k].Positions++
				contributions[k].Values += filled
			}
		}
	}
	return out, contributions
}
