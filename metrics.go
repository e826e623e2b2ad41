package positions

import (
	"cmp"
	"math"
	"slices"

	"github.com/shopspring/decimal"
)

// Allocation is the market value held under one label of a breakdown.
type Allocation struct {
	Label  string
	Value  Money
	Weight Percent // share of the total market value
}

func (a Allocation) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("label", a.Label)
	w.Append("value", a.Value)
	w.Append("weight", math.Round(float64(a.Weight)*100)/100)
	return w.MarshalJSON()
}

// Summary holds the aggregates of a list of positions.
type Summary struct {
	Count     int
	Total     Money // sum of market values
	WeightSum Percent
	WeightsOK bool  // weights sum to 100 within one point
	Margin    Money // estimated annual margin
	Cost      Money // estimated annual cost

	ByType     []Allocation
	ByArea     []Allocation
	ByCategory []Allocation
	BySector   []Allocation

	Flags []FlagResult
}

func (s Summary) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("count", s.Count)
	w.Append("total", s.Total)
	w.Append("weightSum", math.Round(float64(s.WeightSum)*1e6)/1e6)
	w.Append("weightsOK", s.WeightsOK)
	w.Append("margin", s.Margin)
	w.Append("cost", s.Cost)
	w.Append("byType", nonNil(s.ByType))
	w.Append("byArea", nonNil(s.ByArea))
	w.Append("byCategory", nonNil(s.ByCategory))
	w.Append("bySector", nonNil(s.BySector))
	w.Append("flags", nonNil(s.Flags))
	return w.MarshalJSON()
}

// nonNil marshals empty lists as [] instead of null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// weightTolerance is the distance to 100 under which weights are considered consistent.
const weightTolerance = 1.0

// Analyze computes the summary of 'ps'. Amounts are in euro.
//
// The margin of a position is its market value times its margin in basis points / 10000,
// its cost is its market value times its annual cost in percent / 100.
func Analyze(ps []Position) Summary {
	var total, weights, margin, cost decimal.Decimal
	for _, p := range ps {
		mv := finite(p.MarketValue)
		total = total.Add(mv)
		weights = weights.Add(finite(p.Weight))
		margin = margin.Add(mv.Mul(finite(p.MarginBps)).Div(decimal.NewFromInt(10000)))
		cost = cost.Add(mv.Mul(finite(p.AnnualCost)).Div(decimal.NewFromInt(100)))
	}
	ws := weights.InexactFloat64()

	return Summary{
		Count:      len(ps),
		Total:      M(total, "EUR"),
		WeightSum:  Percent(ws),
		WeightsOK:  math.Abs(ws-100) <= weightTolerance,
		Margin:     M(margin, "EUR"),
		Cost:       M(cost, "EUR"),
		ByType:     Allocate(ps, total, func(p Position) string { return p.Type.String() }),
		ByArea:     Allocate(ps, total, func(p Position) string { return p.Area }),
		ByCategory: Allocate(ps, total, func(p Position) string { return p.Category }),
		BySector:   Allocate(ps, total, func(p Position) string { return p.Sector }),
		Flags:      Review(ps),
	}
}

// Allocate groups the market value of 'ps' by 'label', largest value first.
// Ties are ordered by label. 'total' is used to compute each allocation weight.
func Allocate(ps []Position, total decimal.Decimal, label func(Position) string) []Allocation {
	sums := make(map[string]decimal.Decimal)
	for _, p := range ps {
		l := label(p)
		sums[l] = sums[l].Add(finite(p.MarketValue))
	}

	allocs := make([]Allocation, 0, len(sums))
	for l, v := range sums {
		var weight float64
		if !total.IsZero() {
			weight = v.Mul(decimal.NewFromInt(100)).Div(total).InexactFloat64()
		}
		allocs = append(allocs, Allocation{Label: l, Value: M(v, "EUR"), Weight: Percent(weight)})
	}
	slices.SortFunc(allocs, func(a, b Allocation) int {
		if c := b.Value.value.Cmp(a.Value.value); c != 0 {
			return c
		}
		return cmp.Compare(a.Label, b.Label)
	})
	return allocs
}
