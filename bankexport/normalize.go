package bankexport

import (
	"math"

	"github.com/etnz/positions"
	"gonum.org/v1/gonum/floats"
)

// weightTolerance is how far from 100 reported weights may sum before being rescaled.
const weightTolerance = 1.0

// Normalize builds the canonical positions of the rows carrying an identifier.
// Attributes that vendor exports never carry are left to their zero value.
func Normalize(rows []SectionedRow) []positions.Position {
	kept := make([]SectionedRow, 0, len(rows))
	for _, r := range rows {
		if r.ID() != "" {
			kept = append(kept, r)
		}
	}

	values := make([]float64, len(kept))
	weights := make([]string, len(kept))
	ps := make([]positions.Position, len(kept))
	for i, r := range kept {
		values[i], _ = positions.ParseFloat(r.Get(ColValue).Text)
		weights[i] = r.Get(ColWeight).Text
		ps[i] = positions.Position{
			ID:          r.ID(),
			Name:        r.Name(),
			Type:        Classify(r),
			MarketValue: values[i],
		}
	}
	for i, w := range Weights(weights, values) {
		ps[i].Weight = w
	}
	return ps
}

// Weights computes the weight in percent of each row from the reported weights and the
// market values.
//
// When no reported weight can be parsed, or all are zero, weights derive from the market
// values. When parsed weights do not sum to 100 within one point they are rescaled to do
// so. Otherwise they are kept. Unparsed weights count as 0. Results are rounded to 6 decimals.
func Weights(reported []string, values []float64) []float64 {
	parsed := make([]float64, len(reported))
	seen := false
	for i, s := range reported {
		var ok bool
		parsed[i], ok = positions.ParseFloat(s)
		seen = seen || ok
	}

	sum := floats.Sum(parsed)
	out := make([]float64, len(reported))
	switch {
	case !seen || allZero(parsed):
		total := floats.Sum(values)
		if total != 0 {
			for i, v := range values {
				out[i] = v / total * 100
			}
		}
	case sum > 0 && math.Abs(sum-100) > weightTolerance:
		for i, w := range parsed {
			out[i] = w * 100 / sum
		}
	default:
		copy(out, parsed)
	}

	for i, w := range out {
		out[i] = math.Round(w*1e6) / 1e6
	}
	return out
}

func allZero(xs []float64) bool {
	for _, x := range xs {
		if x != 0 {
			return false
		}
	}
	return true
}
