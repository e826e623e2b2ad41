package positions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReview(t *testing.T) {
	q4 := pos("Q4", Fund, 1)
	q4.Quartile, q4.Rating = 4, 5
	low := pos("LOW", Fund, 1)
	low.Rating = 2
	unrated := pos("UNRATED", Fund, 1)
	expensive := pos("EXP", Fund, 1)
	expensive.Rating, expensive.AnnualCost = 4, 1.80
	gp := pos("GP", Management, 1)
	gp.Rating = 3
	goodGP := pos("GOODGP", Management, 1)
	goodGP.Rating = 4
	bond := pos("BOND", Bond, 1)

	results := Review([]Position{q4, low, unrated, expensive, gp, goodGP, bond})
	require.Len(t, results, 4)

	ids := func(r FlagResult) []ID {
		var out []ID
		for _, p := range r.Positions {
			out = append(out, p.ID)
		}
		return out
	}
	assert.Equal(t, "Fondi_quartile4", results[0].Name)
	assert.Equal(t, []ID{"Q4"}, ids(results[0]))
	assert.Equal(t, []ID{"LOW", "UNRATED"}, ids(results[1]))
	assert.Equal(t, []ID{"EXP"}, ids(results[2]), "threshold is inclusive")
	assert.Equal(t, "Gest_multi_da_rivedere", results[3].Name)
	assert.Equal(t, []ID{"GP"}, ids(results[3]))
}

func TestFlagByName(t *testing.T) {
	f, ok := FlagByName("Fondi_costo_alto")
	require.True(t, ok)
	assert.True(t, f.Match(Position{Type: Fund, AnnualCost: 2}))
	assert.False(t, f.Match(Position{Type: Management, AnnualCost: 2}))

	_, ok = FlagByName("unknown")
	assert.False(t, ok)
}
