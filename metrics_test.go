package positions

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	ps := []Position{
		{ID: "A", Type: Fund, MarketValue: 6000, Weight: 60, Area: "Europa", Category: "Azionari", MarginBps: 100, AnnualCost: 2},
		{ID: "B", Type: Bond, MarketValue: 3000, Weight: 30, Area: "Italia", Category: "Governativi", MarginBps: 20},
		{ID: "C", Type: Fund, MarketValue: 1000, Weight: 9.5, Area: "Italia", Category: "Azionari", AnnualCost: 1},
	}
	s := Analyze(ps)

	assert.Equal(t, 3, s.Count)
	assert.InDelta(t, 10000, s.Total.Float(), 1e-9)
	assert.InDelta(t, 99.5, float64(s.WeightSum), 1e-9)
	assert.True(t, s.WeightsOK)
	// 6000*100/10000 + 3000*20/10000
	assert.InDelta(t, 66, s.Margin.Float(), 1e-9)
	// 6000*2/100 + 1000*1/100
	assert.InDelta(t, 130, s.Cost.Float(), 1e-9)

	require.Len(t, s.ByType, 2)
	assert.Equal(t, "Fondo", s.ByType[0].Label)
	assert.InDelta(t, 7000, s.ByType[0].Value.Float(), 1e-9)
	assert.InDelta(t, 70, float64(s.ByType[0].Weight), 1e-9)

	require.Len(t, s.ByArea, 2)
	assert.Equal(t, "Italia", s.ByArea[1].Label, "Europa 6000 > Italia 4000")
	assert.Len(t, s.BySector, 1, "blank sectors are grouped together")
}

func TestAnalyzeWeightsOff(t *testing.T) {
	s := Analyze([]Position{{Weight: 50}, {Weight: 48.9}})
	assert.False(t, s.WeightsOK)
	s = Analyze([]Position{{Weight: 50}, {Weight: 49}})
	assert.True(t, s.WeightsOK, "tolerance is inclusive")
}

func TestAnalyzeEmpty(t *testing.T) {
	s := Analyze(nil)
	assert.Zero(t, s.Total.Float())
	assert.False(t, s.WeightsOK)
	assert.Empty(t, s.ByType)
	assert.Len(t, s.Flags, len(Flags()))
}

func TestAnalyzeNonFinite(t *testing.T) {
	huge, ok := ParseFloat("1e400")
	require.False(t, ok)
	ps := []Position{
		{ID: "A", Type: Fund, MarketValue: huge, Weight: 50},
		{ID: "B", Type: Fund, MarketValue: math.Inf(1), Weight: math.NaN(), MarginBps: 10},
		{ID: "C", Type: Bond, MarketValue: 1000, Weight: 50},
	}
	var s Summary
	require.NotPanics(t, func() { s = Analyze(ps) })
	assert.InDelta(t, 1000, s.Total.Float(), 1e-9)
	assert.Zero(t, s.Margin.Float())
	assert.InDelta(t, 100, float64(s.WeightSum), 1e-9)
}

func TestAllocateTies(t *testing.T) {
	ps := []Position{pos("1", Fund, 10), pos("2", Bond, 10), pos("3", Equity, 20)}
	ps[0].Area, ps[1].Area, ps[2].Area = "b", "a", "c"
	got := Allocate(ps, decimalOf(40), func(p Position) string { return p.Area })
	labels := []string{got[0].Label, got[1].Label, got[2].Label}
	assert.Equal(t, []string{"c", "a", "b"}, labels)
	assert.InDelta(t, 50, float64(got[0].Weight), 1e-9)
}

func TestAnalysisJSONPath(t *testing.T) {
	a := NewAnalysis("vendor", []Position{pos("LU0000000001", Fund, 100)}, []string{"Fondi.xlsx"})
	b, err := json.Marshal(a)
	require.NoError(t, err)

	assert.Contains(t, string(b), `"sources":["Fondi.xlsx"]`)

	total, err := a.Query("$.summary.total.amount")
	require.NoError(t, err)
	assert.Equal(t, 100.0, total)

	ids, err := a.Query("$.positions[*].isin")
	require.NoError(t, err)
	assert.Equal(t, []any{"LU0000000001"}, ids)

	_, err = a.Query("$.[")
	assert.Error(t, err)
}
