package positions

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Analysis is the outcome of one run: the normalized positions, their summary and the
// reference sources that contributed to them.
type Analysis struct {
	Mode      string
	Positions []Position
	Summary   Summary
	Sources   []string
}

// NewAnalysis summarizes 'ps'.
func NewAnalysis(mode string, ps []Position, sources []string) *Analysis {
	return &Analysis{Mode: mode, Positions: ps, Summary: Analyze(ps), Sources: sources}
}

func (a *Analysis) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("mode", a.Mode)
	w.Append("summary", a.Summary)
	w.Append("positions", nonNil(a.Positions))
	w.Append("sources", nonNil(a.Sources))
	return w.MarshalJSON()
}

// Query evaluates the JSONPath expression 'q' on the JSON form of the analysis.
func (a *Analysis) Query(q string) (any, error) {
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	res, err := jsonpath.Get(q, v)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", q, err)
	}
	return res, nil
}
