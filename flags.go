package positions

// Flag is a review rule: positions matching it deserve a second look.
type Flag struct {
	Name        string
	Description string
	Match       func(Position) bool
}

// Flags returns the review rules, in report order.
func Flags() []Flag {
	return []Flag{
		{
			Name:        "Fondi_quartile4",
			Description: "funds in the fourth quartile of their category",
			Match:       func(p Position) bool { return p.Type == Fund && p.Quartile == 4 },
		},
		{
			Name:        "Fondi_rating_basso",
			Description: "funds rated 2 stars or less, unrated included",
			Match:       func(p Position) bool { return p.Type == Fund && p.Rating <= 2 },
		},
		{
			Name:        "Fondi_costo_alto",
			Description: "funds with an annual cost of 1.80% or more",
			Match:       func(p Position) bool { return p.Type == Fund && p.AnnualCost >= 1.80 },
		},
		{
			Name:        "Gest_multi_da_rivedere",
			Description: "managed accounts rated 3 stars or less",
			Match:       func(p Position) bool { return p.Type == Management && p.Rating <= 3 },
		},
	}
}

// FlagByName returns the rule called 'name'.
func FlagByName(name string) (Flag, bool) {
	for _, f := range Flags() {
		if f.Name == name {
			return f, true
		}
	}
	return Flag{}, false
}

// FlagResult is the outcome of one review rule.
type FlagResult struct {
	Name      string
	Positions []Position
}

func (r FlagResult) MarshalJSON() ([]byte, error) {
	ids := make([]ID, len(r.Positions))
	for i, p := range r.Positions {
		ids[i] = p.ID
	}
	var w jsonObjectWriter
	w.Append("name", r.Name)
	w.Append("count", len(r.Positions))
	w.Append("isins", ids)
	return w.MarshalJSON()
}

// Review applies every rule to 'ps', keeping the positions order.
func Review(ps []Position) []FlagResult {
	flags := Flags()
	results := make([]FlagResult, len(flags))
	for i, f := range flags {
		results[i].Name = f.Name
		results[i].Positions = Filter(ps, f.Match)
	}
	return results
}

// Filter returns the positions matching 'keep'.
func Filter(ps []Position, keep func(Position) bool) []Position {
	var out []Position
	for _, p := range ps {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
