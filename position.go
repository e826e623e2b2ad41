package positions

import (
	"slices"
	"strings"
)

// InstrumentType is the coarse kind of a position.
type InstrumentType int

const (
	Other InstrumentType = iota
	Fund
	Bond
	Equity
	Management
)

// InstrumentTypes lists every type, in display order.
var InstrumentTypes = []InstrumentType{Fund, Bond, Equity, Management, Other}

// String returns the canonical label, as found in the Tipo column.
func (t InstrumentType) String() string {
	switch t {
	case Fund:
		return "Fondo"
	case Bond:
		return "Obbligazione"
	case Equity:
		return "Azione"
	case Management:
		return "Gestione"
	default:
		return "Titolo"
	}
}

// ParseInstrumentType reads a Tipo label. Italian labels, their plural and the english names
// are accepted in any case. Anything else is Other.
func ParseInstrumentType(label string) InstrumentType {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "fondo", "fondi", "fund":
		return Fund
	case "obbligazione", "obbligazioni", "bond":
		return Bond
	case "azione", "azioni", "equity":
		return Equity
	case "gestione", "gestioni", "management":
		return Management
	default:
		return Other
	}
}

func (t InstrumentType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *InstrumentType) UnmarshalText(text []byte) error {
	*t = ParseInstrumentType(string(text))
	return nil
}

// Canonical column names.
const (
	ColType        = "Tipo"
	ColID          = "ISIN"
	ColName        = "Strumento"
	ColCategory    = "Categoria"
	ColCurrency    = "Valuta"
	ColArea        = "Area"
	ColSector      = "Settore"
	ColWeight      = "Peso_%"
	ColMarketValue = "Controvalore"
	ColRating      = "Rating"
	ColQuartile    = "Quartile"
	ColAnnualCost  = "Costo_annuo_%"
	ColMarginBps   = "Margine_bps"
	ColNote        = "Note"
)

// RequiredColumns is the canonical schema, in file order.
var RequiredColumns = []string{
	ColType, ColID, ColName, ColCategory, ColCurrency, ColArea, ColSector,
	ColWeight, ColMarketValue, ColRating, ColQuartile, ColAnnualCost, ColMarginBps,
}

// Columns returns the canonical columns followed by the optional Note column.
func Columns() []string { return append(slices.Clone(RequiredColumns), ColNote) }

// Position is a single security line of a portfolio in the canonical schema.
//
// ID and Type are set once when the position is created. Reference data only fills
// attributes that are still at their zero value.
type Position struct {
	ID          ID
	Name        string
	Type        InstrumentType
	MarketValue float64
	Weight      float64 // percent of the portfolio
	Category    string
	Currency    string
	Area        string
	Sector      string
	Rating      int
	Quartile    int
	AnnualCost  float64 // percent per year
	MarginBps   float64 // basis points per year
	Note        string
}

// MarshalJSON writes the position with the canonical column order.
func (p Position) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("type", p.Type.String())
	w.Append("isin", p.ID)
	w.Append("name", p.Name)
	w.Optional("category", p.Category)
	w.Optional("currency", p.Currency)
	w.Optional("area", p.Area)
	w.Optional("sector", p.Sector)
	w.Append("weight", p.Weight)
	w.Append("marketValue", p.MarketValue)
	w.Append("rating", p.Rating)
	w.Append("quartile", p.Quartile)
	w.Append("annualCost", p.AnnualCost)
	w.Append("marginBps", p.MarginBps)
	w.Optional("note", p.Note)
	return w.MarshalJSON()
}
