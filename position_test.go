package positions

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInstrumentType(t *testing.T) {
	tests := []struct {
		label string
		want  InstrumentType
	}{
		{"Fondo", Fund},
		{" fondi ", Fund},
		{"FUND", Fund},
		{"Obbligazione", Bond},
		{"Azione", Equity},
		{"gestioni", Management},
		{"Titolo", Other},
		{"", Other},
		{"ETF", Other},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseInstrumentType(tt.label))
		})
	}
}

func TestInstrumentTypeLabelsRoundTrip(t *testing.T) {
	for _, typ := range InstrumentTypes {
		assert.Equal(t, typ, ParseInstrumentType(typ.String()))
	}
}

func TestPositionMarshalJSON(t *testing.T) {
	p := Position{ID: "IT0005083057", Name: "BTP 2032", Type: Bond, MarketValue: 1000, Weight: 12.5, Rating: 3}
	got, err := json.Marshal(p)
	require.NoError(t, err)
	want := `{"type":"Obbligazione","isin":"IT0005083057","name":"BTP 2032","weight":12.5,"marketValue":1000,"rating":3,"quartile":0,"annualCost":0,"marginBps":0}`
	assert.Equal(t, want, string(got))
}

func TestColumnsDoesNotAlias(t *testing.T) {
	c := Columns()
	c[0] = "changed"
	assert.Equal(t, ColType, RequiredColumns[0])
	assert.Equal(t, ColNote, c[len(c)-1])
}
