package positions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFloat(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"12.5", 12.5, true},
		{" 100 ", 100, true},
		{"1.234,56", 1234.56, true},
		{"1,234.56", 1234.56, true},
		{"0,85", 0.85, true},
		{"1.234.567", 1234567, true},
		{"€ 1.500,00", 1500, true},
		{"1,80%", 1.8, true},
		{"1 500", 1500, true},
		{"-3", -3, true},
		{"1e3", 1000, true},
		{"", 0, false},
		{"n.d.", 0, false},
		{"abc", 0, false},
		{"1e400", 0, false},
		{"-1e400", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseFloat(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"4", 4, true},
		{"4.0", 4, true},
		{"3,7", 3, true},
		{"-", 0, false},
		{"", 0, false},
		{"-4,9", -4, true},
		{"99999999999999999999", 0, false},
		{"1e400", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseInt(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
