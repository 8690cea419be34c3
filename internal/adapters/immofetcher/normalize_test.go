package immofetcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"  Trilocale  via   Roma ", "Trilocale via Roma"},
		{"a\n\tb\r\nc", "a b c"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanText(tt.in), "CleanText(%q)", tt.in)
	}
}

func TestParsePriceThousandsSeparator(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"€230.000", 230000},
		{"230.000 €", 230000},
		{"€ 1.234.567", 1234567},
		{"€230.000,50", 230000.50},
		{"1.234.567,89", 1234567.89},
	}

	for _, tt := range tests {
		got := ParsePrice(tt.in)
		require.NotNil(t, got, "ParsePrice(%q)", tt.in)
		assert.Equal(t, tt.want, *got, "ParsePrice(%q)", tt.in)
	}
}

// A comma-only price is read with a decimal comma, so "230,000" parses to
// 230.0. This pins the documented behavior for the ambiguous case, not an
// endorsement of its correctness.
func TestParsePriceDecimalCommaPolicy(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"€230,50", 230.50},
		{"230,000", 230.0},
		{"€1,5", 1.5},
	}

	for _, tt := range tests {
		got := ParsePrice(tt.in)
		require.NotNil(t, got, "ParsePrice(%q)", tt.in)
		assert.Equal(t, tt.want, *got, "ParsePrice(%q)", tt.in)
	}
}

func TestParsePriceUnparseable(t *testing.T) {
	for _, in := range []string{"", "   ", "prezzo su richiesta", "€", ",", "..."} {
		assert.Nil(t, ParsePrice(in), "ParsePrice(%q)", in)
	}
}

func TestParseInt(t *testing.T) {
	three := 3
	minusTwo := -2
	year := 1995

	tests := []struct {
		in   string
		want *int
	}{
		{"3 locali", &three},
		{"no rooms", nil},
		{"", nil},
		{"-2", &minusTwo},
		{"Anno di costruzione 1995", &year},
	}

	for _, tt := range tests {
		got := ParseInt(tt.in)
		if tt.want == nil {
			assert.Nil(t, got, "ParseInt(%q)", tt.in)
			continue
		}
		require.NotNil(t, got, "ParseInt(%q)", tt.in)
		assert.Equal(t, *tt.want, *got, "ParseInt(%q)", tt.in)
	}
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"85,5 m²", 85.5},
		{"120 m²", 120},
		{"-3.25", -3.25},
	}

	for _, tt := range tests {
		got := ParseFloat(tt.in)
		require.NotNil(t, got, "ParseFloat(%q)", tt.in)
		assert.Equal(t, tt.want, *got, "ParseFloat(%q)", tt.in)
	}

	assert.Nil(t, ParseFloat(""))
	assert.Nil(t, ParseFloat("superficie da definire"))
}
