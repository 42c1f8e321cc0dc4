package numtext

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain ascii", "100", "100"},
		{"leading and trailing whitespace", " 100 ", "100"},
		{"interior whitespace", "1 0 0", "100"},
		{"tabs and newlines", "\t10\n0 ", "100"},
		{"full-width digits", "１００", "100"},
		{"mixed full-width and ascii", "１0０.5", "100.5"},
		{"arabic-indic digits", "٤٢", "42"},
		{"devanagari digits", "१२३", "123"},
		{"non-breaking space", "1 0", "10"},
		{"sign and decimal point preserved", "-12.5", "-12.5"},
		{"non-digit runes pass through", "abc", "abc"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"integer", "100", 100},
		{"decimal", "12.5", 12.5},
		{"negative", "-3.25", -3.25},
		{"whitespace", " 19.5 ", 19.5},
		{"full-width", "１５０", 150},
		{"scientific notation", "1e3", 1000},
		{"high precision rounds", "19.999999999999999999999", 20},
		{"leading plus", "+7", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFloat(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseFloatNonFinite(t *testing.T) {
	nan, err := ParseFloat("NaN")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(nan))

	inf, err := ParseFloat("Infinity")
	require.NoError(t, err)
	assert.True(t, math.IsInf(inf, 1))

	neg, err := ParseFloat("-inf")
	require.NoError(t, err)
	assert.True(t, math.IsInf(neg, -1))
}

func TestParseFloatSyntaxErrors(t *testing.T) {
	for _, input := range []string{"", "   ", "abc", "12.34.56", "10cm", "0x10", "--5"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseFloat(input)
			assert.ErrorIs(t, err, ErrSyntax)
		})
	}
}
