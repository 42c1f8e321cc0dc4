// Package numtext provides parsing helpers for textual numeric input.
// Measurements arrive from clients as free-form text that may contain
// surrounding or interior whitespace and non-ASCII decimal digits
// (e.g. full-width １００ or Arabic-Indic ٤٢). This package normalizes
// such text to plain ASCII and parses it through an arbitrary-precision
// decimal representation before converting to float64.
package numtext

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// ErrSyntax is returned when text cannot be parsed as a decimal number.
var ErrSyntax = errors.New("invalid number syntax")

// Normalize strips every whitespace rune (leading, trailing, and interior)
// and folds any Unicode decimal digit to its ASCII equivalent.
// Non-digit, non-space runes pass through unchanged so that parse errors
// report the offending characters.
//
// Parameters:
//   - s: raw textual input
//
// Returns:
//   - string: normalized text ready for decimal parsing
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		if r > '9' && unicode.IsDigit(r) {
			if v, ok := digitValue(r); ok {
				b.WriteByte('0' + byte(v))
				continue
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

// digitValue returns the numeric value of a decimal digit rune.
// Unicode decimal digits (category Nd) are assigned in contiguous runs
// of ten starting at the zero digit, so the value is the offset from the
// start of the run.
func digitValue(r rune) (int, bool) {
	zero := r
	for i := 0; i < 9 && unicode.IsDigit(zero-1); i++ {
		zero--
	}
	v := int(r - zero)
	if v < 0 || v > 9 {
		return 0, false
	}
	return v, true
}

// ParseFloat normalizes and parses textual input into a float64.
// Parsing goes through an arbitrary-precision decimal so that values with
// more digits than float64 can represent are still accepted and rounded,
// matching how measurement feeds emit high-precision readings.
//
// Non-finite spellings ("NaN", "Inf", "Infinity") are returned as their
// float64 values rather than rejected; range policy belongs to the caller.
//
// Parameters:
//   - s: raw textual input
//
// Returns:
//   - float64: the parsed value
//   - error: ErrSyntax if the text is not a decimal number
func ParseFloat(s string) (float64, error) {
	n := Normalize(s)
	if n == "" {
		return 0, ErrSyntax
	}

	if d, err := decimal.NewFromString(n); err == nil {
		f, _ := d.Float64()
		return f, nil
	}

	// The decimal parser rejects non-finite spellings; fall back to float
	// syntax for those alone so the caller can report them as non-finite
	// values instead of syntax errors.
	if f, err := strconv.ParseFloat(n, 64); err == nil && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return f, nil
	}

	return 0, ErrSyntax
}
