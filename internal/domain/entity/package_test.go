package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hapkiduki/parcel-go/internal/domain/valueobject"
)

func num(v float64) valueobject.Scalar {
	return valueobject.NewScalar(v)
}

func text(s string) valueobject.Scalar {
	return valueobject.NewScalarFromString(s)
}

func sortNums(t *testing.T, w, h, l, m float64) Category {
	t.Helper()
	cat, err := Sort(num(w), num(h), num(l), num(m))
	require.NoError(t, err)
	return cat
}

func TestSortCategories(t *testing.T) {
	tests := []struct {
		name       string
		w, h, l, m float64
		want       Category
	}{
		{"standard package", 100, 100, 50, 10, CategoryStandard},
		{"bulky by volume", 100, 100, 100, 10, CategorySpecial},
		{"bulky by dimension", 150, 50, 50, 10, CategorySpecial},
		{"heavy only", 100, 100, 50, 20, CategorySpecial},
		{"bulky and heavy", 150, 150, 150, 25, CategoryRejected},
		{"bulky dimension on height", 10, 150, 10, 5, CategorySpecial},
		{"bulky dimension on length", 10, 10, 150, 5, CategorySpecial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sortNums(t, tt.w, tt.h, tt.l, tt.m))
		})
	}
}

func TestSortBoundaries(t *testing.T) {
	tests := []struct {
		name       string
		w, h, l, m float64
		want       Category
	}{
		{"volume exactly at threshold", 100, 100, 100, 19, CategorySpecial},
		{"mass exactly at threshold", 100, 100, 50, 20, CategorySpecial},
		{"dimension exactly at threshold", 150, 50, 50, 19, CategorySpecial},
		{"volume just under threshold", 99.99999, 100, 100, 10, CategoryStandard},
		{"mass just under threshold", 100, 100, 50, 19.999999999, CategoryStandard},
		{"dimension just under threshold", 149.999999999, 50, 50, 10, CategoryStandard},
		{"smallest valid measurements", 1, 1, 1, MinScalar * 2, CategoryStandard},
		{"large but within limits", 999, 999, 999, 999, CategoryRejected},
		{"dimensions exactly at maximum", 1000, 1000, 1000, 1000, CategoryRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sortNums(t, tt.w, tt.h, tt.l, tt.m))
		})
	}
}

func TestSortTextualInputs(t *testing.T) {
	tests := []struct {
		name       string
		w, h, l, m valueobject.Scalar
		want       Category
	}{
		{"plain strings", text("100"), text("100"), text("50"), text("10"), CategoryStandard},
		{"surrounding whitespace", text(" 100 "), text("100"), text("50"), text("10"), CategoryStandard},
		{"interior whitespace", text("1 0 0"), text("100"), text("50"), text("10"), CategoryStandard},
		{"full-width digits", text("１００"), text("100"), text("50"), text("10"), CategoryStandard},
		{"arabic-indic digits", text("١٥٠"), text("50"), text("50"), text("10"), CategorySpecial},
		{"mixed numeric and textual", num(150), text("150"), num(150), text("25"), CategoryRejected},
		{"decimal text mass", text("100"), text("100"), text("50"), text("20.0"), CategorySpecial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, err := Sort(tt.w, tt.h, tt.l, tt.m)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cat)
		})
	}
}

func TestSortTextualEquivalence(t *testing.T) {
	// A textual representation must classify exactly like its numeric value.
	fromNums, err := Sort(num(100), num(100), num(100), num(10))
	require.NoError(t, err)

	fromText, err := Sort(text("１００"), text(" 100 "), text("100"), text("10"))
	require.NoError(t, err)

	assert.Equal(t, fromNums, fromText)
}

func TestSortIsDeterministic(t *testing.T) {
	first, err := Sort(num(150), num(50), num(50), num(19))
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := Sort(num(150), num(50), num(50), num(19))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSortInvalidInputs(t *testing.T) {
	tests := []struct {
		name       string
		w, h, l, m valueobject.Scalar
		reason     error
		contains   string
	}{
		{"zero width", num(0), num(100), num(100), num(10), ErrBelowMinimum, "must be greater than"},
		{"negative height", num(100), num(-5), num(100), num(10), ErrBelowMinimum, "must be greater than"},
		{"width below epsilon", num(MinScalar / 2), num(100), num(100), num(10), ErrBelowMinimum, "must be greater than"},
		{"mass below epsilon", num(100), num(100), num(100), num(MinScalar / 2), ErrBelowMinimum, "must be greater than"},
		{"dimension above maximum", num(1001), num(100), num(100), num(10), ErrAboveMaximum, "exceeds maximum limit of 1000 cm"},
		{"mass above maximum", num(100), num(100), num(100), num(1001), ErrAboveMaximum, "exceeds maximum limit of 1000 kg"},
		{"positive infinity", num(math.Inf(1)), num(100), num(100), num(10), ErrNotFinite, "must be a finite number"},
		{"negative infinity", num(100), num(math.Inf(-1)), num(100), num(10), ErrNotFinite, "must be a finite number"},
		{"nan", num(100), num(100), num(math.NaN()), num(10), ErrNotFinite, "must be a finite number"},
		{"textual nan", num(100), num(100), num(100), text("NaN"), ErrNotFinite, "must be a finite number"},
		{"unparseable text", text("abc"), num(100), num(100), num(10), ErrNotANumber, "must be a valid number"},
		{"double decimal point", num(100), text("12.34.56"), num(100), num(10), ErrNotANumber, "must be a valid number"},
		{"empty text", text(""), num(100), num(100), num(10), ErrNotANumber, "must be a valid number"},
		{"absent value", valueobject.Scalar{}, num(100), num(100), num(10), ErrNotANumber, "must be a valid number"},
		{"wrong-typed value", valueobject.ScalarOf([]int{1, 2}), num(100), num(100), num(10), ErrNotANumber, "must be a valid number"},
		{"nil value", valueobject.ScalarOf(nil), num(100), num(100), num(10), ErrNotANumber, "must be a valid number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Sort(tt.w, tt.h, tt.l, tt.m)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.reason)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestSortReportsFirstInvalidParameter(t *testing.T) {
	// width is checked before mass, so width's failure wins even though
	// mass is invalid too.
	_, err := Sort(text("abc"), num(100), num(100), num(-1))
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "width", verr.Param)
	assert.Equal(t, "abc", verr.Value)
	assert.ErrorIs(t, verr, ErrNotANumber)
}

func TestValidationErrorMessages(t *testing.T) {
	_, err := Sort(num(100), num(100), num(100), num(1001))
	require.Error(t, err)
	assert.EqualError(t, err, "invalid mass: 1001: exceeds maximum limit of 1000 kg")

	_, err = Sort(num(0), num(100), num(100), num(10))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid width: 0: must be greater than 2.220446049250313e-16")
}

func TestNewPackageDerivedValues(t *testing.T) {
	p, err := NewPackage(num(100), num(100), num(50), num(10))
	require.NoError(t, err)

	assert.InDelta(t, 500_000, p.Volume(), 1e-9)
	assert.InDelta(t, 100, p.MaxDimension(), 1e-9)
	assert.InDelta(t, 10, p.Mass(), 1e-9)
	assert.Equal(t, valueobject.NewDimensions(100, 100, 50), p.Dimensions())
	assert.False(t, p.IsBulky())
	assert.False(t, p.IsHeavy())
	assert.Equal(t, CategoryStandard, p.Category())
}

func TestMaximumBoundIsInclusive(t *testing.T) {
	// Exactly 1000 is accepted; the maximum bound is inclusive, unlike the
	// exclusive minimum.
	p, err := NewPackage(num(1000), num(1), num(1), num(1000))
	require.NoError(t, err)
	assert.Equal(t, CategoryRejected, p.Category())
}
