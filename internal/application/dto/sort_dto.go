// Package dto contains data transfer objects.
package dto

import "github.com/hapkiduki/parcel-go/internal/domain/valueobject"

// SortRequest carries the raw measurements of a single parcel.
// Each field accepts a JSON number or a JSON string (textual values may
// contain whitespace and non-ASCII digits); any other shape is rejected
// during validation with a field-level error rather than a decode failure.
type SortRequest struct {
	// Width in centimeters.
	Width valueobject.Scalar `json:"width"`

	// Height in centimeters.
	Height valueobject.Scalar `json:"height"`

	// Length in centimeters.
	Length valueobject.Scalar `json:"length"`

	// Mass in kilograms.
	Mass valueobject.Scalar `json:"mass"`
}

// SortResult is the outcome of classifying a parcel.
type SortResult struct {
	// Category is the handling category: STANDARD, SPECIAL, or REJECTED.
	Category string `json:"category"`

	// VolumeCM3 is the parcel volume in cubic centimeters.
	VolumeCM3 float64 `json:"volume_cm3"`

	// MaxDimensionCM is the largest single dimension in centimeters.
	MaxDimensionCM float64 `json:"max_dimension_cm"`

	// IsBulky indicates whether the bulky predicate triggered.
	IsBulky bool `json:"is_bulky"`

	// IsHeavy indicates whether the heavy predicate triggered.
	IsHeavy bool `json:"is_heavy"`
}
