// Package entity contains the core bussiness entities of the domain layer.
package entity

import (
	"errors"
	"fmt"
	"math"

	"github.com/hapkiduki/parcel-go/internal/domain/valueobject"
)

// Validation errors define domain-specific error conditions for package
// measurements. ErrNotANumber is shared with the valueobject layer so a
// single errors.Is check covers both parse and shape failures.
var (
	// ErrNotANumber is returned for unparseable or wrong-typed input.
	ErrNotANumber = valueobject.ErrNotANumber

	// ErrNotFinite is returned for NaN or infinite values.
	ErrNotFinite = errors.New("must be a finite number")

	// ErrBelowMinimum is returned for values at or below the minimum
	// positive threshold. The minimum bound is exclusive.
	ErrBelowMinimum = errors.New("must be greater than minimum")

	// ErrAboveMaximum is returned for values above the parameter-specific
	// maximum. The maximum bound is inclusive.
	ErrAboveMaximum = errors.New("exceeds maximum limit")
)

// Measurement limits and classification thresholds.
const (
	// MaxDimensionCM is the largest accepted linear dimension.
	MaxDimensionCM = 1000

	// MaxMassKG is the largest accepted mass.
	MaxMassKG = 1000

	// MinScalar is the exclusive lower bound for every measurement:
	// the float64 machine epsilon. Values at or below it are rejected,
	// which also rules out zero and negatives.
	MinScalar = 0x1p-52

	// BulkyVolumeCM3 is the volume at which a parcel counts as bulky.
	BulkyVolumeCM3 = 1_000_000

	// BulkyDimensionCM is the single-dimension length at which a parcel
	// counts as bulky.
	BulkyDimensionCM = 150

	// HeavyMassKG is the mass at which a parcel counts as heavy.
	HeavyMassKG = 20
)

// Category is the handling category assigned to a parcel.
type Category string

const (
	// CategoryStandard is for parcels that are neither bulky nor heavy.
	CategoryStandard Category = "STANDARD"

	// CategorySpecial is for parcels that are bulky or heavy, but not both.
	CategorySpecial Category = "SPECIAL"

	// CategoryRejected is for parcels that are both bulky and heavy.
	CategoryRejected Category = "REJECTED"
)

// ValidationError reports a measurement that failed validation.
// Param identifies the offending parameter, Value its original
// representation, and Reason one of the sentinel validation errors.
type ValidationError struct {
	// Param is the parameter name (width, height, length, mass).
	Param string

	// Value is the original representation of the rejected value.
	Value string

	// Reason is the sentinel error classifying the failure.
	Reason error

	// Limit is the violated bound, set for ErrBelowMinimum and ErrAboveMaximum.
	Limit float64

	// Unit is the unit of the violated bound ("cm" or "kg"), set for
	// ErrAboveMaximum.
	Unit string
}

// Error implements the error interface with a human-readable message
// identifying the offending parameter and value.
func (e *ValidationError) Error() string {
	switch {
	case errors.Is(e.Reason, ErrBelowMinimum):
		return fmt.Sprintf("invalid %s: %s: must be greater than %g", e.Param, e.Value, e.Limit)
	case errors.Is(e.Reason, ErrAboveMaximum):
		return fmt.Sprintf("invalid %s: %s: exceeds maximum limit of %g %s", e.Param, e.Value, e.Limit, e.Unit)
	default:
		return fmt.Sprintf("invalid %s: %s: %s", e.Param, e.Value, e.Reason)
	}
}

// Unwrap exposes the sentinel reason for errors.Is checks.
func (e *ValidationError) Unwrap() error {
	return e.Reason
}

// Package represents a single parcel with validated measurements.
// It is immutable after construction: the derived volume and maximum
// dimension are computed eagerly in NewPackage and never change.
type Package struct {
	dims         valueobject.Dimensions
	mass         float64
	volume       float64
	maxDimension float64
}

// NewPackage creates a Package from raw measurements, validating each in
// fixed order: width, height, length, mass. The first invalid parameter
// aborts construction and is the one reported.
//
// Parameters:
//   - width: Width in centimeters
//   - height: Height in centimeters
//   - length: Length in centimeters
//   - mass: Mass in kilograms
//
// Returns:
//   - *Package: the validated, immutable package
//   - error: *ValidationError for the first invalid parameter
func NewPackage(width, height, length, mass valueobject.Scalar) (*Package, error) {
	w, err := validateScalar(width, "width", MaxDimensionCM, "cm")
	if err != nil {
		return nil, err
	}
	h, err := validateScalar(height, "height", MaxDimensionCM, "cm")
	if err != nil {
		return nil, err
	}
	l, err := validateScalar(length, "length", MaxDimensionCM, "cm")
	if err != nil {
		return nil, err
	}
	m, err := validateScalar(mass, "mass", MaxMassKG, "kg")
	if err != nil {
		return nil, err
	}

	dims := valueobject.NewDimensions(w, h, l)
	return &Package{
		dims:         dims,
		mass:         m,
		volume:       dims.Volume(),
		maxDimension: dims.Max(),
	}, nil
}

// validateScalar resolves a raw measurement and enforces its bounds.
// The minimum bound is exclusive (> MinScalar); the maximum is inclusive
// (exactly max is accepted).
func validateScalar(s valueobject.Scalar, param string, max float64, unit string) (float64, error) {
	v, err := s.Resolve()
	if err != nil {
		return 0, &ValidationError{Param: param, Value: s.String(), Reason: ErrNotANumber}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ValidationError{Param: param, Value: s.String(), Reason: ErrNotFinite}
	}
	if v <= MinScalar {
		return 0, &ValidationError{Param: param, Value: s.String(), Reason: ErrBelowMinimum, Limit: MinScalar}
	}
	if v > max {
		return 0, &ValidationError{Param: param, Value: s.String(), Reason: ErrAboveMaximum, Limit: max, Unit: unit}
	}
	return v, nil
}

// Dimensions returns the validated dimensions.
//
// Returns:
//   - valueobject.Dimensions: width, height, and length in cm
func (p *Package) Dimensions() valueobject.Dimensions {
	return p.dims
}

// Mass returns the validated mass.
//
// Returns:
//   - float64: mass in kg
func (p *Package) Mass() float64 {
	return p.mass
}

// Volume returns the precomputed volume.
//
// Returns:
//   - float64: volume in cm³
func (p *Package) Volume() float64 {
	return p.volume
}

// MaxDimension returns the precomputed largest single dimension.
//
// Returns:
//   - float64: maximum of width, height, and length in cm
func (p *Package) MaxDimension() float64 {
	return p.maxDimension
}

// IsBulky checks if the package is bulky: volume at or above
// BulkyVolumeCM3, or any single dimension at or above BulkyDimensionCM.
//
// Returns:
//   - bool: true if the package is bulky
func (p *Package) IsBulky() bool {
	return p.volume >= BulkyVolumeCM3 || p.maxDimension >= BulkyDimensionCM
}

// IsHeavy checks if the package is heavy: mass at or above HeavyMassKG.
//
// Returns:
//   - bool: true if the package is heavy
func (p *Package) IsHeavy() bool {
	return p.mass >= HeavyMassKG
}

// Category determines the handling category for the package.
//
// Returns:
//   - Category: REJECTED if bulky and heavy, SPECIAL if exactly one,
//     STANDARD otherwise
func (p *Package) Category() Category {
	bulky, heavy := p.IsBulky(), p.IsHeavy()
	switch {
	case bulky && heavy:
		return CategoryRejected
	case bulky || heavy:
		return CategorySpecial
	default:
		return CategoryStandard
	}
}

// Sort classifies a parcel in one call: it validates the raw measurements,
// builds the Package, and returns its handling category. This is the
// single entry point for callers that do not need the Package itself.
//
// Parameters:
//   - width: Width in centimeters
//   - height: Height in centimeters
//   - length: Length in centimeters
//   - mass: Mass in kilograms
//
// Returns:
//   - Category: one of STANDARD, SPECIAL, REJECTED
//   - error: *ValidationError for the first invalid parameter
func Sort(width, height, length, mass valueobject.Scalar) (Category, error) {
	p, err := NewPackage(width, height, length, mass)
	if err != nil {
		return "", err
	}
	return p.Category(), nil
}
