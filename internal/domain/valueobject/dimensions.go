// Package valueobject contains value objects that represent concepts without identity.
package valueobject

import "fmt"

// Dimensions represents the physical dimensions of a parcel.
// All measurements are in centimeters.
type Dimensions struct {
	// Width in centimeters.
	Width float64 `json:"width"`

	// Height in centimeters.
	Height float64 `json:"height"`

	// Length in centimeters.
	Length float64 `json:"length"`
}

// NewDimensions creates a new Dimensions value object.
//
// Parameters:
//   - width: Width in centimeters
//   - height: Height in centimeters
//   - length: Length in centimeters
//
// Returns:
//   - Dimensions: new Dimensions value object
func NewDimensions(width, height, length float64) Dimensions {
	return Dimensions{
		Width:  width,
		Height: height,
		Length: length,
	}
}

// Volume calculates the volume in cubic centimeters.
//
// Returns:
//   - float64: volume in cm³
func (d Dimensions) Volume() float64 {
	return d.Width * d.Height * d.Length
}

// Max returns the largest single dimension.
//
// Returns:
//   - float64: the maximum of width, height, and length in cm
func (d Dimensions) Max() float64 {
	m := d.Width
	if d.Height > m {
		m = d.Height
	}
	if d.Length > m {
		m = d.Length
	}
	return m
}

// IsEmpty checks if all dimensions are zero.
//
// Returns:
//   - bool: true if all dimensions are zero
func (d Dimensions) IsEmpty() bool {
	return d.Width == 0 && d.Height == 0 && d.Length == 0
}

// String returns a formatted string representation.
//
// Returns:
//   - string: formatted dimensions (e.g., "100.0x100.0x50.0 cm")
func (d Dimensions) String() string {
	return fmt.Sprintf("%.1fx%.1fx%.1f cm", d.Width, d.Height, d.Length)
}
