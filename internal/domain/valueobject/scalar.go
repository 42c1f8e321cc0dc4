// Package valueobject contains value objects that represent concepts without identity.
// Value objects are immutable and compared by their attributes rather than identity.
// They encapsulate validation logic and ensure data integrity.
//
// Value Objects follow these principles:
//   - Immutability: Once created, they cannot be changed.
//   - Equality: Two value objects are equal if all their attributes are equal.
//   - Self-validation: They validate their own data upon creation.
//   - Side-effect free: Methods returns new instances rather than modifying state
package valueobject

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/hapkiduki/parcel-go/pkg/numtext"
)

// ErrNotANumber is returned when a Scalar holds a value that cannot be
// resolved to a number: unparseable text, or a shape that is neither
// numeric nor textual (JSON arrays, objects, null, absent fields).
var ErrNotANumber = errors.New("must be a valid number")

// scalarKind discriminates the shapes a raw measurement can arrive in.
type scalarKind uint8

const (
	// scalarInvalid covers absent values and non-numeric, non-textual shapes.
	// It is deliberately the zero value so an unset Scalar resolves to an error.
	scalarInvalid scalarKind = iota

	// scalarNumber is a value that arrived as a native number.
	scalarNumber

	// scalarText is a value that arrived as text and still needs parsing.
	scalarText
)

// Scalar is a raw measurement value as received at the system boundary.
// Callers submit dimensions and mass either as numbers or as textual
// representations (possibly containing whitespace and non-ASCII digits);
// Scalar carries either shape until validation resolves it to a float64.
//
// Example usage:
//
//	w := valueobject.NewScalar(100)
//	h := valueobject.NewScalarFromString("１００")
type Scalar struct {
	kind scalarKind
	num  float64
	text string
}

// NewScalar creates a Scalar from a native numeric value.
//
// Parameters:
//   - v: the numeric value
//
// Returns:
//   - Scalar: the created Scalar value object
func NewScalar(v float64) Scalar {
	return Scalar{kind: scalarNumber, num: v}
}

// NewScalarFromString creates a Scalar from a textual representation.
// The text is kept verbatim so error messages can show the original input.
//
// Parameters:
//   - s: the textual representation
//
// Returns:
//   - Scalar: the created Scalar value object
func NewScalarFromString(s string) Scalar {
	return Scalar{kind: scalarText, text: s}
}

// ScalarOf creates a Scalar from an arbitrary dynamic value.
// Native numeric types and strings are accepted; every other shape
// (booleans, slices, maps, nil) produces an invalid Scalar that resolves
// to ErrNotANumber. Rejection is explicit rather than relying on
// implicit conversion.
//
// Parameters:
//   - v: the dynamic value
//
// Returns:
//   - Scalar: the created Scalar value object
func ScalarOf(v any) Scalar {
	switch x := v.(type) {
	case float64:
		return NewScalar(x)
	case float32:
		return NewScalar(float64(x))
	case int:
		return NewScalar(float64(x))
	case int8:
		return NewScalar(float64(x))
	case int16:
		return NewScalar(float64(x))
	case int32:
		return NewScalar(float64(x))
	case int64:
		return NewScalar(float64(x))
	case uint:
		return NewScalar(float64(x))
	case uint8:
		return NewScalar(float64(x))
	case uint16:
		return NewScalar(float64(x))
	case uint32:
		return NewScalar(float64(x))
	case uint64:
		return NewScalar(float64(x))
	case string:
		return NewScalarFromString(x)
	case json.Number:
		return NewScalarFromString(x.String())
	case nil:
		return Scalar{kind: scalarInvalid, text: "<nil>"}
	default:
		return Scalar{kind: scalarInvalid, text: strings.TrimSpace(displayString(x))}
	}
}

// displayString formats an arbitrary value for error messages.
func displayString(v any) string {
	if s, ok := v.(interface{ String() string }); ok {
		return s.String()
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "<invalid>"
	}
	return string(b)
}

// Resolve converts the Scalar to a float64.
// Numeric values pass through unchanged, including non-finite ones;
// finiteness and range policy belong to the domain validator, not here.
// Textual values are normalized (whitespace stripped, Unicode digits
// folded) and parsed as an arbitrary-precision decimal.
//
// Returns:
//   - float64: the resolved value
//   - error: ErrNotANumber if the value has no numeric interpretation
func (s Scalar) Resolve() (float64, error) {
	switch s.kind {
	case scalarNumber:
		return s.num, nil
	case scalarText:
		f, err := numtext.ParseFloat(s.text)
		if err != nil {
			return 0, ErrNotANumber
		}
		return f, nil
	default:
		return 0, ErrNotANumber
	}
}

// IsTextual reports whether the Scalar arrived as text.
//
// Returns:
//   - bool: true if the value was submitted as a textual representation
func (s Scalar) IsTextual() bool {
	return s.kind == scalarText
}

// String returns the original representation of the value for display
// in error messages and logs.
//
// Returns:
//   - string: the value as received
func (s Scalar) String() string {
	switch s.kind {
	case scalarNumber:
		return strconv.FormatFloat(s.num, 'g', -1, 64)
	case scalarText:
		return s.text
	default:
		if s.text == "" {
			return "<none>"
		}
		return s.text
	}
}

// UnmarshalJSON implements json.Unmarshaler.
// A JSON number or JSON string becomes a valid Scalar; any other JSON
// shape becomes an invalid Scalar carrying the raw token for error
// reporting. Decoding itself never fails, so a request with one bad
// field still validates parameters in their declared order.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = NewScalarFromString(str)
		return nil
	}

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*s = NewScalar(num)
		return nil
	}

	*s = Scalar{kind: scalarInvalid, text: strings.TrimSpace(string(data))}
	return nil
}

// MarshalJSON implements json.Marshaler.
// Numeric Scalars marshal as numbers, textual ones as strings.
func (s Scalar) MarshalJSON() ([]byte, error) {
	switch s.kind {
	case scalarNumber:
		return json.Marshal(s.num)
	case scalarText:
		return json.Marshal(s.text)
	default:
		return []byte("null"), nil
	}
}
