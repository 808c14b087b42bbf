// Package units normalizes wire lengths at the input boundary.
//
// The grid calculator works in inches only. Lengths typed in feet are
// converted here, before a [grid.GridSpec] is built, so the unit never leaks
// into the calculation.
//
// [grid.GridSpec]: github.com/matzehuels/groundgrid/pkg/grid.GridSpec
package units

import (
	"strings"

	"github.com/matzehuels/groundgrid/pkg/errors"
)

// Unit is a length unit accepted at the input boundary.
type Unit string

const (
	Inch Unit = "in"
	Foot Unit = "ft"
)

// InchesPerFoot is the feet to inches conversion factor.
const InchesPerFoot = 12.0

// Parse maps user spellings ("ft", "feet", "in", "inches", ...) to a Unit.
func Parse(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "in", "inch", "inches", `"`:
		return Inch, nil
	case "ft", "foot", "feet", "'":
		return Foot, nil
	}
	return "", errors.New(errors.ErrCodeInvalidUnit, "invalid length unit: %q (must be one of: in, ft)", s)
}

// Name returns the plural English name used in summaries.
func (u Unit) Name() string {
	switch u {
	case Foot:
		return "feet"
	case Inch:
		return "inches"
	}
	return string(u)
}

// ToInches converts v from u to inches.
func ToInches(v float64, u Unit) float64 {
	if u == Foot {
		return v * InchesPerFoot
	}
	return v
}

// FromInches converts v inches into u.
func FromInches(v float64, u Unit) float64 {
	if u == Foot {
		return v / InchesPerFoot
	}
	return v
}
