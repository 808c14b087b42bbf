package grid

import (
	"github.com/matzehuels/groundgrid/pkg/errors"
)

// Orientation selects one of the two wire layers.
type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

// Axis describes one wire layer.
//
// PositionsIn holds the offset of each wire from the grid edge, measured
// along the perpendicular layer. PositionsIn[i] == overhang + i*SpacingIn.
type Axis struct {
	Count       int       `json:"count" yaml:"count"`
	SpacingIn   float64   `json:"spacing_in" yaml:"spacing_in"`
	PositionsIn []float64 `json:"positions_in" yaml:"positions_in"`
}

// GridLayout is the result of [Calculate].
type GridLayout struct {
	Spec              GridSpec `json:"spec" yaml:"spec"`
	Horizontal        Axis     `json:"horizontal" yaml:"horizontal"`
	Vertical          Axis     `json:"vertical" yaml:"vertical"`
	EffectiveLengthIn float64  `json:"effective_length_in" yaml:"effective_length_in"`
	Intersections     int      `json:"intersections" yaml:"intersections"`
}

// Rod is a single physical wire of a layout.
type Rod struct {
	Number          int     // 1-based index within its layer
	OffsetIn        float64 // distance of the rod from the grid edge
	StartIn         float64 // rod extent along its own direction
	EndIn           float64
	FirstCrossingIn float64 // first and last crossing with the other layer
	LastCrossingIn  float64
}

// Calculate validates s and computes the layout of both wire layers.
// It fails with a validation error before computing anything, and with a
// computation error if the effective length is not positive.
func Calculate(s GridSpec) (GridLayout, error) {
	if err := s.Validate(); err != nil {
		return GridLayout{}, err
	}

	effective := s.EffectiveLengthIn()
	if !(effective > 0) {
		return GridLayout{}, errors.New(errors.ErrCodeComputation,
			"effective length (wire length minus total overhang) must be positive, got %.2f inches", effective)
	}

	h, v := Partition(s.TotalWires)
	return GridLayout{
		Spec:              s,
		Horizontal:        AxisLayout(h, effective, s.OverhangIn),
		Vertical:          AxisLayout(v, effective, s.OverhangIn),
		EffectiveLengthIn: effective,
		Intersections:     h * v,
	}, nil
}

// Partition splits a total wire count into horizontal and vertical counts,
// rounding the horizontal half up.
func Partition(total int) (horizontal, vertical int) {
	if total <= 0 {
		return 0, 0
	}
	horizontal = total - total/2
	return horizontal, total - horizontal
}

// AxisLayout spreads count wires evenly over effective inches, starting at
// overhang. A single wire sits at overhang with zero spacing.
func AxisLayout(count int, effective, overhang float64) Axis {
	if count <= 0 {
		return Axis{}
	}

	var spacing float64
	if count > 1 {
		spacing = effective / float64(count-1)
	}

	positions := make([]float64, count)
	for i := range positions {
		positions[i] = overhang + float64(i)*spacing
	}
	return Axis{Count: count, SpacingIn: spacing, PositionsIn: positions}
}

// Axis returns the layer with orientation o.
func (l GridLayout) Axis(o Orientation) Axis {
	if o == Horizontal {
		return l.Horizontal
	}
	return l.Vertical
}

// GridSizeIn is the side of the square footprint covered by the rods.
func (l GridLayout) GridSizeIn() float64 {
	return l.Spec.WireLengthIn
}

// Rods lists the rods of layer o. Each rod runs the full wire length and
// crosses the other layer between that layer's first and last position.
func (l GridLayout) Rods(o Orientation) []Rod {
	own, other := l.Horizontal, l.Vertical
	if o == Vertical {
		own, other = l.Vertical, l.Horizontal
	}

	first, last := l.Spec.OverhangIn, l.Spec.OverhangIn
	if n := len(other.PositionsIn); n > 0 {
		first, last = other.PositionsIn[0], other.PositionsIn[n-1]
	}

	rods := make([]Rod, len(own.PositionsIn))
	for i, pos := range own.PositionsIn {
		rods[i] = Rod{
			Number:          i + 1,
			OffsetIn:        pos,
			StartIn:         0,
			EndIn:           l.Spec.WireLengthIn,
			FirstCrossingIn: first,
			LastCrossingIn:  last,
		}
	}
	return rods
}
