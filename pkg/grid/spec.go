package grid

import (
	"github.com/matzehuels/groundgrid/pkg/errors"
)

// MinTotalWires is the smallest total that yields one wire per layer.
const MinTotalWires = 2

// MaxTotalWires bounds the total so both layers stay small enough to list
// every wire position.
const MaxTotalWires = 10000

// GridSpec is the validated input of the calculator.
type GridSpec struct {
	TotalWires   int     `json:"total_wires" yaml:"total_wires"`
	WireLengthIn float64 `json:"wire_length_in" yaml:"wire_length_in"`
	OverhangIn   float64 `json:"overhang_in" yaml:"overhang_in"`
}

// Validate checks the count, length and overhang constraints in that order
// and reports the first one that fails.
func (s GridSpec) Validate() error {
	if s.TotalWires <= 0 {
		return errors.New(errors.ErrCodeInvalidWireCount, "total number of wires must be a positive integer")
	}
	if s.TotalWires < MinTotalWires {
		return errors.New(errors.ErrCodeInvalidWireCount, "not enough wires to form a grid (need at least 1 horizontal and 1 vertical)")
	}
	if s.TotalWires > MaxTotalWires {
		return errors.New(errors.ErrCodeInvalidWireCount, "total number of wires cannot exceed %d", MaxTotalWires)
	}
	if err := errors.ValidatePositive(errors.ErrCodeInvalidWireLength, "wire length", s.WireLengthIn); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative(errors.ErrCodeInvalidOverhang, "overhang length", s.OverhangIn); err != nil {
		return err
	}
	if 2*s.OverhangIn >= s.WireLengthIn {
		return errors.New(errors.ErrCodeInvalidOverhang, "total overhang (both sides) must be less than the wire length")
	}
	return nil
}

// EffectiveLengthIn is the span between the first and last crossing.
func (s GridSpec) EffectiveLengthIn() float64 {
	return s.WireLengthIn - 2*s.OverhangIn
}
