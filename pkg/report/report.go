// Package report formats a [grid.GridLayout] for people and programs.
//
// [Text] reproduces the plain summary printed after every calculation.
// [JSON] and [YAML] export the full-precision layout; only the text form
// rounds values, to two decimal places.
//
// [grid.GridLayout]: github.com/matzehuels/groundgrid/pkg/grid.GridLayout
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/groundgrid/pkg/errors"
	"github.com/matzehuels/groundgrid/pkg/grid"
	"github.com/matzehuels/groundgrid/pkg/units"
)

// Summary formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Option configures the text summary.
type Option func(*textOptions)

type textOptions struct {
	unit units.Unit
}

// WithLengthUnit shows the wire length in the unit it was entered in,
// next to its value in inches.
func WithLengthUnit(u units.Unit) Option {
	return func(o *textOptions) { o.unit = u }
}

// Encode renders l in the named format.
func Encode(format string, l grid.GridLayout, opts ...Option) ([]byte, error) {
	switch format {
	case FormatText:
		return []byte(Text(l, opts...)), nil
	case FormatJSON:
		return JSON(l)
	case FormatYAML:
		return YAML(l)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid summary format: %q (must be one of: text, json, yaml)", format)
}

// Text returns the human-readable layout summary.
func Text(l grid.GridLayout, opts ...Option) string {
	o := textOptions{unit: units.Inch}
	for _, opt := range opts {
		opt(&o)
	}

	s := l.Spec
	var b bytes.Buffer
	b.WriteString("Grid Layout Summary:\n")
	fmt.Fprintf(&b, "Total Wires: %d\n", s.TotalWires)
	fmt.Fprintf(&b, "Wire Length: %s\n", wireLength(s.WireLengthIn, o.unit))
	fmt.Fprintf(&b, "Overhang per side: %.2f inches\n", s.OverhangIn)
	fmt.Fprintf(&b, "Horizontal Wires: %d\n", l.Horizontal.Count)
	fmt.Fprintf(&b, "Vertical Wires: %d\n", l.Vertical.Count)
	fmt.Fprintf(&b, "Spacing between horizontal wires: %.2f inches\n", l.Horizontal.SpacingIn)
	fmt.Fprintf(&b, "Spacing between vertical wires: %.2f inches\n", l.Vertical.SpacingIn)
	fmt.Fprintf(&b, "Inner Grid Size (first to last intersection): %.2f inches x %.2f inches\n", l.EffectiveLengthIn, l.EffectiveLengthIn)
	fmt.Fprintf(&b, "Total Grid Size: %.2f inches x %.2f inches\n", l.GridSizeIn(), l.GridSizeIn())
	fmt.Fprintf(&b, "Number of Intersections: %d x %d = %d\n", l.Horizontal.Count, l.Vertical.Count, l.Intersections)

	b.WriteString("Vertical wire positions along top horizontal wire (from left edge):\n")
	writeRods(&b, "Vertical", l.Rods(grid.Vertical))
	b.WriteString("Horizontal wire positions along left vertical wire (from top edge):\n")
	writeRods(&b, "Horizontal", l.Rods(grid.Horizontal))
	return b.String()
}

func writeRods(b *bytes.Buffer, label string, rods []grid.Rod) {
	for _, r := range rods {
		fmt.Fprintf(b, "  %s wire %d: %.2f inches (rod extends from %.2f to %.2f inches)\n",
			label, r.Number, r.OffsetIn, r.StartIn, r.EndIn)
	}
}

func wireLength(in float64, u units.Unit) string {
	if u == units.Inch || u == "" {
		return fmt.Sprintf("%.2f inches", in)
	}
	v := strconv.FormatFloat(units.FromInches(in, u), 'f', -1, 64)
	return fmt.Sprintf("%s %s (%.2f inches)", v, u.Name(), in)
}

// JSON returns the indented JSON encoding of l.
func JSON(l grid.GridLayout) ([]byte, error) {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode layout as JSON")
	}
	return append(data, '\n'), nil
}

// YAML returns the YAML encoding of l.
func YAML(l grid.GridLayout) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(l); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode layout as YAML")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode layout as YAML")
	}
	return buf.Bytes(), nil
}
