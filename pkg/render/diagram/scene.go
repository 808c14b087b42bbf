// Package diagram builds the reference-rod diagram of a grid layout.
//
// The diagram shows the top horizontal wire drawn to scale, a tick where
// each vertical wire crosses it, and dashed markers at the two overhang
// boundaries. [Build] returns a [Scene] of plain lines, texts and rectangles
// in pixel coordinates (origin top-left). Sinks draw a scene without knowing
// anything about grids.
package diagram

import (
	"fmt"
	"image/color"
)

// Default canvas size in pixels.
const (
	DefaultWidth  = 1000.0
	DefaultHeight = 200.0
)

// Title and labels of the diagram.
const (
	Title         = "Top Horizontal Wire with Vertical Wire Positions"
	AxisLabel     = "Distance (inches)"
	LegendRod     = "Top Horizontal Wire"
	LegendBorder  = "Overhang Boundary"
	positionLabel = "%.2f in"
)

// Role tags what a scene element depicts.
type Role string

const (
	RoleRod      Role = "rod"
	RoleTick     Role = "tick"
	RoleOverhang Role = "overhang"
	RoleAxis     Role = "axis"
	RoleGrid     Role = "grid"
	RoleLegend   Role = "legend"
	RoleLabel    Role = "label"
	RoleTitle    Role = "title"
)

// Anchor is the horizontal alignment of a text relative to its X.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// Palette colors.
var (
	ColorBackground = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	ColorRod        = color.NRGBA{0x1f, 0x77, 0xb4, 0xff}
	ColorTick       = color.NRGBA{0xd6, 0x27, 0x28, 0xff}
	ColorOverhang   = color.NRGBA{0x2c, 0xa0, 0x2c, 0xff}
	ColorAxis       = color.NRGBA{0x33, 0x33, 0x33, 0xff}
	ColorGrid       = color.NRGBA{0xb0, 0xb0, 0xb0, 0x80}
	ColorText       = color.NRGBA{0x22, 0x22, 0x22, 0xff}
)

// Line is a straight stroke.
type Line struct {
	X1, Y1, X2, Y2 float64
	Stroke         color.NRGBA
	Width          float64
	Dashed         bool
	Role           Role
}

// Text is a single line of text; Y is its baseline.
type Text struct {
	X, Y   float64
	Value  string
	Size   float64
	Anchor Anchor
	Fill   color.NRGBA
	Role   Role
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
	Fill       color.NRGBA
	Stroke     color.NRGBA
	Role       Role
}

// Scene is a format-neutral drawing.
type Scene struct {
	Width, Height float64
	Background    color.NRGBA
	Title         string
	Rects         []Rect
	Lines         []Line
	Texts         []Text
}

// LinesWithRole returns the lines tagged r, in drawing order.
func (s Scene) LinesWithRole(r Role) []Line {
	var out []Line
	for _, l := range s.Lines {
		if l.Role == r {
			out = append(out, l)
		}
	}
	return out
}

// TextsWithRole returns the texts tagged r, in drawing order.
func (s Scene) TextsWithRole(r Role) []Text {
	var out []Text
	for _, t := range s.Texts {
		if t.Role == r {
			out = append(out, t)
		}
	}
	return out
}

func (s *Scene) line(x1, y1, x2, y2 float64, c color.NRGBA, w float64, dashed bool, r Role) {
	s.Lines = append(s.Lines, Line{X1: x1, Y1: y1, X2: x2, Y2: y2, Stroke: c, Width: w, Dashed: dashed, Role: r})
}

func (s *Scene) text(x, y float64, v string, size float64, a Anchor, r Role) {
	s.Texts = append(s.Texts, Text{X: x, Y: y, Value: v, Size: size, Anchor: a, Fill: ColorText, Role: r})
}

func formatPosition(v float64) string {
	return fmt.Sprintf(positionLabel, v)
}
