package diagram

import (
	"image/color"
	"strconv"

	"github.com/matzehuels/groundgrid/pkg/grid"
)

// Plot frame margins in pixels.
const (
	marginLeft   = 40.0
	marginRight  = 30.0
	marginTop    = 36.0
	marginBottom = 46.0
)

// Data-space vertical extent. Ticks span ±0.5, overhang markers ±0.3 and
// position labels sit at 0.6.
const (
	yMin       = -0.8
	yMax       = 1.0
	tickHalf   = 0.5
	markerHalf = 0.3
	labelY     = 0.6
)

// xPad widens the data range on both sides as a fraction of wire length.
const xPad = 0.05

// Option configures [Build].
type Option func(*options)

type options struct {
	width, height float64
}

// WithSize sets the canvas size in pixels. Non-positive values are ignored.
func WithSize(width, height float64) Option {
	return func(o *options) {
		if width > 0 {
			o.width = width
		}
		if height > 0 {
			o.height = height
		}
	}
}

// frame maps data coordinates onto the plot area.
type frame struct {
	left, right, top, bottom float64
	xmin, xmax               float64
}

func (f frame) x(v float64) float64 {
	return f.left + (v-f.xmin)/(f.xmax-f.xmin)*(f.right-f.left)
}

func (f frame) y(v float64) float64 {
	return f.bottom - (v-yMin)/(yMax-yMin)*(f.bottom-f.top)
}

// Build lays out the reference-rod diagram for l.
func Build(l grid.GridLayout, opts ...Option) Scene {
	o := options{width: DefaultWidth, height: DefaultHeight}
	for _, opt := range opts {
		opt(&o)
	}

	length := l.Spec.WireLengthIn
	overhang := l.Spec.OverhangIn
	f := frame{
		left:   marginLeft,
		right:  o.width - marginRight,
		top:    marginTop,
		bottom: o.height - marginBottom,
		xmin:   -xPad * length,
		xmax:   (1 + xPad) * length,
	}

	s := Scene{Width: o.width, Height: o.height, Background: ColorBackground, Title: Title}

	// Grid and axis go first so the wires are drawn on top.
	ticks := axisTicks(f.xmin, f.xmax, 10)
	for _, v := range ticks {
		s.line(f.x(v), f.top, f.x(v), f.bottom, ColorGrid, 1, true, RoleGrid)
	}
	s.line(f.left, f.bottom, f.right, f.bottom, ColorAxis, 1, false, RoleAxis)
	for _, v := range ticks {
		x := f.x(v)
		s.line(x, f.bottom, x, f.bottom+4, ColorAxis, 1, false, RoleAxis)
		s.text(x, f.bottom+16, strconv.FormatFloat(v, 'f', -1, 64), 10, AnchorMiddle, RoleAxis)
	}

	s.line(f.x(0), f.y(0), f.x(length), f.y(0), ColorRod, 2, false, RoleRod)

	for _, pos := range l.Vertical.PositionsIn {
		x := f.x(pos)
		s.line(x, f.y(-tickHalf), x, f.y(tickHalf), ColorTick, 2, false, RoleTick)
		s.text(x, f.y(labelY), formatPosition(pos), 8, AnchorMiddle, RoleLabel)
	}

	for _, b := range []float64{overhang, length - overhang} {
		x := f.x(b)
		s.line(x, f.y(-markerHalf), x, f.y(markerHalf), ColorOverhang, 1.5, true, RoleOverhang)
	}

	s.text(o.width/2, marginTop-16, Title, 13, AnchorMiddle, RoleTitle)
	s.text((f.left+f.right)/2, o.height-8, AxisLabel, 11, AnchorMiddle, RoleAxis)
	s.legend(f)
	return s
}

// legend draws a two-entry key in the upper right corner of the plot.
func (s *Scene) legend(f frame) {
	const (
		w, h   = 170.0, 40.0
		pad    = 6.0
		sample = 24.0
	)
	x, y := f.right-w-pad, f.top+pad
	s.Rects = append(s.Rects, Rect{X: x, Y: y, W: w, H: h, Fill: ColorBackground, Stroke: ColorGrid, Role: RoleLegend})

	entries := []struct {
		label  string
		c      color.NRGBA
		dashed bool
	}{
		{LegendRod, ColorRod, false},
		{LegendBorder, ColorOverhang, true},
	}
	for i, e := range entries {
		cy := y + pad + 8 + float64(i)*16
		s.line(x+pad, cy, x+pad+sample, cy, e.c, 2, e.dashed, RoleLegend)
		s.text(x+2*pad+sample, cy+4, e.label, 10, AnchorStart, RoleLegend)
	}
}
