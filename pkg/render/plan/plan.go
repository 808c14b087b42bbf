// Package plan renders a top view of the whole ground grid with Graphviz.
//
// Every crossing becomes a point node pinned at its true position (scaled to
// fit [Options.SizeIn]), and every wire becomes a chain of edges from one
// rod end to the other. Horizontal wires are blue, vertical wires red.
// The neato engine honours the pinned positions, so the picture is to scale.
package plan

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/groundgrid/pkg/grid"
)

// DefaultSizeIn is the drawing size of the grid footprint in inches.
const DefaultSizeIn = 8.0

const (
	colorHorizontal = "#1f77b4"
	colorVertical   = "#d62728"
)

// Options configures plan rendering.
type Options struct {
	// SizeIn is the side length of the drawn footprint in inches.
	// Zero means DefaultSizeIn.
	SizeIn float64

	// Detailed labels every crossing with its (x, y) offset in grid inches.
	Detailed bool
}

// ToDOT converts a layout to Graphviz DOT format.
// The result can be rendered with [RenderSVG] or [RenderPNG], or with the
// graphviz command line tools.
func ToDOT(l grid.GridLayout, opts Options) string {
	size := opts.SizeIn
	if size <= 0 {
		size = DefaultSizeIn
	}
	length := l.Spec.WireLengthIn
	scale := size / length

	// Graphviz y grows upwards; the top edge of the grid is y = length.
	pos := func(x, y float64) string {
		return fmt.Sprintf(`pos="%.4f,%.4f!"`, x*scale, (length-y)*scale)
	}

	hs, vs := l.Horizontal.PositionsIn, l.Vertical.PositionsIn

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"white\";\n")
	fmt.Fprintf(&buf, "  label=%q;\n", fmt.Sprintf("%d x %d wires, %.2f in x %.2f in spacing",
		l.Horizontal.Count, l.Vertical.Count, l.Horizontal.SpacingIn, l.Vertical.SpacingIn))
	buf.WriteString("  labelloc=b;\n")
	buf.WriteString("  node [shape=point, width=0.06, color=black];\n")
	buf.WriteString("  edge [penwidth=2];\n")
	buf.WriteString("\n")

	for i, y := range hs {
		fmt.Fprintf(&buf, "  %q [%s, style=invis];\n", endID("h", i, 0), pos(0, y))
		fmt.Fprintf(&buf, "  %q [%s, style=invis];\n", endID("h", i, 1), pos(length, y))
	}
	for j, x := range vs {
		fmt.Fprintf(&buf, "  %q [%s, style=invis];\n", endID("v", j, 0), pos(x, 0))
		fmt.Fprintf(&buf, "  %q [%s, style=invis];\n", endID("v", j, 1), pos(x, length))
	}
	for i, y := range hs {
		for j, x := range vs {
			attrs := pos(x, y)
			if opts.Detailed {
				attrs += fmt.Sprintf(", xlabel=%q", fmt.Sprintf("(%.2f, %.2f)", x, y))
			}
			fmt.Fprintf(&buf, "  %q [%s];\n", crossingID(i, j), attrs)
		}
	}

	buf.WriteString("\n")
	for i := range hs {
		chain := []string{endID("h", i, 0)}
		for j := range vs {
			chain = append(chain, crossingID(i, j))
		}
		chain = append(chain, endID("h", i, 1))
		writeChain(&buf, chain, colorHorizontal)
	}
	for j := range vs {
		chain := []string{endID("v", j, 0)}
		for i := range hs {
			chain = append(chain, crossingID(i, j))
		}
		chain = append(chain, endID("v", j, 1))
		writeChain(&buf, chain, colorVertical)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func endID(layer string, i, end int) string {
	return fmt.Sprintf("%s%d_%d", layer, i+1, end)
}

func crossingID(h, v int) string {
	return fmt.Sprintf("x%d_%d", h+1, v+1)
}

func writeChain(buf *bytes.Buffer, ids []string, color string) {
	for k := 1; k < len(ids); k++ {
		fmt.Fprintf(buf, "  %q -- %q [color=%q];\n", ids[k-1], ids[k], color)
	}
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	data, err := render(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(data), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with a plain
// pixel-sized one so the SVG scales like the diagram sink output.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
