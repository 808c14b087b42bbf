// Package render turns a computed grid layout into pictures.
//
// # Overview
//
// Two visualizations are provided:
//
//   - [diagram]: the reference-rod diagram. One horizontal wire drawn to
//     scale with a tick at every vertical wire crossing and dashed markers at
//     the overhang boundaries. Built as a format-neutral [diagram.Scene].
//   - [plan]: a top view of the whole mesh, laid out with Graphviz.
//
// Scenes are written out by the [sink] package as PNG, SVG or PDF.
//
// # Format Conversion
//
// [ToPDF] converts any SVG to PDF using the external rsvg-convert tool
// (from librsvg).
//
//	svg := sink.RenderSVG(scene)
//	pdf, err := render.ToPDF(ctx, svg)
//
// [diagram]: github.com/matzehuels/groundgrid/pkg/render/diagram
// [diagram.Scene]: github.com/matzehuels/groundgrid/pkg/render/diagram.Scene
// [plan]: github.com/matzehuels/groundgrid/pkg/render/plan
// [sink]: github.com/matzehuels/groundgrid/pkg/render/sink
package render
