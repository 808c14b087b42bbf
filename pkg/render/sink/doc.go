// Package sink writes a [diagram.Scene] out in a concrete file format.
//
// # Formats
//
//   - PNG: rasterized with github.com/fogleman/gg and the fixed-size
//     basic font from golang.org/x/image
//   - SVG: emitted with github.com/ajstarks/svgo
//   - PDF: the SVG output converted with [render.ToPDF] (requires rsvg-convert)
//
// Basic usage:
//
//	scene := diagram.Build(layout)
//	png, err := sink.RenderPNG(scene, sink.WithScale(2))
//	svg := sink.RenderSVG(scene)
//
// [diagram.Scene]: github.com/matzehuels/groundgrid/pkg/render/diagram.Scene
// [render.ToPDF]: github.com/matzehuels/groundgrid/pkg/render.ToPDF
package sink
