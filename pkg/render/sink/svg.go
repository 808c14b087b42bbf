package sink

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/matzehuels/groundgrid/pkg/render/diagram"
)

// RenderSVG emits the scene as a standalone SVG document.
// Coordinates are rounded to whole pixels.
func RenderSVG(s diagram.Scene) []byte {
	var buf bytes.Buffer
	canvas := svg.New(&buf)

	w, h := px(s.Width), px(s.Height)
	canvas.Start(w, h)
	if s.Title != "" {
		canvas.Title(s.Title)
	}
	canvas.Rect(0, 0, w, h, "fill:"+rgb(s.Background))

	for _, r := range s.Rects {
		canvas.Rect(px(r.X), px(r.Y), px(r.W), px(r.H),
			fmt.Sprintf("fill:%s;stroke:%s;stroke-opacity:%s", rgb(r.Fill), rgb(r.Stroke), alpha(r.Stroke)))
	}

	for _, l := range s.Lines {
		style := fmt.Sprintf("stroke:%s;stroke-opacity:%s;stroke-width:%g", rgb(l.Stroke), alpha(l.Stroke), l.Width)
		if l.Dashed {
			style += ";stroke-dasharray:4,3"
		}
		canvas.Line(px(l.X1), px(l.Y1), px(l.X2), px(l.Y2), style, `class="`+string(l.Role)+`"`)
	}

	for _, t := range s.Texts {
		canvas.Text(px(t.X), px(t.Y), t.Value,
			fmt.Sprintf("font-family:sans-serif;font-size:%gpx;fill:%s;text-anchor:%s", t.Size, rgb(t.Fill), textAnchor(t.Anchor)))
	}

	canvas.End()
	return buf.Bytes()
}

func px(v float64) int {
	return int(math.Round(v))
}

func rgb(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func alpha(c color.NRGBA) string {
	return fmt.Sprintf("%.2f", float64(c.A)/255)
}

func textAnchor(a diagram.Anchor) string {
	switch a {
	case diagram.AnchorMiddle:
		return "middle"
	case diagram.AnchorEnd:
		return "end"
	}
	return "start"
}
