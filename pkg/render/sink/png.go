package sink

import (
	"bytes"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/matzehuels/groundgrid/pkg/render/diagram"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale float64
}

// WithScale sets the PNG scale factor (default 1.0). Values <= 0 are ignored.
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// RenderPNG rasterizes the scene.
func RenderPNG(s diagram.Scene, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 1.0}
	for _, opt := range opts {
		opt(&r)
	}

	w := int(math.Ceil(s.Width * r.scale))
	h := int(math.Ceil(s.Height * r.scale))
	dc := gg.NewContext(w, h)
	dc.Scale(r.scale, r.scale)

	dc.SetColor(s.Background)
	dc.Clear()

	for _, rect := range s.Rects {
		dc.DrawRectangle(rect.X, rect.Y, rect.W, rect.H)
		dc.SetColor(rect.Fill)
		dc.FillPreserve()
		dc.SetColor(rect.Stroke)
		dc.SetLineWidth(1)
		dc.Stroke()
	}

	for _, l := range s.Lines {
		dc.SetColor(l.Stroke)
		dc.SetLineWidth(l.Width)
		if l.Dashed {
			dc.SetDash(4, 3)
		} else {
			dc.SetDash()
		}
		dc.DrawLine(l.X1, l.Y1, l.X2, l.Y2)
		dc.Stroke()
	}
	dc.SetDash()

	dc.SetFontFace(basicfont.Face7x13)
	for _, t := range s.Texts {
		dc.SetColor(t.Fill)
		dc.DrawStringAnchored(t.Value, t.X, t.Y, anchorX(t.Anchor), 0)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func anchorX(a diagram.Anchor) float64 {
	switch a {
	case diagram.AnchorMiddle:
		return 0.5
	case diagram.AnchorEnd:
		return 1
	}
	return 0
}
