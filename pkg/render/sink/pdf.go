package sink

import (
	"context"

	"github.com/matzehuels/groundgrid/pkg/render"
	"github.com/matzehuels/groundgrid/pkg/render/diagram"
)

// RenderPDF renders the scene as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, s diagram.Scene) ([]byte, error) {
	return render.ToPDF(ctx, RenderSVG(s))
}
