package pipeline

import (
	"context"

	"github.com/matzehuels/groundgrid/pkg/errors"
	"github.com/matzehuels/groundgrid/pkg/grid"
	"github.com/matzehuels/groundgrid/pkg/render"
	"github.com/matzehuels/groundgrid/pkg/render/diagram"
	"github.com/matzehuels/groundgrid/pkg/render/plan"
	"github.com/matzehuels/groundgrid/pkg/render/sink"
	"github.com/matzehuels/groundgrid/pkg/report"
)

// Render generates output artifacts in the requested formats.
// DOT always carries the plan view source, whatever the viz type.
func Render(ctx context.Context, l grid.GridLayout, opts Options) (map[string][]byte, error) {
	if opts.VizType == VizPlan {
		return renderPlan(ctx, l, opts)
	}
	return renderRod(ctx, l, opts)
}

// renderRod generates outputs of the top-rod diagram.
func renderRod(ctx context.Context, l grid.GridLayout, opts Options) (map[string][]byte, error) {
	scene := diagram.Build(l, diagram.WithSize(opts.Width, opts.Height))
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatPNG:
			data, err = sink.RenderPNG(scene)
		case FormatSVG:
			data = sink.RenderSVG(scene)
		case FormatPDF:
			data, err = sink.RenderPDF(ctx, scene)
		default:
			data, err = renderData(l, format, opts)
		}

		if err != nil {
			return nil, wrapRender(format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// renderPlan generates outputs of the plan view.
func renderPlan(ctx context.Context, l grid.GridLayout, opts Options) (map[string][]byte, error) {
	dot := plan.ToDOT(l, plan.Options{Detailed: opts.Detailed})
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatPNG:
			data, err = plan.RenderPNG(ctx, dot)
		case FormatSVG:
			data, err = plan.RenderSVG(ctx, dot)
		case FormatPDF:
			var svg []byte
			if svg, err = plan.RenderSVG(ctx, dot); err == nil {
				data, err = render.ToPDF(ctx, svg)
			}
		default:
			data, err = renderData(l, format, opts)
		}

		if err != nil {
			return nil, wrapRender(format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// renderData handles the formats that do not depend on the viz type.
func renderData(l grid.GridLayout, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatDOT:
		return []byte(plan.ToDOT(l, plan.Options{Detailed: opts.Detailed})), nil
	case FormatJSON:
		return report.JSON(l)
	case FormatYAML:
		return report.YAML(l)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
}

// wrapRender keeps coded errors (such as a missing PDF converter) intact.
func wrapRender(format string, err error) error {
	if errors.GetCode(err) != "" {
		return err
	}
	return errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
}
