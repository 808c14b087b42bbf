package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/groundgrid/pkg/errors"
	"github.com/matzehuels/groundgrid/pkg/grid"
	"github.com/matzehuels/groundgrid/pkg/observability"
	"github.com/matzehuels/groundgrid/pkg/opener"
)

// Runner executes the pipeline.
//
// The Runner is stateless apart from its logger and opener; it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Logger *log.Logger
	Opener opener.Opener
}

// NewRunner creates a runner.
// If logger is nil, log.Default() is used.
// If op is nil, files are never opened.
func NewRunner(logger *log.Logger, op opener.Opener) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	if op == nil {
		op = opener.Noop
	}
	return &Runner{Logger: logger, Opener: op}
}

// Execute runs the complete calculate → render → write → open pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	// Stage 1: Calculate
	calcStart := time.Now()
	l, err := r.Calculate(ctx, opts)
	if err != nil {
		return nil, err
	}
	calcTime := time.Since(calcStart)

	r.Logger.Info("computed layout",
		"horizontal", l.Horizontal.Count,
		"vertical", l.Vertical.Count,
		"intersections", l.Intersections,
		"duration", calcTime)

	result, err := r.Publish(ctx, l, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.CalcTime = calcTime
	return result, nil
}

// Publish runs the render → write → open stages for an existing layout,
// such as one read back with report.ReadFile.
func (r *Runner) Publish(ctx context.Context, l grid.GridLayout, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{
		Layout: l,
		Files:  make(map[string]string),
	}
	result.Stats.Intersections = l.Intersections

	// Stage 2: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.VizType, opts.Formats)
	artifacts, err := Render(ctx, l, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.VizType, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts

	r.Logger.Info("rendered outputs",
		"type", opts.VizType,
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	// Stage 3: Write
	writeStart := time.Now()
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := OutputPath(opts.Output, format)
		data := artifacts[format]
		err := WriteFile(path, data)
		observability.Output().OnWrite(ctx, path, len(data), err)
		if err != nil {
			return nil, err
		}
		result.Files[format] = path
		result.Stats.BytesWritten += len(data)
		if result.Image == "" && IsImage(format) {
			result.Image = path
		}
		r.Logger.Debug("wrote file", "path", path, "bytes", len(data))
	}
	result.Stats.WriteTime = time.Since(writeStart)

	// Stage 4: Open
	if opts.Open && result.Image != "" && r.Opener != nil {
		if err := r.open(ctx, result.Image); err != nil {
			result.Warnings = append(result.Warnings, err)
		} else {
			result.Opened = true
		}
	}

	return result, nil
}

// Calculate validates the inputs and computes the layout.
func (r *Runner) Calculate(ctx context.Context, opts Options) (grid.GridLayout, error) {
	spec := opts.Spec()
	observability.Pipeline().OnCalculateStart(ctx, spec.TotalWires)

	start := time.Now()
	l, err := grid.Calculate(spec)
	observability.Pipeline().OnCalculateComplete(ctx, spec.TotalWires, l.Intersections, time.Since(start), err)
	return l, err
}

// open launches the viewer and converts a failure into an OPEN_FAILED warning.
func (r *Runner) open(ctx context.Context, path string) error {
	err := r.Opener.Open(ctx, path)
	observability.Output().OnOpen(ctx, path, err)
	if err != nil {
		r.Logger.Warn("could not open file", "path", path, "error", err)
		return errors.Wrap(errors.ErrCodeOpenFailed, err, "could not open %s", path)
	}
	r.Logger.Debug("opened file", "path", path)
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
