// Package pipeline provides the calculate → render → write → open pipeline
// behind the groundgrid command.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Calculate: Validate the grid inputs and compute wire positions
//  2. Render: Generate artifacts in the requested formats (PNG, SVG, PDF,
//     DOT, JSON, YAML)
//  3. Write: Save each artifact next to the configured output path
//  4. Open: Launch the platform viewer on the first image written
//
// Only the first three stages can fail the run. A viewer that cannot be
// launched is recorded in [Result.Warnings] and the files stay on disk.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger, opener.System())
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    TotalWires: 10,
//	    WireLength: 10,
//	    LengthUnit: units.Foot,
//	    OverhangIn: 6,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Files)
package pipeline

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/groundgrid/pkg/errors"
	"github.com/matzehuels/groundgrid/pkg/grid"
	"github.com/matzehuels/groundgrid/pkg/units"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Config
// =============================================================================

const (
	// DefaultOutput is the image path used when none is given.
	DefaultOutput = "grid_layout.png"

	// DefaultWidth is the default rod diagram width in pixels.
	DefaultWidth = 1000.0

	// DefaultHeight is the default rod diagram height in pixels.
	DefaultHeight = 200.0

	// DefaultVizType draws the top horizontal rod with its crossings.
	DefaultVizType = VizRod

	// DefaultLengthUnit is the unit the wire length is entered in.
	DefaultLengthUnit = units.Foot
)

// Visualization types.
const (
	VizRod  = "rod"
	VizPlan = "plan"
)

// Format constants for output formats.
const (
	FormatPNG  = "png"
	FormatSVG  = "svg"
	FormatPDF  = "pdf"
	FormatDOT  = "dot"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists every supported output format.
var Formats = []string{FormatPNG, FormatSVG, FormatPDF, FormatDOT, FormatJSON, FormatYAML}

// VizTypes lists every supported visualization type.
var VizTypes = []string{VizRod, VizPlan}

// IsImage reports whether a format is a picture a viewer can open.
func IsImage(format string) bool {
	return format == FormatPNG || format == FormatSVG || format == FormatPDF
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Calculate options
	TotalWires int        `json:"total_wires"`
	WireLength float64    `json:"wire_length"` // in LengthUnit
	LengthUnit units.Unit `json:"length_unit,omitempty"`
	OverhangIn float64    `json:"overhang_in"`

	// Render options
	VizType  string   `json:"viz_type,omitempty"`
	Formats  []string `json:"formats,omitempty"`
	Width    float64  `json:"width,omitempty"`
	Height   float64  `json:"height,omitempty"`
	Detailed bool     `json:"detailed,omitempty"` // label crossings in the plan view

	// Output options
	Output string `json:"output,omitempty"`
	Open   bool   `json:"open,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Spec converts the options into calculator input. The wire length is
// converted to inches here; nothing past this point sees feet.
func (o Options) Spec() grid.GridSpec {
	unit := o.LengthUnit
	if unit == "" {
		unit = DefaultLengthUnit
	}
	return grid.GridSpec{
		TotalWires:   o.TotalWires,
		WireLengthIn: units.ToInches(o.WireLength, unit),
		OverhangIn:   o.OverhangIn,
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layout is the computed grid.
	Layout grid.GridLayout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Files maps each format to the path it was written to.
	Files map[string]string

	// Image is the path handed to the viewer, empty when no image was written.
	Image string

	// Opened reports whether the viewer accepted Image.
	Opened bool

	// Warnings holds non-fatal problems, such as an OPEN_FAILED error.
	Warnings []error

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Intersections int
	BytesWritten  int
	CalcTime      time.Duration
	RenderTime    time.Duration
	WriteTime     time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	return errors.ValidateOneOf(errors.ErrCodeInvalidFormat, "format", format, Formats...)
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	return errors.ValidateOneOf(errors.ErrCodeInvalidVizType, "viz type", vizType, VizTypes...)
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the render and output settings and applies
// defaults. Numeric inputs are left to [grid.Calculate].
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.LengthUnit == "" {
		o.LengthUnit = DefaultLengthUnit
	}
	u, err := units.Parse(string(o.LengthUnit))
	if err != nil {
		return err
	}
	o.LengthUnit = u
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatPNG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.Formats = dedupe(o.Formats)
	if o.Output == "" {
		o.Output = DefaultOutput
	}
	if err := validateSize(o.Width, o.Height); err != nil {
		return err
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// validateSize rejects NaN and infinite canvas sizes. Zero and negative
// sizes fall back to the defaults.
func validateSize(width, height float64) error {
	for _, v := range []struct {
		field string
		value float64
	}{{"diagram width", width}, {"diagram height", height}} {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return errors.New(errors.ErrCodeInvalidSize, "%s must be a finite number", v.field)
		}
	}
	return nil
}

func dedupe(formats []string) []string {
	seen := make(map[string]bool, len(formats))
	out := formats[:0:0]
	for _, f := range formats {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}
