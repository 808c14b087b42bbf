package pipeline

import (
	"bytes"
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/groundgrid/pkg/errors"
	"github.com/matzehuels/groundgrid/pkg/observability"
	"github.com/matzehuels/groundgrid/pkg/opener"
	"github.com/matzehuels/groundgrid/pkg/units"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func baseOptions(dir string) Options {
	return Options{
		TotalWires: 10,
		WireLength: 10,
		LengthUnit: units.Foot,
		OverhangIn: 6,
		Output:     filepath.Join(dir, "grid_layout.png"),
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"png", false},
		{"svg", false},
		{"pdf", false},
		{"dot", false},
		{"json", false},
		{"yaml", false},
		{"gif", true},
		{"PNG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %v", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateVizType(t *testing.T) {
	tests := []struct {
		vizType string
		wantErr bool
	}{
		{"rod", false},
		{"plan", false},
		{"tower", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateVizType(tt.vizType)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateVizType(%q) error = %v, wantErr %v", tt.vizType, err, tt.wantErr)
		}
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	var o Options
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error = %v", err)
	}

	if o.LengthUnit != units.Foot {
		t.Errorf("LengthUnit = %q, want %q", o.LengthUnit, units.Foot)
	}
	if o.VizType != VizRod {
		t.Errorf("VizType = %q, want %q", o.VizType, VizRod)
	}
	if diff := cmp.Diff([]string{FormatPNG}, o.Formats); diff != "" {
		t.Errorf("Formats mismatch (-want +got):\n%s", diff)
	}
	if o.Output != DefaultOutput {
		t.Errorf("Output = %q, want %q", o.Output, DefaultOutput)
	}
	if o.Width != DefaultWidth || o.Height != DefaultHeight {
		t.Errorf("size = %vx%v, want %vx%v", o.Width, o.Height, DefaultWidth, DefaultHeight)
	}
	if o.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}
}

func TestValidateAndSetDefaultsRejects(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"unit", Options{LengthUnit: "m"}, errors.ErrCodeInvalidUnit},
		{"viz", Options{VizType: "tower"}, errors.ErrCodeInvalidVizType},
		{"format", Options{Formats: []string{"png", "gif"}}, errors.ErrCodeInvalidFormat},
		{"nan width", Options{Width: math.NaN()}, errors.ErrCodeInvalidSize},
		{"infinite height", Options{Height: math.Inf(1)}, errors.ErrCodeInvalidSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("ValidateAndSetDefaults() error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestValidateAndSetDefaultsDedupesFormats(t *testing.T) {
	o := Options{Formats: []string{"svg", "png", "svg"}}
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"svg", "png"}, o.Formats); diff != "" {
		t.Errorf("Formats mismatch (-want +got):\n%s", diff)
	}
}

func TestSpecConvertsFeet(t *testing.T) {
	tests := []struct {
		unit units.Unit
		want float64
	}{
		{units.Foot, 120},
		{units.Inch, 10},
		{"", 120},
	}

	for _, tt := range tests {
		o := Options{TotalWires: 4, WireLength: 10, LengthUnit: tt.unit, OverhangIn: 1}
		if got := o.Spec().WireLengthIn; got != tt.want {
			t.Errorf("Spec(%q).WireLengthIn = %v, want %v", tt.unit, got, tt.want)
		}
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		base, format, want string
	}{
		{"grid_layout.png", "png", "grid_layout.png"},
		{"grid_layout.png", "svg", "grid_layout.svg"},
		{"out/site", "json", "out/site.json"},
		{"a.b/plan.png", "dot", "a.b/plan.dot"},
	}

	for _, tt := range tests {
		if got := OutputPath(tt.base, tt.format); got != tt.want {
			t.Errorf("OutputPath(%q, %q) = %q, want %q", tt.base, tt.format, got, tt.want)
		}
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "grid.json")

	if err := WriteFile(path, []byte("{}")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "{}" {
		t.Errorf("content = %q, want %q", got, "{}")
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want only the output file", len(entries))
	}
}

func TestWriteFileFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	err := WriteFile(filepath.Join(blocker, "grid.png"), []byte("x"))
	if !errors.Is(err, errors.ErrCodeIO) {
		t.Errorf("WriteFile() error = %v, want %v", err, errors.ErrCodeIO)
	}
}

func TestExecuteWritesAndOpens(t *testing.T) {
	dir := t.TempDir()
	var opened []string
	r := NewRunner(nil, opener.Func(func(_ context.Context, path string) error {
		opened = append(opened, path)
		return nil
	}))

	opts := baseOptions(dir)
	opts.Formats = []string{"json", "png", "svg"}
	opts.Open = true

	result, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if result.Layout.Intersections != 25 {
		t.Errorf("Intersections = %d, want 25", result.Layout.Intersections)
	}
	wantFiles := map[string]string{
		"json": filepath.Join(dir, "grid_layout.json"),
		"png":  filepath.Join(dir, "grid_layout.png"),
		"svg":  filepath.Join(dir, "grid_layout.svg"),
	}
	if diff := cmp.Diff(wantFiles, result.Files); diff != "" {
		t.Errorf("Files mismatch (-want +got):\n%s", diff)
	}

	png, err := os.ReadFile(wantFiles["png"])
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Error("png output is not a PNG file")
	}

	if result.Image != wantFiles["png"] {
		t.Errorf("Image = %q, want first image format %q", result.Image, wantFiles["png"])
	}
	if diff := cmp.Diff([]string{wantFiles["png"]}, opened); diff != "" {
		t.Errorf("opened mismatch (-want +got):\n%s", diff)
	}
	if !result.Opened || len(result.Warnings) != 0 {
		t.Errorf("Opened = %v, Warnings = %v", result.Opened, result.Warnings)
	}
	if result.Stats.BytesWritten == 0 {
		t.Error("BytesWritten should count the written artifacts")
	}
}

func TestExecuteOpenFailureIsWarning(t *testing.T) {
	dir := t.TempDir()
	r := NewRunner(nil, opener.Func(func(context.Context, string) error {
		return os.ErrNotExist
	}))

	opts := baseOptions(dir)
	opts.Open = true

	result, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error = %v, want nil", err)
	}
	if result.Opened {
		t.Error("Opened should be false")
	}
	if len(result.Warnings) != 1 || !errors.Is(result.Warnings[0], errors.ErrCodeOpenFailed) {
		t.Fatalf("Warnings = %v, want one %v", result.Warnings, errors.ErrCodeOpenFailed)
	}
	if _, err := os.Stat(result.Image); err != nil {
		t.Errorf("image should stay on disk after a failed open: %v", err)
	}
}

func TestExecuteNoOpen(t *testing.T) {
	called := false
	r := NewRunner(nil, opener.Func(func(context.Context, string) error {
		called = true
		return nil
	}))

	if _, err := r.Execute(context.Background(), baseOptions(t.TempDir())); err != nil {
		t.Fatal(err)
	}
	if called {
		t.Error("opener should not run when Open is false")
	}
}

func TestExecuteDataFormatsDoNotOpen(t *testing.T) {
	called := false
	r := NewRunner(nil, opener.Func(func(context.Context, string) error {
		called = true
		return nil
	}))

	opts := baseOptions(t.TempDir())
	opts.Formats = []string{"yaml", "dot"}
	opts.Open = true

	result, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if called || result.Image != "" {
		t.Errorf("no image was written, opener called = %v, Image = %q", called, result.Image)
	}

	dot, err := os.ReadFile(result.Files["dot"])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(dot), "graph G {") {
		t.Errorf("dot output = %.40q", dot)
	}
}

func TestExecuteValidationWritesNothing(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
		code   errors.Code
	}{
		{"zero wires", func(o *Options) { o.TotalWires = 0 }, errors.ErrCodeInvalidWireCount},
		{"one wire", func(o *Options) { o.TotalWires = 1 }, errors.ErrCodeInvalidWireCount},
		{"zero length", func(o *Options) { o.WireLength = 0 }, errors.ErrCodeInvalidWireLength},
		{"negative overhang", func(o *Options) { o.OverhangIn = -1 }, errors.ErrCodeInvalidOverhang},
		{"overhang too long", func(o *Options) { o.OverhangIn = 60 }, errors.ErrCodeInvalidOverhang},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			opts := baseOptions(dir)
			tt.modify(&opts)

			_, err := NewRunner(nil, nil).Execute(context.Background(), opts)
			if !errors.Is(err, tt.code) {
				t.Fatalf("Execute() error = %v, want code %v", err, tt.code)
			}

			entries, _ := os.ReadDir(dir)
			if len(entries) != 0 {
				t.Errorf("%d files written for invalid input", len(entries))
			}
		})
	}
}

func TestExecuteCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(nil, nil).Execute(ctx, baseOptions(t.TempDir()))
	if err == nil {
		t.Error("Execute() should stop on a canceled context")
	}
}

type recordingOutputHooks struct {
	observability.NoopOutputHooks
	writes []string
	opens  []string
}

func (h *recordingOutputHooks) OnWrite(_ context.Context, path string, _ int, _ error) {
	h.writes = append(h.writes, filepath.Base(path))
}

func (h *recordingOutputHooks) OnOpen(_ context.Context, path string, _ error) {
	h.opens = append(h.opens, filepath.Base(path))
}

type recordingPipelineHooks struct {
	observability.NoopPipelineHooks
	calculated int
}

func (h *recordingPipelineHooks) OnCalculateComplete(_ context.Context, _, intersections int, _ time.Duration, _ error) {
	h.calculated = intersections
}

func TestExecuteEmitsHooks(t *testing.T) {
	defer observability.Reset()
	out := &recordingOutputHooks{}
	pipe := &recordingPipelineHooks{}
	observability.SetOutputHooks(out)
	observability.SetPipelineHooks(pipe)

	opts := baseOptions(t.TempDir())
	opts.Formats = []string{"svg", "json"}
	opts.Open = true

	if _, err := NewRunner(nil, opener.Noop).Execute(context.Background(), opts); err != nil {
		t.Fatal(err)
	}

	if pipe.calculated != 25 {
		t.Errorf("OnCalculateComplete intersections = %d, want 25", pipe.calculated)
	}
	if diff := cmp.Diff([]string{"grid_layout.svg", "grid_layout.json"}, out.writes); diff != "" {
		t.Errorf("writes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"grid_layout.svg"}, out.opens); diff != "" {
		t.Errorf("opens mismatch (-want +got):\n%s", diff)
	}
}

func TestPublishExistingLayout(t *testing.T) {
	dir := t.TempDir()
	calc := baseOptions(dir)
	l, err := NewRunner(nil, nil).Calculate(context.Background(), calc)
	if err != nil {
		t.Fatal(err)
	}

	opts := Options{Output: filepath.Join(dir, "again.png"), Formats: []string{"svg"}}
	result, err := NewRunner(nil, nil).Publish(context.Background(), l, opts)
	if err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if result.Files["svg"] != filepath.Join(dir, "again.svg") {
		t.Errorf("Files = %v", result.Files)
	}
	if result.Stats.Intersections != 25 || result.Stats.CalcTime != 0 {
		t.Errorf("Stats = %+v", result.Stats)
	}
}
