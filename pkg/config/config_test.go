package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/groundgrid/pkg/errors"
	"github.com/matzehuels/groundgrid/pkg/pipeline"
	"github.com/matzehuels/groundgrid/pkg/units"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error: %v", err)
	}
	if want := filepath.Join("/tmp/xdg", "groundgrid", "config.toml"); path != want {
		t.Errorf("DefaultPath() = %q, want %q", path, want)
	}
}

func TestDefaultPathHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")

	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error: %v", err)
	}
	home, _ := os.UserHomeDir()
	if !strings.HasPrefix(path, home) {
		t.Errorf("DefaultPath() = %q, should be under home %q", path, home)
	}
	if !strings.HasSuffix(path, filepath.Join(".config", "groundgrid", "config.toml")) {
		t.Errorf("DefaultPath() = %q, should end with .config/groundgrid/config.toml", path)
	}
}

func TestLoadMissingFile(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(Default(), c); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[input]
length_unit = "in"

[output]
formats = ["svg", "json"]
open = false
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Default()
	want.Input.LengthUnit = "in"
	want.Output.Formats = []string{"svg", "json"}
	want.Output.Open = false
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadReportsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `
[input]
lenght_unit = "in"

[extra]
x = 1
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff([]string{"input.lenght_unit", "extra", "extra.x"}, c.Unknown); diff != "" {
		t.Errorf("Unknown mismatch (-want +got):\n%s", diff)
	}
	if c.Input.LengthUnit != "ft" {
		t.Errorf("LengthUnit = %q, want default ft", c.Input.LengthUnit)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "[output\npath = 1"},
		{"wrong type", "[diagram]\nwidth = \"wide\""},
		{"bad unit", "[input]\nlength_unit = \"m\""},
		{"bad viz", "[output]\nviz = \"tower\""},
		{"bad format", "[output]\nformats = [\"gif\"]"},
		{"negative size", "[diagram]\nheight = -1.0"},
		{"nan width", "[diagram]\nwidth = nan"},
		{"infinite height", "[diagram]\nheight = inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Load() error = %v, want %v", err, errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestOptions(t *testing.T) {
	c := Default()
	c.Input.LengthUnit = "inches"
	c.Output.Viz = pipeline.VizPlan

	o := c.Options()
	if o.LengthUnit != units.Inch {
		t.Errorf("LengthUnit = %q, want %q", o.LengthUnit, units.Inch)
	}
	if o.VizType != pipeline.VizPlan || o.Output != pipeline.DefaultOutput || !o.Open {
		t.Errorf("Options() = %+v", o)
	}

	// The options own their formats slice.
	o.Formats[0] = "svg"
	if c.Output.Formats[0] != "png" {
		t.Error("Options() should copy Formats")
	}
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "groundgrid", "config.toml")

	c := Default()
	c.Output.Formats = []string{"png", "yaml"}
	if err := c.Write(path, false); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(c, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	if err := c.Write(path, false); !errors.Is(err, errors.ErrCodeIO) {
		t.Errorf("Write() over an existing file error = %v, want %v", err, errors.ErrCodeIO)
	}
	if err := c.Write(path, true); err != nil {
		t.Errorf("Write(overwrite) error = %v", err)
	}
}
