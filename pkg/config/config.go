// Package config loads the optional groundgrid settings file.
//
// The file is TOML and lives at $XDG_CONFIG_HOME/groundgrid/config.toml, or
// ~/.config/groundgrid/config.toml when XDG_CONFIG_HOME is unset:
//
//	[input]
//	length_unit = "ft"
//
//	[output]
//	path    = "grid_layout.png"
//	viz     = "rod"
//	formats = ["png"]
//	open    = true
//
//	[diagram]
//	width  = 1000
//	height = 200
//
// A missing file is not an error; [Load] returns [Default] instead.
// Command line flags take precedence over anything set here.
package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/groundgrid/pkg/errors"
	"github.com/matzehuels/groundgrid/pkg/pipeline"
	"github.com/matzehuels/groundgrid/pkg/units"
)

const (
	appName  = "groundgrid"
	fileName = "config.toml"
)

// Config holds user defaults for the calculator and its outputs.
type Config struct {
	Input   InputConfig   `toml:"input"`
	Output  OutputConfig  `toml:"output"`
	Diagram DiagramConfig `toml:"diagram"`

	// Unknown lists keys in the file that no field consumed, such as a
	// misspelled "lenght_unit". Populated by Load.
	Unknown []string `toml:"-"`
}

// InputConfig configures how inputs are read.
type InputConfig struct {
	LengthUnit string `toml:"length_unit"`
}

// OutputConfig configures which files are produced.
type OutputConfig struct {
	Path    string   `toml:"path"`
	Viz     string   `toml:"viz"`
	Formats []string `toml:"formats"`
	Open    bool     `toml:"open"`
}

// DiagramConfig configures the rod diagram canvas.
type DiagramConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Input: InputConfig{LengthUnit: string(pipeline.DefaultLengthUnit)},
		Output: OutputConfig{
			Path:    pipeline.DefaultOutput,
			Viz:     pipeline.DefaultVizType,
			Formats: []string{pipeline.FormatPNG},
			Open:    true,
		},
		Diagram: DiagramConfig{
			Width:  pipeline.DefaultWidth,
			Height: pipeline.DefaultHeight,
		},
	}
}

// DefaultPath returns the config file location using the XDG standard.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeIO, err, "cannot locate home directory")
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the file at path over the defaults and validates the result.
// Settings absent from the file keep their default values.
func Load(path string) (Config, error) {
	c := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return c, errors.Wrap(errors.ErrCodeIO, err, "failed to read config %s", path)
	}

	md, err := toml.Decode(string(data), &c)
	if err != nil {
		return Default(), errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to parse config %s", path)
	}
	for _, k := range md.Undecoded() {
		c.Unknown = append(c.Unknown, k.String())
	}

	if err := c.Validate(); err != nil {
		return Default(), errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid config %s", path)
	}
	return c, nil
}

// Validate checks that every enumerated setting has a supported value.
func (c Config) Validate() error {
	if _, err := units.Parse(c.Input.LengthUnit); err != nil {
		return err
	}
	if err := pipeline.ValidateVizType(c.Output.Viz); err != nil {
		return err
	}
	if err := pipeline.ValidateFormats(c.Output.Formats); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative(errors.ErrCodeInvalidConfig, "diagram width", c.Diagram.Width); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative(errors.ErrCodeInvalidConfig, "diagram height", c.Diagram.Height); err != nil {
		return err
	}
	return nil
}

// Options returns pipeline options seeded from the config. The caller fills
// in the grid inputs and any flag overrides.
func (c Config) Options() pipeline.Options {
	unit, _ := units.Parse(c.Input.LengthUnit)
	return pipeline.Options{
		LengthUnit: unit,
		VizType:    c.Output.Viz,
		Formats:    append([]string(nil), c.Output.Formats...),
		Output:     c.Output.Path,
		Open:       c.Output.Open,
		Width:      c.Diagram.Width,
		Height:     c.Diagram.Height,
	}
}

// Encode renders the config as TOML.
func (c Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to encode config")
	}
	return buf.Bytes(), nil
}

// Write saves the config to path, creating parent directories.
// An existing file is only replaced when overwrite is set.
func (c Config) Write(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return errors.New(errors.ErrCodeIO, "config %s already exists", path)
		}
	}
	data, err := c.Encode()
	if err != nil {
		return err
	}
	return pipeline.WriteFile(path, data)
}
