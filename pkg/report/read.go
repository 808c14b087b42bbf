package report

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/groundgrid/pkg/errors"
	"github.com/matzehuels/groundgrid/pkg/grid"
)

// saved is the part of an exported layout that is read back. Positions are
// derived data and are recomputed, so a hand-edited file cannot disagree
// with its own spec.
type saved struct {
	Spec *grid.GridSpec `json:"spec" yaml:"spec"`
}

// Read decodes a layout previously written by [JSON] or [YAML] and
// recomputes it from its spec.
//
// Read returns a parse error if the input is malformed or has no "spec"
// object, and the usual validation errors of [grid.Calculate] if the grid spec
// itself is out of range. Read does not close r.
func Read(r io.Reader, format string) (grid.GridLayout, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return grid.GridLayout{}, errors.Wrap(errors.ErrCodeIO, err, "read layout")
	}

	var s saved
	switch format {
	case FormatJSON:
		err = json.NewDecoder(bytes.NewReader(data)).Decode(&s)
	case FormatYAML:
		err = yaml.Unmarshal(data, &s)
	default:
		return grid.GridLayout{}, errors.New(errors.ErrCodeInvalidFormat, "invalid layout format: %q (must be one of: json, yaml)", format)
	}
	if err != nil {
		return grid.GridLayout{}, errors.Wrap(errors.ErrCodeParse, err, "decode %s layout", format)
	}
	if s.Spec == nil {
		return grid.GridLayout{}, errors.New(errors.ErrCodeParse, "layout has no spec")
	}
	return grid.Calculate(*s.Spec)
}

// ReadFile reads a layout file, picking the format from its extension
// (.json, .yaml or .yml).
func ReadFile(path string) (grid.GridLayout, error) {
	format, err := formatOf(path)
	if err != nil {
		return grid.GridLayout{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return grid.GridLayout{}, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()
	return Read(f, format)
}

func formatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "cannot tell layout format of %s (want .json, .yaml or .yml)", path)
}
