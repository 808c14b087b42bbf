package pipeline

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/matzehuels/groundgrid/pkg/errors"
)

// OutputPath returns where an artifact of the given format is written.
// The extension of base is replaced by the format, so the default
// "grid_layout.png" yields "grid_layout.svg" for SVG output.
func OutputPath(base, format string) string {
	return strings.TrimSuffix(base, filepath.Ext(base)) + "." + format
}

// WriteFile writes data to path through a uniquely named temporary file in
// the same directory and renames it into place, so an interrupted run never
// leaves a truncated image behind.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "failed to create directory %s", dir)
	}

	tmp := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "failed to save %s", path)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrap(errors.ErrCodeIO, err, "failed to save %s", path)
	}
	return nil
}
