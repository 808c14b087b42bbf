package render

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/matzehuels/groundgrid/pkg/errors"
)

// converterBinary is the librsvg command line tool used for PDF output.
const converterBinary = "rsvg-convert"

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// ToPDF converts SVG bytes to PDF using rsvg-convert.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
// A missing converter is reported as ErrCodeUnsupported.
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	bin, err := lookPath(converterBinary)
	if err != nil {
		return nil, errors.New(errors.ErrCodeUnsupported,
			"pdf export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin")
	}

	cmd := exec.CommandContext(ctx, bin, "-f", "pdf")
	cmd.Stdin = bytes.NewReader(svg)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "%s: %s", converterBinary, strings.TrimSpace(errBuf.String()))
	}
	return out.Bytes(), nil
}
