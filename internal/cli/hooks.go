package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logHooks reports pipeline events through the CLI logger. Events are
// debug-level so they only show with --verbose; failures are returned to
// the command and printed there.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnCalculateStart(_ context.Context, totalWires int) {
	h.logger.Debug("calculating layout", "wires", totalWires)
}

func (h logHooks) OnCalculateComplete(_ context.Context, totalWires, intersections int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("calculation rejected", "wires", totalWires, "error", err)
		return
	}
	h.logger.Debug("calculation done", "wires", totalWires, "intersections", intersections, "duration", d)
}

func (h logHooks) OnRenderStart(_ context.Context, vizType string, formats []string) {
	h.logger.Debug("rendering", "type", vizType, "formats", formats)
}

func (h logHooks) OnRenderComplete(_ context.Context, vizType string, formats []string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "type", vizType, "error", err)
		return
	}
	h.logger.Debug("render done", "type", vizType, "formats", formats, "duration", d)
}

func (h logHooks) OnWrite(_ context.Context, path string, size int, err error) {
	if err != nil {
		h.logger.Debug("write failed", "path", path, "error", err)
		return
	}
	h.logger.Debug("saved", "path", path, "bytes", size)
}

func (h logHooks) OnOpen(_ context.Context, path string, err error) {
	h.logger.Debug("viewer", "path", path, "ok", err == nil)
}
