// Package opener shows a written file in the platform's default viewer.
//
// Opening is best effort. Callers treat a failure as a warning: the file has
// already been written and stays on disk either way.
package opener

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Opener opens a file for the user.
type Opener interface {
	Open(ctx context.Context, path string) error
}

// Func adapts a function to the Opener interface.
type Func func(ctx context.Context, path string) error

// Open calls f(ctx, path).
func (f Func) Open(ctx context.Context, path string) error {
	return f(ctx, path)
}

// Noop never opens anything.
var Noop Opener = Func(func(context.Context, string) error { return nil })

// Command opens files by running an external program.
type Command struct {
	Name string   // program to run
	Args []string // arguments placed before the file path
}

// System returns the Command for the running platform: open on macOS,
// cmd /c start on Windows and xdg-open elsewhere.
func System() Command {
	return ForOS(runtime.GOOS)
}

// ForOS returns the Command for goos.
func ForOS(goos string) Command {
	switch goos {
	case "darwin":
		return Command{Name: "open"}
	case "windows":
		// The empty argument is the window title expected by start.
		return Command{Name: "cmd", Args: []string{"/c", "start", ""}}
	}
	return Command{Name: "xdg-open"}
}

// Open runs the viewer and waits for it to exit.
func (c Command) Open(ctx context.Context, path string) error {
	bin, err := exec.LookPath(c.Name)
	if err != nil {
		return fmt.Errorf("no viewer available: %w", err)
	}

	args := append(append([]string{}, c.Args...), path)
	cmd := exec.CommandContext(ctx, bin, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("%s: %w: %s", c.Name, err, msg)
		}
		return fmt.Errorf("%s: %w", c.Name, err)
	}
	return nil
}

// String returns the command line without the file path.
func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}
