// Package cli implements the groundgrid command-line interface.
//
// The root command (and its alias "calc") reads the total wire count, the
// wire length and the overhang from flags, prompting for any that are
// missing, prints the grid summary and writes the layout diagram. The
// render command draws a layout saved earlier as JSON or YAML, and the
// config command manages the optional settings file.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context so pipeline stages can report timings.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/groundgrid/pkg/buildinfo"
	"github.com/matzehuels/groundgrid/pkg/config"
	"github.com/matzehuels/groundgrid/pkg/observability"
	"github.com/matzehuels/groundgrid/pkg/opener"
	"github.com/matzehuels/groundgrid/pkg/pipeline"
)

// appName is the application name used for display.
const appName = "groundgrid"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// In and Out are the prompt input and the summary output.
	In  io.Reader
	Out io.Writer

	// Opener launches the image viewer; nil means the platform default.
	Opener opener.Opener

	// Prompter gathers missing inputs; nil picks one based on In.
	Prompter Prompter

	configPath string
	verbose    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		In:     os.Stdin,
		Out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Run without a subcommand it behaves like "calc".
func (c *CLI) RootCommand() *cobra.Command {
	root := c.calcCommand()
	root.Use = appName
	root.Short = "Ground grid mesh calculator"
	root.Long = `groundgrid computes the wire layout of a square copper ground grid mesh.

Given the total number of wires, the length of each wire and the overhang
left past the outermost crossings, it splits the wires into horizontal and
vertical layers, prints their spacing and positions, and saves a diagram.`
	root.Version = buildinfo.Version
	root.SilenceUsage = true
	root.SilenceErrors = true

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/groundgrid/config.toml)")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if c.verbose {
			c.SetLogLevel(LogDebug)
		}
		observability.SetPipelineHooks(logHooks{logger: c.Logger})
		observability.SetOutputHooks(logHooks{logger: c.Logger})
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	}

	// Register all subcommands
	root.AddCommand(c.calcCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	op := c.Opener
	if op == nil {
		op = opener.System()
	}
	return pipeline.NewRunner(c.Logger, op)
}

// =============================================================================
// Config
// =============================================================================

// resolveConfigPath returns the --config value or the XDG default.
func (c *CLI) resolveConfigPath() (string, error) {
	if c.configPath != "" {
		return c.configPath, nil
	}
	return config.DefaultPath()
}

// loadConfig reads the config file and warns about keys it did not use.
func (c *CLI) loadConfig() (config.Config, error) {
	path, err := c.resolveConfigPath()
	if err != nil {
		c.Logger.Debug("no config location, using defaults", "error", err)
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	for _, key := range cfg.Unknown {
		c.Logger.Warn("unknown config key", "key", key, "file", path)
	}
	return cfg, nil
}
