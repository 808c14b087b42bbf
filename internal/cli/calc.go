package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/groundgrid/pkg/config"
	"github.com/matzehuels/groundgrid/pkg/errors"
	"github.com/matzehuels/groundgrid/pkg/grid"
	"github.com/matzehuels/groundgrid/pkg/pipeline"
	"github.com/matzehuels/groundgrid/pkg/report"
	"github.com/matzehuels/groundgrid/pkg/units"
)

// calcFlags holds flag values for the calc command.
type calcFlags struct {
	wires    string
	length   string
	overhang string

	unit          string
	output        string
	vizType       string
	formats       []string
	noOpen        bool
	diagram       bool
	detailed      bool
	summaryFormat string
}

// calcCommand creates the calc command for computing a grid layout.
func (c *CLI) calcCommand() *cobra.Command {
	flags := calcFlags{diagram: true, summaryFormat: report.FormatText}

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute a grid layout and save its diagram",
		Long: `Compute the layout of a ground grid mesh.

Missing inputs are prompted for. The wire length is read in feet unless
--unit (or the config file) says otherwise; the overhang is always in inches.`,
		Example: `  # Prompt for everything
  groundgrid

  # 10 wires of 10 ft with 6 in overhang
  groundgrid calc --wires 10 --length 10 --overhang 6

  # Plan view as SVG and PDF, without opening a viewer
  groundgrid calc --wires 12 --length 20 --overhang 6 -t plan -f svg,pdf --no-open

  # Machine-readable summary only
  groundgrid calc --wires 8 --length 96 --unit in --overhang 4 --diagram=false --summary-format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCalc(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.wires, "wires", "", "total number of wires (split between horizontal and vertical)")
	cmd.Flags().StringVar(&flags.length, "length", "", "length of each wire")
	cmd.Flags().StringVar(&flags.overhang, "overhang", "", "overhang past the outermost crossings, in inches")
	cmd.Flags().StringVar(&flags.unit, "unit", "", "unit of --length: ft or in (default from config, else ft)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file path (default grid_layout.png)")
	cmd.Flags().StringVarP(&flags.vizType, "type", "t", "", "diagram type: rod, plan")
	cmd.Flags().StringSliceVarP(&flags.formats, "format", "f", nil, "output formats: png, svg, pdf, dot, json, yaml")
	cmd.Flags().BoolVar(&flags.noOpen, "no-open", false, "do not open the image after saving")
	cmd.Flags().BoolVar(&flags.diagram, "diagram", true, "write output files (--diagram=false prints the summary only)")
	cmd.Flags().BoolVar(&flags.detailed, "detailed", false, "label every crossing in the plan view")
	cmd.Flags().StringVar(&flags.summaryFormat, "summary-format", report.FormatText, "summary format: text, json, yaml")

	_ = cmd.RegisterFlagCompletionFunc("type", cobra.FixedCompletions(pipeline.VizTypes, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(pipeline.Formats, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("unit", cobra.FixedCompletions([]string{string(units.Foot), string(units.Inch)}, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("summary-format", cobra.FixedCompletions([]string{report.FormatText, report.FormatJSON, report.FormatYAML}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// runCalc gathers the inputs, prints the summary and runs the pipeline.
func (c *CLI) runCalc(cmd *cobra.Command, flags calcFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	opts, err := buildOptions(cmd, cfg, flags)
	if err != nil {
		return err
	}
	if err := checkSummaryFormat(flags.summaryFormat); err != nil {
		return err
	}

	if err := c.gatherInputs(ctx, cmd, &flags, opts.LengthUnit); err != nil {
		return err
	}
	if err := parseInputs(flags, &opts); err != nil {
		return err
	}

	runner := c.newRunner()
	prog := newProgress(logger)
	calcStart := time.Now()
	layout, err := runner.Calculate(ctx, opts)
	if err != nil {
		return err
	}
	calcTime := time.Since(calcStart)
	prog.done("Calculated layout")

	if err := c.printLayout(layout, flags.summaryFormat, opts.LengthUnit); err != nil {
		return err
	}
	if !flags.diagram {
		return nil
	}

	result, err := runner.Publish(ctx, layout, opts)
	if err != nil {
		return err
	}
	result.Stats.CalcTime = calcTime
	c.printResult(result, flags.summaryFormat == report.FormatText)
	return nil
}

// buildOptions layers flags over the config. Only flags the user set win.
func buildOptions(cmd *cobra.Command, cfg config.Config, flags calcFlags) (pipeline.Options, error) {
	opts := cfg.Options()
	changed := cmd.Flags().Changed

	if changed("unit") {
		u, err := units.Parse(flags.unit)
		if err != nil {
			return opts, err
		}
		opts.LengthUnit = u
	}
	if changed("output") {
		opts.Output = flags.output
	}
	if changed("type") {
		opts.VizType = flags.vizType
	}
	if changed("format") {
		opts.Formats = normalizeFormats(flags.formats)
	}
	if flags.noOpen {
		opts.Open = false
	}
	opts.Detailed = flags.detailed

	if err := opts.ValidateAndSetDefaults(); err != nil {
		return opts, err
	}
	return opts, nil
}

func normalizeFormats(formats []string) []string {
	out := make([]string, 0, len(formats))
	for _, f := range formats {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func checkSummaryFormat(format string) error {
	return errors.ValidateOneOf(errors.ErrCodeInvalidFormat, "summary format", format,
		report.FormatText, report.FormatJSON, report.FormatYAML)
}

// gatherInputs prompts for the grid inputs that were not passed as flags.
func (c *CLI) gatherInputs(ctx context.Context, cmd *cobra.Command, flags *calcFlags, unit units.Unit) error {
	targets := map[string]*string{
		"wires":    &flags.wires,
		"length":   &flags.length,
		"overhang": &flags.overhang,
	}

	var missing []Field
	for _, f := range inputFields(unit) {
		if !cmd.Flags().Changed(f.Key) {
			missing = append(missing, f)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	p := c.Prompter
	if p == nil {
		p = newPrompter(c.In, c.Out)
	}
	answers, err := p.Prompt(ctx, missing)
	if err != nil {
		return err
	}
	if len(answers) != len(missing) {
		return errors.New(errors.ErrCodeInternal, "prompt returned %d answers for %d fields", len(answers), len(missing))
	}
	for i, f := range missing {
		*targets[f.Key] = answers[i]
	}
	return nil
}

// inputFields lists the prompts in the order they are asked.
func inputFields(unit units.Unit) []Field {
	return []Field{
		{Key: "wires", Label: "Enter the total number of wires: "},
		{Key: "length", Label: fmt.Sprintf("Enter the length of each wire in %s: ", unit.Name())},
		{Key: "overhang", Label: "Enter the overhang length in inches: "},
	}
}

// parseInputs converts the raw answers. Range checks happen in the calculator.
func parseInputs(flags calcFlags, opts *pipeline.Options) error {
	wires, err := errors.ParseInt("total number of wires", flags.wires)
	if err != nil {
		return err
	}
	length, err := errors.ParseFloat("wire length", flags.length)
	if err != nil {
		return err
	}
	overhang, err := errors.ParseFloat("overhang length", flags.overhang)
	if err != nil {
		return err
	}

	opts.TotalWires = wires
	opts.WireLength = length
	opts.OverhangIn = overhang
	return nil
}

// printLayout writes the summary in the requested format.
func (c *CLI) printLayout(l grid.GridLayout, format string, unit units.Unit) error {
	if format == report.FormatText {
		printNewline(c.Out)
		printSummary(c.Out, report.Text(l, report.WithLengthUnit(unit)))
		return nil
	}
	data, err := report.Encode(format, l)
	if err != nil {
		return err
	}
	_, err = c.Out.Write(data)
	return err
}

// printResult reports saved files and whether the viewer opened.
// Status lines are suppressed for machine-readable summaries.
func (c *CLI) printResult(result *pipeline.Result, styled bool) {
	if !styled {
		return
	}
	printNewline(c.Out)

	if result.Image != "" {
		switch {
		case result.Opened:
			printSuccess(c.Out, "Image saved and opened as '%s'.", result.Image)
		case len(result.Warnings) > 0:
			printWarning(c.Out, "Image saved as '%s' but could not be opened automatically: %s",
				result.Image, openCause(result.Warnings[0]))
		default:
			printSuccess(c.Out, "Image saved as '%s'.", result.Image)
		}
	} else {
		printSuccess(c.Out, "Saved %d file(s).", len(result.Files))
	}

	for _, f := range pipeline.Formats {
		if path, ok := result.Files[f]; ok && path != result.Image {
			printFile(c.Out, path)
		}
	}
}

// openCause strips the OPEN_FAILED wrapper to show the viewer's own error.
func openCause(err error) string {
	var e *errors.Error
	if stderrors.As(err, &e) && e.Cause != nil {
		return e.Cause.Error()
	}
	return errors.UserMessage(err)
}
