package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/groundgrid/pkg/pipeline"
	"github.com/matzehuels/groundgrid/pkg/report"
)

// renderFlags holds flag values for the render command.
type renderFlags struct {
	output   string
	vizType  string
	formats  []string
	noOpen   bool
	detailed bool
}

// renderCommand creates the render command for drawing a saved layout.
func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render [layout.json|layout.yaml]",
		Short: "Draw a layout saved with --format json or yaml",
		Long: `Draw a layout previously saved as JSON or YAML.

Only the saved spec is read; wire positions are recomputed from it. Output
files are named after the input unless -o is given.`,
		Example: `  # Save once, draw later
  groundgrid calc --wires 12 --length 20 --overhang 6 -f json -o site.png
  groundgrid render site.json -t plan -f svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file path (default: input name)")
	cmd.Flags().StringVarP(&flags.vizType, "type", "t", "", "diagram type: rod, plan")
	cmd.Flags().StringSliceVarP(&flags.formats, "format", "f", nil, "output formats: png, svg, pdf, dot")
	cmd.Flags().BoolVar(&flags.noOpen, "no-open", false, "do not open the image after saving")
	cmd.Flags().BoolVar(&flags.detailed, "detailed", false, "label every crossing in the plan view")

	_ = cmd.RegisterFlagCompletionFunc("type", cobra.FixedCompletions(pipeline.VizTypes, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(pipeline.Formats, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input string, flags renderFlags) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	opts := cfg.Options()
	opts.Output = pipeline.OutputPath(input, pipeline.FormatPNG)
	if cmd.Flags().Changed("output") {
		opts.Output = flags.output
	}
	if cmd.Flags().Changed("type") {
		opts.VizType = flags.vizType
	}
	if cmd.Flags().Changed("format") {
		opts.Formats = normalizeFormats(flags.formats)
	}
	if flags.noOpen {
		opts.Open = false
	}
	opts.Detailed = flags.detailed
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	l, err := report.ReadFile(input)
	if err != nil {
		return err
	}

	result, err := c.newRunner().Publish(cmd.Context(), l, opts)
	if err != nil {
		return err
	}
	c.printResult(result, true)
	return nil
}
