package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/groundgrid/pkg/errors"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a completion script for groundgrid and print it to stdout.

  bash:        source <(groundgrid completion bash)
  zsh:         groundgrid completion zsh > "${fpath[1]}/_groundgrid"
  fish:        groundgrid completion fish | source
  powershell:  groundgrid completion powershell | Out-String | Invoke-Expression

Flag values for --type, --format, --unit and --summary-format complete too.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return genCompletion(cmd.Root(), args[0], c.Out)
		},
	}

	return cmd
}

// genCompletion writes the completion script for shell to w.
func genCompletion(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	}
	return errors.New(errors.ErrCodeUnsupported, "unsupported shell: %q", shell)
}
