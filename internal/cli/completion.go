package cli

import (
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

// completionShells maps a shell name to its cobra script generator.
var completionShells = map[string]func(root *cobra.Command, w io.Writer) error{
	"bash": func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) },
	"zsh":  func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
	"fish": func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	"powershell": func(root *cobra.Command, w io.Writer) error {
		return root.GenPowerShellCompletionWithDesc(w)
	},
}

// completeModes completes --mode values.
var completeModes = cobra.FixedCompletions([]string{"auto", "vertical", "horizontal"}, cobra.ShellCompDirectiveNoFileComp)

func shellNames() []string {
	names := make([]string, 0, len(completionShells))
	for name := range completionShells {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// completionCommand prints a completion script for one shell to stdout.
func (c *CLI) completionCommand() *cobra.Command {
	shells := shellNames()
	return &cobra.Command{
		Use:   "completion [" + strings.Join(shells, "|") + "]",
		Short: "Print a shell completion script",
		Long: `Print a completion script for asciidag commands, flags, render modes and
formats.

  source <(asciidag completion bash)
  asciidag completion zsh > "${fpath[1]}/_asciidag"
  asciidag completion fish > ~/.config/fish/completions/asciidag.fish
  asciidag completion powershell | Out-String | Invoke-Expression`,
		DisableFlagsInUseLine: true,
		ValidArgs:             shells,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return completionShells[args[0]](cmd.Root(), c.out)
		},
	}
}
