package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/onesocial/cli/pkg/listsync"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for bash, zsh, fish, or powershell.

Besides commands and flags, the scripts complete list names for
"onesocial browse" (home, profile, admin, saved, mine) and sort orders
for every --by flag (all, newest, popular).

To load completions in your shell session, run:

Bash:
  source <(onesocial completion bash)

Zsh:
  source <(onesocial completion zsh)

Fish:
  onesocial completion fish | source

PowerShell:
  onesocial completion powershell | Out-String | Invoke-Expression

To load completions for every new session, execute once:

Bash:
  onesocial completion bash > /etc/bash_completion.d/onesocial

Zsh:
  onesocial completion zsh > /usr/local/share/zsh/site-functions/_onesocial

Fish:
  onesocial completion fish > ~/.config/fish/completions/onesocial.fish
`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletionV2(out, true)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletionWithDesc(out)
		}
		return fmt.Errorf("unknown shell: %s", args[0])
	},
}

// completeListKinds offers list names for the first argument of browse.
func completeListKinds(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var names []string
	for _, k := range listsync.ViewKinds {
		if strings.HasPrefix(k.String(), strings.ToLower(toComplete)) {
			names = append(names, k.String())
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// completeSortModes offers the values of --by.
func completeSortModes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var modes []string
	for _, m := range listsync.SortModes {
		if strings.HasPrefix(string(m), strings.ToLower(toComplete)) {
			modes = append(modes, string(m))
		}
	}
	return modes, cobra.ShellCompDirectiveNoFileComp
}

func init() {
	browseCmd.ValidArgsFunction = completeListKinds
	rootCmd.AddCommand(completionCmd)
}
