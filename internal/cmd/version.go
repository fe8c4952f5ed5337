package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/onesocial/cli/pkg/client"
	"github.com/onesocial/cli/pkg/config"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show CLI version and the servers it talks to",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, client.UserAgent)
		fmt.Fprintf(out, "API: %s\n", config.GetString("api.base_url"))
		fmt.Fprintf(out, "Web: %s\n", config.GetString("web.base_url"))
	},
}
