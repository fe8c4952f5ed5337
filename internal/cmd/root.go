package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/onesocial/cli/pkg/client"
	"github.com/onesocial/cli/pkg/config"
	"github.com/onesocial/cli/pkg/credentials"
	clierrors "github.com/onesocial/cli/pkg/errors"
	"github.com/onesocial/cli/pkg/logger"
	"github.com/onesocial/cli/pkg/output"
	"github.com/onesocial/cli/pkg/service"
)

var (
	verbose    bool
	configPath string
	outputFmt  string
)

var rootCmd = &cobra.Command{
	Use:   "onesocial",
	Short: "OneSocial CLI - read and write the OneSocial blog from the terminal",
	Long: `OneSocial CLI is a command-line client for the OneSocial blogging
platform. Browse and search posts, follow authors and publish your own
writing without leaving the terminal. Every list prints the web address of
the same view so you can share it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Init(configPath); err != nil {
			return fmt.Errorf("initializing config: %w", err)
		}

		logger.Init(verbose)

		if !output.ValidateOutputFormat(outputFmt) {
			return clierrors.ValidationError("output", "must be text, json or table")
		}
		config.Set("output.format", outputFmt)

		client.Init()

		creds, err := credentials.Load()
		if err != nil {
			logger.Warn("Could not read stored credentials", "error", err)
			return nil
		}
		if creds != nil {
			client.SetAuthToken(creds.AccessToken)
		}
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, service.ErrReported) {
			fmt.Fprint(os.Stderr, clierrors.FormatError(err))
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: ~/.config/onesocial/cli/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "text", "Output format: text, json, table")

	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(commentCmd)
	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(versionCmd)
}
