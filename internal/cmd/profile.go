package cmd

import (
	"github.com/spf13/cobra"

	"github.com/onesocial/cli/pkg/listsync"
	"github.com/onesocial/cli/pkg/service"
)

var profileOpts service.FeedOptions

var userCmd = &cobra.Command{
	Use:     "user",
	Aliases: []string{"profile"},
	Short:   "User profile commands",
	Long:    "View profiles and follow authors",
}

var profileViewCmd = &cobra.Command{
	Use:   "view <username>",
	Short: "View a user profile and their posts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewUserService()
		return svc.Profile(cmd.Context(), args[0], profileOpts)
	},
}

var followCmd = &cobra.Command{
	Use:   "follow <username>",
	Short: "Follow a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewUserService()
		return svc.Follow(args[0])
	},
}

var unfollowCmd = &cobra.Command{
	Use:   "unfollow <username>",
	Short: "Unfollow a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewUserService()
		return svc.Unfollow(args[0])
	},
}

func init() {
	addListFlags(profileViewCmd, &profileOpts, listsync.KindProfile)

	userCmd.AddCommand(profileViewCmd)
	userCmd.AddCommand(followCmd)
	userCmd.AddCommand(unfollowCmd)
}
