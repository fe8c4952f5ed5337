package cmd

import (
	"github.com/spf13/cobra"

	"github.com/onesocial/cli/pkg/listsync"
	"github.com/onesocial/cli/pkg/service"
)

var feedOpts service.FeedOptions

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Feed commands",
	Long: `List posts. Each list takes the same filters as the web client and
accepts a web address of the list in place of flags:

  onesocial feed home "https://onesocial.example/?hashtag=go&page=2"

Flags given alongside an address override it.`,
}

func feedRun(kind listsync.ViewKind) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		opts := feedOpts
		if kind == listsync.KindProfile {
			opts.Username = args[0]
			args = args[1:]
		}
		if len(args) > 0 {
			opts.Query = args[0]
		}
		feedService := service.NewFeedService()
		return feedService.Show(cmd.Context(), kind, opts)
	}
}

var feedHomeCmd = &cobra.Command{
	Use:   "home [url]",
	Short: "Latest posts from everyone",
	Args:  cobra.MaximumNArgs(1),
	RunE:  feedRun(listsync.KindHome),
}

var feedProfileCmd = &cobra.Command{
	Use:   "profile <username> [url]",
	Short: "Posts by one author",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  feedRun(listsync.KindProfile),
}

var feedAdminCmd = &cobra.Command{
	Use:   "admin [url]",
	Short: "Every post, for moderation (admin only)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  feedRun(listsync.KindAdmin),
}

var feedSavedCmd = &cobra.Command{
	Use:   "saved [url]",
	Short: "Posts you saved",
	Args:  cobra.MaximumNArgs(1),
	RunE:  feedRun(listsync.KindSaved),
}

var feedMineCmd = &cobra.Command{
	Use:   "mine [url]",
	Short: "Posts you wrote",
	Args:  cobra.MaximumNArgs(1),
	RunE:  feedRun(listsync.KindMine),
}

// addListFlags registers the filter flags that apply to kind.
func addListFlags(c *cobra.Command, opts *service.FeedOptions, kind listsync.ViewKind) {
	c.Flags().IntVar(&opts.Page, "page", 0, "Page number")
	c.Flags().StringVar(&opts.Sort, "by", "", "Sort order: all, newest, popular")
	c.Flags().BoolVar(&opts.Resume, "resume", false, "Start where this list was last left")
	if kind.Allows(listsync.KeySearch) {
		c.Flags().StringVarP(&opts.Search, "search", "s", "", "Search text")
	}
	if kind.Allows(listsync.KeyHashtag) {
		c.Flags().StringVar(&opts.Hashtag, "hashtag", "", "Only posts with this hashtag")
	}
	if kind.Allows(listsync.KeyUsername) {
		c.Flags().StringVarP(&opts.Username, "username", "u", "", "Only posts by this author")
	}
	_ = c.RegisterFlagCompletionFunc("by", completeSortModes)
}

func init() {
	addListFlags(feedHomeCmd, &feedOpts, listsync.KindHome)
	addListFlags(feedProfileCmd, &feedOpts, listsync.KindProfile)
	addListFlags(feedAdminCmd, &feedOpts, listsync.KindAdmin)
	addListFlags(feedSavedCmd, &feedOpts, listsync.KindSaved)
	addListFlags(feedMineCmd, &feedOpts, listsync.KindMine)

	feedCmd.AddCommand(feedHomeCmd)
	feedCmd.AddCommand(feedProfileCmd)
	feedCmd.AddCommand(feedAdminCmd)
	feedCmd.AddCommand(feedSavedCmd)
	feedCmd.AddCommand(feedMineCmd)
}
