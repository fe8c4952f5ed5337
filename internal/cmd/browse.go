package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/onesocial/cli/pkg/browse"
	"github.com/onesocial/cli/pkg/config"
	"github.com/onesocial/cli/pkg/listsync"
	"github.com/onesocial/cli/pkg/logger"
	"github.com/onesocial/cli/pkg/service"
)

var browseOpts service.FeedOptions

var browseCmd = &cobra.Command{
	Use:   "browse [home|profile|admin|saved|mine] [url]",
	Short: "Browse a list interactively",
	Long: `Open a list in an interactive browser. Type / to search, # to pick a
hashtag, tab to change the sort, arrows to page and b/f to move through
the history of the list. Press enter to read the selected post.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := listsync.KindHome
		if len(args) > 0 {
			k, err := listsync.ParseViewKind(args[0])
			if err != nil {
				return err
			}
			kind = k
		}
		opts := browseOpts
		if len(args) > 1 {
			opts.Query = args[1]
		}
		return runBrowser(cmd, kind, opts)
	},
}

func runBrowser(cmd *cobra.Command, kind listsync.ViewKind, opts service.FeedOptions) error {
	events := browse.NewEvents()
	toaster := service.Toaster()
	toaster.SetSink(events.Toast)
	defer toaster.SetSink(nil)

	feedService := service.NewFeedService()
	view, err := feedService.Open(cmd.Context(), kind, opts, listsync.Deps{
		Notifier: events,
		OnQuery:  events.Query,
	})
	if err != nil {
		return err
	}
	defer feedService.Registry().CloseAll()
	stop := events.Watch(view.Results())
	defer stop()

	final, err := tea.NewProgram(browse.New(view, events), tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	if err := listsync.SaveLastQuery(config.GetStateDir(), kind, view.Query()); err != nil {
		logger.Warn("Could not save list location", "error", err)
	}

	if m, ok := final.(browse.Model); ok && m.Chosen() != "" {
		postService := service.NewPostService()
		return postService.Show(m.Chosen())
	}
	return nil
}

func init() {
	browseCmd.Flags().StringVarP(&browseOpts.Search, "search", "s", "", "Start with this search")
	browseCmd.Flags().StringVar(&browseOpts.Hashtag, "hashtag", "", "Start with this hashtag")
	browseCmd.Flags().StringVarP(&browseOpts.Username, "username", "u", "", "Author, required for the profile list")
	browseCmd.Flags().StringVar(&browseOpts.Sort, "by", "", "Sort order: all, newest, popular")
	_ = browseCmd.RegisterFlagCompletionFunc("by", completeSortModes)
	browseCmd.Flags().IntVar(&browseOpts.Page, "page", 0, "Page number")
	browseCmd.Flags().BoolVar(&browseOpts.Resume, "resume", false, "Start where this list was last left")
}
