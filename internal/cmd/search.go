package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/onesocial/cli/pkg/service"
)

var (
	searchOpts  service.FeedOptions
	searchQuick bool
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search posts",
	Long: `Search posts by text. By default this lists the matching page of the
home list with its shareable address; --quick prints only the title
suggestions the web search box shows while typing.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewSearchService()
		term := strings.Join(args, " ")
		if searchQuick {
			return svc.Quick(term)
		}
		return svc.Posts(cmd.Context(), term, searchOpts)
	},
}

func init() {
	searchCmd.Flags().BoolVarP(&searchQuick, "quick", "q", false, "Only show title suggestions")
	searchCmd.Flags().IntVar(&searchOpts.Page, "page", 0, "Page number")
	searchCmd.Flags().StringVar(&searchOpts.Sort, "by", "", "Sort order: all, newest, popular")
	_ = searchCmd.RegisterFlagCompletionFunc("by", completeSortModes)
}
