package cmd

import (
	"github.com/spf13/cobra"

	"github.com/onesocial/cli/pkg/service"
)

var (
	postInput     service.PostInput
	postForce     bool
	postTagsLimit int
)

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Post management commands",
	Long:  "Read, write and manage blog posts",
}

var postShowCmd = &cobra.Command{
	Use:     "show <slug>",
	Aliases: []string{"view"},
	Short:   "Read a post",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		postService := service.NewPostService()
		return postService.Show(args[0])
	},
}

var postCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Publish a new post",
	Long:  "Publish a new post. Content is read from --content-file (use - for stdin) or typed in.",
	RunE: func(cmd *cobra.Command, args []string) error {
		postService := service.NewPostService()
		return postService.Create(postInput)
	},
}

var postEditCmd = &cobra.Command{
	Use:   "edit <post-id>",
	Short: "Edit one of your posts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		postService := service.NewPostService()
		return postService.Edit(args[0], postInput)
	},
}

var postDeleteCmd = &cobra.Command{
	Use:   "delete <post-id>",
	Short: "Delete a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		postService := service.NewPostService()
		return postService.Delete(args[0], postForce)
	},
}

var postLikeCmd = &cobra.Command{
	Use:   "like <post-id>",
	Short: "Like or unlike a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		postService := service.NewPostService()
		return postService.Like(args[0])
	},
}

var postSaveCmd = &cobra.Command{
	Use:   "save <post-id>",
	Short: "Save a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		postService := service.NewPostService()
		return postService.Save(args[0])
	},
}

var postUnsaveCmd = &cobra.Command{
	Use:   "unsave <post-id>",
	Short: "Remove a post from your saved posts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		postService := service.NewPostService()
		return postService.Unsave(args[0])
	},
}

var postTagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Show the most used hashtags",
	RunE: func(cmd *cobra.Command, args []string) error {
		postService := service.NewPostService()
		return postService.TopHashtags(postTagsLimit)
	},
}

func init() {
	for _, c := range []*cobra.Command{postCreateCmd, postEditCmd} {
		c.Flags().StringVarP(&postInput.Title, "title", "t", "", "Post title")
		c.Flags().StringVarP(&postInput.ContentFile, "content-file", "f", "", "Read content from a file, - for stdin")
		c.Flags().StringVar(&postInput.Thumbnail, "thumbnail", "", "Thumbnail image URL")
		c.Flags().StringVarP(&postInput.Keywords, "keywords", "k", "", "Comma separated hashtags")
	}
	postDeleteCmd.Flags().BoolVar(&postForce, "force", false, "Skip confirmation")
	postTagsCmd.Flags().IntVar(&postTagsLimit, "limit", 10, "Number of hashtags")

	postCmd.AddCommand(postShowCmd)
	postCmd.AddCommand(postCreateCmd)
	postCmd.AddCommand(postEditCmd)
	postCmd.AddCommand(postDeleteCmd)
	postCmd.AddCommand(postLikeCmd)
	postCmd.AddCommand(postSaveCmd)
	postCmd.AddCommand(postUnsaveCmd)
	postCmd.AddCommand(postTagsCmd)
}
