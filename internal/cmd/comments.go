package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/onesocial/cli/pkg/service"
)

var commentForce bool

var commentCmd = &cobra.Command{
	Use:   "comment",
	Short: "Manage comments on posts",
	Long:  "Read, write, like and delete comments",
}

var viewCommentsCmd = &cobra.Command{
	Use:     "list <post-id>",
	Aliases: []string{"view"},
	Short:   "View comments on a post",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewCommentService()
		return svc.List(args[0])
	},
}

var createCommentCmd = &cobra.Command{
	Use:   "add <post-id> [text]",
	Short: "Comment on a post",
	Long:  "Comment on a post. Without text the comment is typed in, ending with an empty line.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewCommentService()
		return svc.Add(args[0], strings.Join(args[1:], " "))
	},
}

var deleteCommentCmd = &cobra.Command{
	Use:   "delete <comment-id>",
	Short: "Delete one of your comments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewCommentService()
		return svc.Delete(args[0], commentForce)
	},
}

var likeCommentCmd = &cobra.Command{
	Use:   "like <comment-id>",
	Short: "Like or unlike a comment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewCommentService()
		return svc.Like(args[0])
	},
}

func init() {
	deleteCommentCmd.Flags().BoolVar(&commentForce, "force", false, "Skip confirmation")

	commentCmd.AddCommand(viewCommentsCmd)
	commentCmd.AddCommand(createCommentCmd)
	commentCmd.AddCommand(deleteCommentCmd)
	commentCmd.AddCommand(likeCommentCmd)
}
