package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/onesocial/cli/pkg/api"
	clierrors "github.com/onesocial/cli/pkg/errors"
	"github.com/onesocial/cli/pkg/formatter"
	"github.com/onesocial/cli/pkg/output"
	"github.com/onesocial/cli/pkg/prompter"
)

// CommentService handles comments on posts
type CommentService struct{}

// NewCommentService creates a new comment service
func NewCommentService() *CommentService {
	return &CommentService{}
}

// List prints the comments of a post, oldest first
func (s *CommentService) List(postID string) error {
	comments, err := api.ListComments(postID)
	if err != nil {
		return err
	}

	if output.GetOutputFormat() == output.FormatJSON {
		return output.Print("", comments)
	}
	if len(comments) == 0 {
		formatter.PrintInfo("No comments yet.")
		return nil
	}

	now := time.Now()
	for _, c := range comments {
		author := authorName(c.User)
		if author == "" {
			author = c.UserID
		}
		formatter.Bold.Fprint(output.Out, author)
		formatter.Faint.Fprintf(output.Out, "  %s", relativeTime(c.CreatedAt, now))
		if n := len(c.Likes); n > 0 {
			formatter.Faint.Fprintf(output.Out, " · %d like%s", n, pluralize(n))
		}
		fmt.Fprintf(output.Out, "\n%s\n", c.Content)
		formatter.Faint.Fprintf(output.Out, "id: %s\n\n", c.ID)
	}
	fmt.Fprintf(output.Out, "%d comment%s\n", len(comments), pluralize(len(comments)))
	return nil
}

// Add posts a comment, prompting for the text when content is empty
func (s *CommentService) Add(postID, content string) error {
	var err error
	if content == "" {
		if content, err = prompter.PromptMultilineString("Comment", 50); err != nil {
			return err
		}
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return clierrors.ValidationError("content", "cannot be empty")
	}

	var created *api.Comment
	err = recovery.Do(func() error {
		var err error
		created, err = api.AddComment(postID, content)
		return err
	})
	if err != nil {
		return err
	}
	toaster.Success("Comment added (" + created.ID + ")")
	return nil
}

// Delete removes one of the user's comments
func (s *CommentService) Delete(commentID string, force bool) error {
	if !force {
		confirm, err := prompter.PromptConfirm("Delete this comment?")
		if err != nil {
			return err
		}
		if !confirm {
			formatter.PrintInfo("Cancelled.")
			return nil
		}
	}
	if err := recovery.Do(func() error { return api.DeleteComment(commentID) }); err != nil {
		return err
	}
	toaster.Success("Comment deleted.")
	return nil
}

// Like toggles the like on a comment
func (s *CommentService) Like(commentID string) error {
	var c *api.Comment
	err := recovery.Do(func() error {
		var err error
		c, err = api.LikeComment(commentID)
		return err
	})
	if err != nil {
		return err
	}
	toaster.Success(fmt.Sprintf("%d like%s", len(c.Likes), pluralize(len(c.Likes))))
	return nil
}
