package api

import (
	"github.com/onesocial/cli/pkg/client"
	"github.com/onesocial/cli/pkg/logger"
)

// ListComments gets the comments of a post, oldest first
func ListComments(postID string) ([]Comment, error) {
	logger.Debug("Listing comments", "post_id", postID)

	resp, err := client.GetClient().
		R().
		SetPathParam("postId", postID).
		Get("/comments/{postId}")

	var comments []Comment
	if err := decode(resp, err, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// AddComment posts a comment on a post
func AddComment(postID, content string) (*Comment, error) {
	logger.Debug("Adding comment", "post_id", postID)

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(CreateCommentRequest{PostID: postID, Content: content}).
		Post("/comments")

	var comment Comment
	if err := decode(resp, err, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteComment removes a comment
func DeleteComment(commentID string) error {
	logger.Debug("Deleting comment", "comment_id", commentID)

	resp, err := client.GetClient().
		R().
		SetPathParam("id", commentID).
		Delete("/comments/{id}")

	return CheckResponse(resp, err)
}

// LikeComment toggles the current user's like on a comment
func LikeComment(commentID string) (*Comment, error) {
	logger.Debug("Liking comment", "comment_id", commentID)

	resp, err := client.GetClient().
		R().
		SetPathParam("id", commentID).
		Post("/comments/{id}/like")

	var comment Comment
	if err := decode(resp, err, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}
