package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/onesocial/cli/pkg/api"
	"github.com/onesocial/cli/pkg/config"
	clierrors "github.com/onesocial/cli/pkg/errors"
	"github.com/onesocial/cli/pkg/formatter"
	"github.com/onesocial/cli/pkg/logger"
	"github.com/onesocial/cli/pkg/output"
	"github.com/onesocial/cli/pkg/prompter"
)

// PostService provides post authoring and actions
type PostService struct{}

// NewPostService creates a new post service
func NewPostService() *PostService {
	return &PostService{}
}

// PostInput is what the create and edit flows collect. Empty fields are
// prompted for on create and left unchanged on edit.
type PostInput struct {
	Title       string
	ContentFile string
	Thumbnail   string
	Keywords    string
}

// PostURL is the web address of a post.
func PostURL(slug string) string {
	return strings.TrimRight(config.GetString("web.base_url"), "/") + "/blog/post/" + slug
}

// Show prints a post by slug
func (s *PostService) Show(slug string) error {
	post, err := api.GetPostBySlug(slug)
	if err != nil {
		return err
	}

	if output.GetOutputFormat() == output.FormatJSON {
		return output.Print("", post)
	}

	formatter.Bold.Fprintln(output.Out, post.Title)
	meta := []string{}
	if a := authorName(post.Author); a != "" {
		meta = append(meta, a)
	}
	if t := relativeTime(post.CreatedAt, time.Now()); t != "" {
		meta = append(meta, t)
	}
	meta = append(meta, fmt.Sprintf("%d like%s", post.Statistics.LikeCount, pluralize(post.Statistics.LikeCount)),
		fmt.Sprintf("%d comment%s", post.Statistics.CommentCount, pluralize(post.Statistics.CommentCount)),
		fmt.Sprintf("%d view%s", post.Statistics.ViewCount, pluralize(post.Statistics.ViewCount)))
	formatter.Faint.Fprintln(output.Out, strings.Join(meta, " · "))

	if len(post.Keywords) > 0 {
		tags := make([]string, len(post.Keywords))
		for i, k := range post.Keywords {
			tags[i] = "#" + k
		}
		formatter.Info.Fprintln(output.Out, strings.Join(tags, " "))
	}
	fmt.Fprintf(output.Out, "\n%s\n\n", post.Content)
	formatter.Faint.Fprintln(output.Out, PostURL(post.Slug))
	return nil
}

// Create publishes a new post
func (s *PostService) Create(in PostInput) error {
	var err error
	if in.Title == "" {
		if in.Title, err = prompter.PromptString("Title: "); err != nil {
			return err
		}
	}
	if strings.TrimSpace(in.Title) == "" {
		return clierrors.ValidationError("title", "cannot be empty")
	}

	var content string
	if in.ContentFile != "" {
		if content, err = readContent(in.ContentFile); err != nil {
			return err
		}
	} else if content, err = prompter.PromptMultilineString("Content", 500); err != nil {
		return err
	}
	if strings.TrimSpace(content) == "" {
		return clierrors.ValidationError("content", "cannot be empty")
	}

	if in.Keywords == "" {
		if in.Keywords, err = prompter.PromptString("Keywords (comma separated): "); err != nil {
			return err
		}
	}

	post := api.Post{
		Title:     strings.TrimSpace(in.Title),
		Content:   content,
		Thumbnail: in.Thumbnail,
		Keywords:  parseKeywords(in.Keywords),
	}

	var created *api.Post
	err = recovery.Do(func() error {
		var err error
		created, err = api.CreatePost(post)
		return err
	})
	if err != nil {
		return err
	}

	logger.Info("Post created", "post_id", created.ID, "slug", created.Slug)
	toaster.Success("Post published: " + PostURL(created.Slug))
	return nil
}

// Edit updates the fields of in that are set
func (s *PostService) Edit(postID string, in PostInput) error {
	var post *api.Post
	err := recovery.Do(func() error {
		var err error
		post, err = api.GetPostForEdit(postID)
		return err
	})
	if err != nil {
		return err
	}

	changed := false
	if in.Title != "" {
		post.Title = strings.TrimSpace(in.Title)
		changed = true
	}
	if in.ContentFile != "" {
		if post.Content, err = readContent(in.ContentFile); err != nil {
			return err
		}
		changed = true
	}
	if in.Thumbnail != "" {
		post.Thumbnail = in.Thumbnail
		changed = true
	}
	if in.Keywords != "" {
		post.Keywords = parseKeywords(in.Keywords)
		changed = true
	}

	if !changed {
		if post.Title, err = prompter.PromptStringDefault("Title ", post.Title); err != nil {
			return err
		}
		kw, err := prompter.PromptStringDefault("Keywords ", strings.Join(post.Keywords, ", "))
		if err != nil {
			return err
		}
		post.Keywords = parseKeywords(kw)
	}

	var updated *api.Post
	err = recovery.Do(func() error {
		var err error
		updated, err = api.UpdatePost(*post)
		return err
	})
	if err != nil {
		return err
	}

	toaster.Success("Post updated: " + PostURL(updated.Slug))
	return nil
}

// Delete removes a post after confirmation unless force is set
func (s *PostService) Delete(postID string, force bool) error {
	if !force {
		confirm, err := prompter.PromptConfirm("Delete this post? This cannot be undone.")
		if err != nil {
			return err
		}
		if !confirm {
			formatter.PrintInfo("Cancelled.")
			return nil
		}
	}

	if err := recovery.Do(func() error { return api.DeletePost(postID) }); err != nil {
		return err
	}
	toaster.Success("Post deleted.")
	return nil
}

// Like toggles the like on a post
func (s *PostService) Like(postID string) error {
	var post *api.Post
	err := recovery.Do(func() error {
		var err error
		post, err = api.LikePost(postID)
		return err
	})
	if err != nil {
		return err
	}
	toaster.Success(fmt.Sprintf("%d like%s", len(post.Likes), pluralize(len(post.Likes))))
	return nil
}

// Save adds a post to the saved list
func (s *PostService) Save(postID string) error {
	if err := recovery.Do(func() error { _, err := api.SavePost(postID); return err }); err != nil {
		return err
	}
	toaster.Success("Saved. See it with 'onesocial feed saved'.")
	return nil
}

// Unsave removes a post from the saved list
func (s *PostService) Unsave(postID string) error {
	if err := recovery.Do(func() error { _, err := api.UnsavePost(postID); return err }); err != nil {
		return err
	}
	toaster.Success("Removed from saved posts.")
	return nil
}

// TopHashtags prints the most used keywords
func (s *PostService) TopHashtags(limit int) error {
	tags, err := api.GetTopHashtags(limit)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(tags))
	for _, t := range tags {
		rows = append(rows, []string{"#" + t.Name, fmt.Sprintf("%d", t.Count)})
	}
	return output.PrintList("Top hashtags", []string{"HASHTAG", "POSTS"}, rows, tags)
}
