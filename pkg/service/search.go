package service

import (
	"context"
	"strings"

	"github.com/gosimple/slug"

	"github.com/onesocial/cli/pkg/api"
	clierrors "github.com/onesocial/cli/pkg/errors"
	"github.com/onesocial/cli/pkg/listsync"
	"github.com/onesocial/cli/pkg/output"
)

// SearchService looks posts up by text
type SearchService struct {
	feed *FeedService
}

// NewSearchService creates a new search service
func NewSearchService() *SearchService {
	return &SearchService{feed: NewFeedService()}
}

// Quick prints the title matches the search box suggests while typing. The
// term is sent in slug form, as the web search box does.
func (s *SearchService) Quick(term string) error {
	term = strings.TrimSpace(term)
	if term == "" {
		return clierrors.ValidationError("query", "cannot be empty")
	}

	q := slug.Make(term)
	if q == "" {
		return clierrors.ValidationError("query", "needs at least one letter or digit")
	}
	posts, err := api.SearchPosts(q)
	if err != nil {
		return err
	}

	if len(posts) == 0 {
		output.PrintInfo("No posts match %q.", term)
		return nil
	}
	rows := make([][]string, 0, len(posts))
	for _, p := range posts {
		rows = append(rows, []string{truncate(p.Title, 60), authorName(p.Author), PostURL(p.Slug)})
	}
	return output.PrintList("Suggestions", []string{"TITLE", "AUTHOR", "URL"}, rows, posts)
}

// Posts runs a full search on the home list, keeping sort and page options.
func (s *SearchService) Posts(ctx context.Context, term string, opts FeedOptions) error {
	term = strings.TrimSpace(term)
	if term == "" {
		return clierrors.ValidationError("query", "cannot be empty")
	}
	opts.Search = term
	return s.feed.Show(ctx, listsync.KindHome, opts)
}
