package api

import (
	"context"
	"strconv"

	"github.com/onesocial/cli/pkg/client"
	"github.com/onesocial/cli/pkg/logger"
)

func (s ListScope) path() string {
	switch s {
	case ScopeMine:
		return "/posts/my"
	case ScopeSaved:
		return "/posts/saved"
	default:
		return "/posts"
	}
}

func (s ListScope) String() string {
	switch s {
	case ScopeMine:
		return "mine"
	case ScopeSaved:
		return "saved"
	default:
		return "all"
	}
}

// query renders the params, leaving out empty values so the backend
// applies its own defaults.
func (p ListParams) query() map[string]string {
	q := map[string]string{}
	if p.Page > 0 {
		q["page"] = strconv.Itoa(p.Page)
	}
	if p.Limit > 0 {
		q["limit"] = strconv.Itoa(p.Limit)
	}
	if p.By != "" {
		q["by"] = p.By
	}
	if p.Search != "" {
		q["search"] = p.Search
	}
	if p.Hashtag != "" {
		q["hashtag"] = p.Hashtag
	}
	if p.Username != "" {
		q["username"] = p.Username
	}
	return q
}

// ListPosts lists one page of posts from the collection selected by scope
func ListPosts(ctx context.Context, scope ListScope, params ListParams) (*PostListResponse, error) {
	logger.Debug("Listing posts", "scope", scope, "page", params.Page, "by", params.By,
		"search", params.Search, "hashtag", params.Hashtag, "username", params.Username)

	resp, err := client.GetClient().
		R().
		SetContext(ctx).
		SetQueryParams(params.query()).
		Get(scope.path())

	var list PostListResponse
	if err := decode(resp, err, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetPostBySlug gets the public detail view of a post
func GetPostBySlug(slug string) (*Post, error) {
	logger.Debug("Fetching post", "slug", slug)

	resp, err := client.GetClient().
		R().
		SetPathParam("slug", slug).
		Get("/posts/detail/{slug}")

	var post Post
	if err := decode(resp, err, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPostForEdit gets the editable copy of a post the user authored
func GetPostForEdit(postID string) (*Post, error) {
	logger.Debug("Fetching post for edit", "post_id", postID)

	resp, err := client.GetClient().
		R().
		SetPathParam("id", postID).
		Get("/posts/{id}")

	var post Post
	if err := decode(resp, err, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// SearchPosts runs the header quick search
func SearchPosts(q string) ([]PostSummary, error) {
	logger.Debug("Quick search", "q", q)

	resp, err := client.GetClient().
		R().
		SetQueryParam("q", q).
		Get("/posts/search")

	var posts []PostSummary
	if err := decode(resp, err, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// CreatePost publishes a new post
func CreatePost(post Post) (*Post, error) {
	logger.Debug("Creating post", "title", post.Title)

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(post).
		Post("/posts")

	var created Post
	if err := decode(resp, err, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdatePost patches an existing post identified by post.ID
func UpdatePost(post Post) (*Post, error) {
	logger.Debug("Updating post", "post_id", post.ID)

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", post.ID).
		SetBody(post).
		Patch("/posts/{id}")

	var updated Post
	if err := decode(resp, err, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeletePost removes a post
func DeletePost(postID string) error {
	logger.Debug("Deleting post", "post_id", postID)

	resp, err := client.GetClient().
		R().
		SetPathParam("id", postID).
		Delete("/posts/{id}")

	return CheckResponse(resp, err)
}

// LikePost toggles the current user's like on a post
func LikePost(postID string) (*Post, error) {
	return postAction(postID, "like")
}

// SavePost adds a post to the current user's saved list
func SavePost(postID string) (*Post, error) {
	return postAction(postID, "save")
}

// UnsavePost removes a post from the current user's saved list
func UnsavePost(postID string) (*Post, error) {
	return postAction(postID, "unsave")
}

func postAction(postID, action string) (*Post, error) {
	logger.Debug("Post action", "post_id", postID, "action", action)

	resp, err := client.GetClient().
		R().
		SetPathParam("id", postID).
		SetPathParam("action", action).
		Post("/posts/{id}/{action}")

	var post Post
	if err := decode(resp, err, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// Hashtag is a keyword with its usage count
type Hashtag struct {
	Name  string `json:"_id"`
	Count int    `json:"count"`
}

// GetTopHashtags returns the most used keywords
func GetTopHashtags(limit int) ([]Hashtag, error) {
	logger.Debug("Fetching top hashtags", "limit", limit)

	req := client.GetClient().R()
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}
	resp, err := req.Get("/posts/tags/top")

	var tags []Hashtag
	if err := decode(resp, err, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}
