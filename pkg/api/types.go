package api

import "time"

// Auth Request/Response Types
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type GoogleLoginRequest struct {
	Token string `json:"token"`
}

type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int    `json:"expiresIn"`
	User         User   `json:"user"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// User is the public profile the backend returns for authors and accounts.
type User struct {
	ID        string     `json:"_id"`
	Name      string     `json:"name"`
	Username  string     `json:"username"`
	Email     string     `json:"email,omitempty"`
	Avatar    string     `json:"avatar,omitempty"`
	Bio       string     `json:"bio,omitempty"`
	Role      string     `json:"role,omitempty"`
	Active    bool       `json:"active"`
	Following []string   `json:"following,omitempty"`
	Followers []string   `json:"followers,omitempty"`
	Saved     []string   `json:"saved,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// IsAdmin reports whether the account carries the admin role.
func (u User) IsAdmin() bool {
	return u.Role == "admin"
}

type UpdateProfileRequest struct {
	Name     string `json:"name,omitempty"`
	Username string `json:"username,omitempty"`
	Bio      string `json:"bio,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

type PostStatistics struct {
	LikeCount    int `json:"likeCount"`
	CommentCount int `json:"commentCount"`
	ViewCount    int `json:"viewCount"`
}

// Post is a full blog post as returned by the detail and edit endpoints.
type Post struct {
	ID         string         `json:"_id,omitempty"`
	Title      string         `json:"title"`
	Content    string         `json:"content"`
	Thumbnail  string         `json:"thumbnail"`
	AuthorID   string         `json:"authorId"`
	Keywords   []string       `json:"keywords"`
	Author     *User          `json:"author,omitempty"`
	Likes      []string       `json:"likes,omitempty"`
	Statistics PostStatistics `json:"statistics"`
	Slug       string         `json:"slug,omitempty"`
	CreatedAt  *time.Time     `json:"createdAt,omitempty"`
}

// PostSummary is the list-view projection of a post.
type PostSummary struct {
	ID         string         `json:"_id"`
	Title      string         `json:"title"`
	Slug       string         `json:"slug"`
	Thumbnail  string         `json:"thumbnail,omitempty"`
	Keywords   []string       `json:"keywords,omitempty"`
	Author     *User          `json:"author,omitempty"`
	Statistics PostStatistics `json:"statistics"`
	CreatedAt  *time.Time     `json:"createdAt,omitempty"`
}

// PageInfo is the pagination block attached to list responses.
type PageInfo struct {
	Page      int `json:"page"`
	Limit     int `json:"limit"`
	TotalRows int `json:"totalRows"`
}

// TotalPages derives the page count from the row total.
func (p PageInfo) TotalPages() int {
	if p.Limit <= 0 {
		return 1
	}
	pages := (p.TotalRows + p.Limit - 1) / p.Limit
	if pages < 1 {
		return 1
	}
	return pages
}

type PostListResponse struct {
	Data       []PostSummary `json:"data"`
	Pagination PageInfo      `json:"pagination"`
}

// ListParams is the query accepted by the post list endpoints.
type ListParams struct {
	Page     int
	Limit    int
	By       string
	Search   string
	Hashtag  string
	Username string
}

// ListScope selects which post collection ListPosts reads.
type ListScope int

const (
	ScopeAll ListScope = iota
	ScopeMine
	ScopeSaved
)

type Comment struct {
	ID        string     `json:"_id,omitempty"`
	PostID    string     `json:"postId"`
	Content   string     `json:"content"`
	UserID    string     `json:"userId"`
	User      *User      `json:"user,omitempty"`
	Likes     []string   `json:"likes,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

type CreateCommentRequest struct {
	PostID  string `json:"postId"`
	Content string `json:"content"`
}

type ErrorResponse struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
