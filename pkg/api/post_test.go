package api

import (
	"context"
	"net/http"
	"testing"
)

const listBody = `{"data":[{"_id":"p1","title":"Hello","slug":"hello","keywords":["go"],
	"statistics":{"likeCount":2,"commentCount":1,"viewCount":9}}],
	"pagination":{"page":2,"limit":10,"totalRows":21}}`

func TestListPosts_ScopesAndParams(t *testing.T) {
	tests := []struct {
		name   string
		scope  ListScope
		params ListParams
		path   string
		query  map[string]string
	}{
		{"all defaults", ScopeAll, ListParams{Page: 1, Limit: 10, By: "all"}, "/posts",
			map[string]string{"page": "1", "limit": "10", "by": "all"}},
		{"search", ScopeAll, ListParams{Page: 2, By: "newest", Search: "go"}, "/posts",
			map[string]string{"page": "2", "by": "newest", "search": "go"}},
		{"profile", ScopeAll, ListParams{Page: 1, Username: "lan"}, "/posts",
			map[string]string{"page": "1", "username": "lan"}},
		{"mine", ScopeMine, ListParams{Page: 3}, "/posts/my", map[string]string{"page": "3"}},
		{"saved", ScopeSaved, ListParams{Search: "rust"}, "/posts/saved", map[string]string{"search": "rust"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBackend(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != tt.path {
					t.Errorf("expected path %s, got %s", tt.path, r.URL.Path)
				}
				got := r.URL.Query()
				if len(got) != len(tt.query) {
					t.Errorf("expected %d query keys, got %v", len(tt.query), got)
				}
				for k, v := range tt.query {
					if got.Get(k) != v {
						t.Errorf("query %s: expected %q, got %q", k, v, got.Get(k))
					}
				}
				writeJSON(w, http.StatusOK, listBody)
			})

			list, err := ListPosts(context.Background(), tt.scope, tt.params)
			if err != nil {
				t.Fatalf("ListPosts failed: %v", err)
			}
			if len(list.Data) != 1 || list.Data[0].Slug != "hello" {
				t.Errorf("items not decoded: %+v", list.Data)
			}
			if list.Pagination.TotalPages() != 3 {
				t.Errorf("expected 3 pages, got %d", list.Pagination.TotalPages())
			}
		})
	}
}

func TestListPosts_CanceledContext(t *testing.T) {
	withBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, listBody)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ListPosts(ctx, ScopeAll, ListParams{}); err == nil {
		t.Error("expected error for canceled context")
	}
}

func TestGetPostBySlug_NotFound(t *testing.T) {
	withBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/posts/detail/missing" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		writeJSON(w, http.StatusNotFound, `{"name":"PostNotFound","message":"not found"}`)
	})

	post, err := GetPostBySlug("missing")
	if post != nil || !IsNotFound(err) {
		t.Fatalf("expected not found, got post=%v err=%v", post, err)
	}
}

func TestPostActions(t *testing.T) {
	var paths []string
	withBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		paths = append(paths, r.URL.Path)
		writeJSON(w, http.StatusOK, `{"_id":"p1","likes":["u1"]}`)
	})

	if _, err := LikePost("p1"); err != nil {
		t.Fatalf("LikePost: %v", err)
	}
	if _, err := SavePost("p1"); err != nil {
		t.Fatalf("SavePost: %v", err)
	}
	if _, err := UnsavePost("p1"); err != nil {
		t.Fatalf("UnsavePost: %v", err)
	}

	want := []string{"/posts/p1/like", "/posts/p1/save", "/posts/p1/unsave"}
	for i, p := range want {
		if i >= len(paths) || paths[i] != p {
			t.Errorf("call %d: expected %s, got %v", i, p, paths)
		}
	}
}

func TestSearchPosts_QuickSearch(t *testing.T) {
	withBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/posts/search" || r.URL.Query().Get("q") != "hoc-go" {
			t.Errorf("unexpected request %s?%s", r.URL.Path, r.URL.RawQuery)
		}
		writeJSON(w, http.StatusOK, `[{"_id":"p1","title":"Hoc Go","slug":"hoc-go"}]`)
	})

	posts, err := SearchPosts("hoc-go")
	if err != nil {
		t.Fatalf("SearchPosts: %v", err)
	}
	if len(posts) != 1 || posts[0].Title != "Hoc Go" {
		t.Errorf("unexpected results %+v", posts)
	}
}

func TestUpdateAndDeletePost(t *testing.T) {
	var methods []string
	withBackend(t, func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, http.StatusOK, `{"_id":"p1","title":"Edited"}`)
	})

	updated, err := UpdatePost(Post{ID: "p1", Title: "Edited"})
	if err != nil || updated.Title != "Edited" {
		t.Fatalf("UpdatePost: %v %+v", err, updated)
	}
	if err := DeletePost("p1"); err != nil {
		t.Fatalf("DeletePost: %v", err)
	}
	if len(methods) != 2 || methods[0] != "PATCH /posts/p1" || methods[1] != "DELETE /posts/p1" {
		t.Errorf("unexpected calls %v", methods)
	}
}
