package api

import (
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestListComments(t *testing.T) {
	withBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/comments/p1" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		writeJSON(w, http.StatusOK, `[{"_id":"c1","postId":"p1","content":"nice","userId":"u1"},
			{"_id":"c2","postId":"p1","content":"agreed","userId":"u2"}]`)
	})

	comments, err := ListComments("p1")
	if err != nil {
		t.Fatalf("ListComments: %v", err)
	}
	if len(comments) != 2 || comments[1].Content != "agreed" {
		t.Errorf("unexpected comments %+v", comments)
	}
}

func TestAddComment_SendsPostID(t *testing.T) {
	var body string
	withBackend(t, func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		writeJSON(w, http.StatusCreated, `{"_id":"c9","postId":"p1","content":"hi","userId":"u1"}`)
	})

	comment, err := AddComment("p1", "hi")
	if err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	if comment.ID != "c9" {
		t.Errorf("expected id c9, got %q", comment.ID)
	}
	if !strings.Contains(body, `"postId":"p1"`) || !strings.Contains(body, `"content":"hi"`) {
		t.Errorf("unexpected body %s", body)
	}
}

func TestDeleteComment_Forbidden(t *testing.T) {
	withBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusForbidden, `{"name":"NotAuthor","message":"forbidden"}`)
	})

	if err := DeleteComment("c1"); !IsForbidden(err) {
		t.Errorf("expected forbidden, got %v", err)
	}
}

func TestFollowAndProfile(t *testing.T) {
	withBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/lan":
			writeJSON(w, http.StatusOK, `{"_id":"u1","username":"lan","followers":["u2"]}`)
		case "/users/u1/follow", "/users/u1/unfollow":
			w.WriteHeader(http.StatusOK)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	user, err := GetUserInfo("lan")
	if err != nil || user.ID != "u1" || len(user.Followers) != 1 {
		t.Fatalf("GetUserInfo: %v %+v", err, user)
	}
	if err := FollowUser("u1"); err != nil {
		t.Errorf("FollowUser: %v", err)
	}
	if err := UnfollowUser("u1"); err != nil {
		t.Errorf("UnfollowUser: %v", err)
	}
}
