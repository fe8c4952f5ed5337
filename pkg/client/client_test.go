package client

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/onesocial/cli/pkg/config"
)

func withServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	config.Set("api.base_url", srv.URL)
	config.Set("api.timeout", 5)
	config.Set("api.retries", 2)
	httpClient = nil
	return srv
}

// TestGetClientSingleton validates that GetClient returns same instance
func TestGetClientSingleton(t *testing.T) {
	httpClient = nil

	client1 := GetClient()
	client2 := GetClient()

	if client1 != client2 {
		t.Error("GetClient should return same instance")
	}
}

func TestRequestHeaders(t *testing.T) {
	var agent, requestID, auth string
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		agent = r.Header.Get("User-Agent")
		requestID = r.Header.Get("X-Request-ID")
		auth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	})

	SetAuthToken("token123")
	if _, err := GetClient().R().Get("/ping"); err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if agent != UserAgent {
		t.Errorf("Expected User-Agent %s, got %s", UserAgent, agent)
	}
	if requestID == "" {
		t.Error("Every request should carry an X-Request-ID")
	}
	if auth != "Bearer token123" {
		t.Errorf("Expected bearer token, got %q", auth)
	}
}

func TestRequestIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		seen[r.Header.Get("X-Request-ID")] = true
	})

	for i := 0; i < 3; i++ {
		if _, err := GetClient().R().Get("/ping"); err != nil {
			t.Fatalf("request failed: %v", err)
		}
	}
	if len(seen) != 3 {
		t.Errorf("Expected 3 distinct request ids, got %d", len(seen))
	}
}

// TestClearAuthToken validates auth token clearing
func TestClearAuthToken(t *testing.T) {
	var auth string
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
	})

	SetAuthToken("test_token")
	if !HasAuthToken() {
		t.Fatal("token should be set")
	}
	ClearAuthToken()
	if HasAuthToken() {
		t.Error("token should be cleared")
	}

	if _, err := GetClient().R().Get("/ping"); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if auth != "" {
		t.Errorf("Authorization header should be gone, got %q", auth)
	}
}

func TestRetriesOnlyIdempotentReads(t *testing.T) {
	var gets, posts int32
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			if atomic.AddInt32(&gets, 1) == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.WriteHeader(http.StatusOK)
			return
		}
		atomic.AddInt32(&posts, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	resp, err := GetClient().R().Get("/posts")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	if resp.StatusCode() != http.StatusOK {
		t.Errorf("GET should succeed after a retry, got %d", resp.StatusCode())
	}
	if atomic.LoadInt32(&gets) != 2 {
		t.Errorf("Expected 2 GET attempts, got %d", gets)
	}

	if _, err := GetClient().R().Post("/posts/1/like"); err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	if atomic.LoadInt32(&posts) != 1 {
		t.Errorf("POST must not be retried, got %d attempts", posts)
	}
}
