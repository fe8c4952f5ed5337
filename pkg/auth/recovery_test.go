package auth

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/onesocial/cli/pkg/api"
	"github.com/onesocial/cli/pkg/client"
	"github.com/onesocial/cli/pkg/config"
	"github.com/onesocial/cli/pkg/credentials"
)

func withCredentials(t *testing.T, creds *credentials.Credentials) {
	t.Helper()
	if err := config.Init(filepath.Join(t.TempDir(), "config.toml")); err != nil {
		t.Fatalf("config init: %v", err)
	}
	if creds != nil {
		if err := credentials.Save(creds); err != nil {
			t.Fatalf("save credentials: %v", err)
		}
	}
	client.Init()
}

func fastRecovery(refresh func(string) (*api.RefreshResponse, error)) *SessionRecovery {
	sr := NewSessionRecovery()
	sr.retryDelay = time.Millisecond
	sr.refresh = refresh
	return sr
}

// TestNewSessionRecovery validates session recovery initialization
func TestNewSessionRecovery(t *testing.T) {
	sr := NewSessionRecovery()

	if sr.maxRetries != 3 {
		t.Errorf("Expected maxRetries 3, got %d", sr.maxRetries)
	}
	if sr.retryDelay != 2*time.Second {
		t.Errorf("Expected retryDelay 2s, got %v", sr.retryDelay)
	}
	if sr.refresh == nil {
		t.Error("refresh should default to the API call")
	}
}

func TestIsSessionError(t *testing.T) {
	testCases := []struct {
		err    error
		expect bool
		name   string
	}{
		{nil, false, "nil"},
		{errors.New("401"), true, "401 code"},
		{errors.New("token expired"), true, "token expired message"},
		{&api.APIError{StatusCode: 401, Name: "TokenExpired"}, true, "api 401"},
		{&api.APIError{StatusCode: 403}, false, "api 403"},
		{errors.New("connection refused"), false, "network"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsSessionError(tc.err); got != tc.expect {
				t.Errorf("Expected %v, got %v", tc.expect, got)
			}
		})
	}
}

func TestRecoverSession_NoCredentials(t *testing.T) {
	withCredentials(t, nil)

	sr := fastRecovery(func(string) (*api.RefreshResponse, error) {
		t.Fatal("refresh should not be called without credentials")
		return nil, nil
	})
	if err := sr.RecoverSession(); err == nil {
		t.Error("expected error without credentials")
	}
}

func TestRecoverSession_RetriesThenSucceeds(t *testing.T) {
	withCredentials(t, &credentials.Credentials{AccessToken: "old", RefreshToken: "rt"})

	calls := 0
	sr := fastRecovery(func(token string) (*api.RefreshResponse, error) {
		calls++
		if token != "rt" {
			t.Errorf("unexpected refresh token %q", token)
		}
		if calls < 2 {
			return nil, errors.New("connection refused")
		}
		return &api.RefreshResponse{AccessToken: "fresh", ExpiresIn: 60}, nil
	})

	if err := sr.RecoverSession(); err != nil {
		t.Fatalf("RecoverSession: %v", err)
	}
	if calls != 2 {
		t.Errorf("Expected 2 refresh attempts, got %d", calls)
	}

	saved, _ := credentials.Load()
	if saved.AccessToken != "fresh" {
		t.Errorf("Expected saved token fresh, got %q", saved.AccessToken)
	}
	if !client.HasAuthToken() {
		t.Error("client should carry the new token")
	}
}

func TestRecoverSession_RejectedRefreshStops(t *testing.T) {
	withCredentials(t, &credentials.Credentials{AccessToken: "old", RefreshToken: "revoked"})

	calls := 0
	sr := fastRecovery(func(string) (*api.RefreshResponse, error) {
		calls++
		return nil, &api.APIError{StatusCode: 401, Name: "InvalidToken"}
	})

	if err := sr.RecoverSession(); err == nil {
		t.Error("expected failure")
	}
	if calls != 1 {
		t.Errorf("a rejected refresh token should not be retried, got %d calls", calls)
	}
}

func TestDo_RetriesOnceAfterRecovery(t *testing.T) {
	withCredentials(t, &credentials.Credentials{AccessToken: "old", RefreshToken: "rt"})

	sr := fastRecovery(func(string) (*api.RefreshResponse, error) {
		return &api.RefreshResponse{AccessToken: "fresh"}, nil
	})

	attempts := 0
	err := sr.Do(func() error {
		attempts++
		if attempts == 1 {
			return &api.APIError{StatusCode: 401}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if attempts != 2 {
		t.Errorf("Expected 2 attempts, got %d", attempts)
	}
}

func TestDo_PassesThroughOtherErrors(t *testing.T) {
	sr := fastRecovery(func(string) (*api.RefreshResponse, error) {
		t.Fatal("refresh should not run for non-session errors")
		return nil, nil
	})

	want := &api.APIError{StatusCode: 404}
	attempts := 0
	err := sr.Do(func() error {
		attempts++
		return want
	})
	if err != want || attempts != 1 {
		t.Errorf("Expected single attempt returning the error, got %v after %d", err, attempts)
	}
}
