package service

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/onesocial/cli/pkg/client"
	"github.com/onesocial/cli/pkg/config"
	"github.com/onesocial/cli/pkg/credentials"
	"github.com/onesocial/cli/pkg/output"
	"github.com/onesocial/cli/pkg/prompter"
)

// setup gives each test a fresh config dir, a backend and captured output.
func setup(t *testing.T, handler http.HandlerFunc) *bytes.Buffer {
	t.Helper()
	if err := config.Init(filepath.Join(t.TempDir(), "config.toml")); err != nil {
		t.Fatalf("config init: %v", err)
	}
	if handler != nil {
		srv := httptest.NewServer(handler)
		t.Cleanup(srv.Close)
		config.Set("api.base_url", srv.URL)
	}
	config.Set("api.retries", 0)
	config.Set("api.timeout", 5)
	client.Init()

	out := &bytes.Buffer{}
	prev := output.Out
	output.Out = out
	t.Cleanup(func() { output.Out = prev })
	return out
}

func withInput(t *testing.T, input string) {
	t.Helper()
	prevIn, prevOut := prompter.In, prompter.Out
	prompter.In, prompter.Out = strings.NewReader(input), &bytes.Buffer{}
	t.Cleanup(func() { prompter.In, prompter.Out = prevIn, prevOut })
}

func loggedIn(t *testing.T, admin bool) {
	t.Helper()
	creds := &credentials.Credentials{
		AccessToken:  "access",
		RefreshToken: "refresh",
		ExpiresAt:    time.Now().Add(time.Hour),
		UserID:       "u1",
		Username:     "lan",
		IsAdmin:      admin,
	}
	if err := credentials.Save(creds); err != nil {
		t.Fatalf("save credentials: %v", err)
	}
	client.SetAuthToken(creds.AccessToken)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
