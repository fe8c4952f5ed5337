package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/onesocial/cli/pkg/client"
	"github.com/onesocial/cli/pkg/config"
)

// withBackend points the shared client at a test server for the duration of t.
func withBackend(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	config.Set("api.base_url", srv.URL)
	config.Set("api.timeout", 5)
	config.Set("api.retries", 0)
	client.Init()
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
