package api

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/emsuite/ems-cli/pkg/client"
	"github.com/emsuite/ems-cli/pkg/config"
	"github.com/go-resty/resty/v2"
)

// newTestServer points the shared HTTP client at a local stub backend
func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	if err := config.Init(filepath.Join(t.TempDir(), "config.toml")); err != nil {
		t.Fatalf("config.Init: %v", err)
	}

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client.SetBaseURL(srv.URL)
	return srv
}

// clientGet issues a raw GET through the shared client for response-level tests
func clientGet(t *testing.T, path string) (*resty.Response, error) {
	t.Helper()
	return client.GetClient().R().Get(path)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		t.Errorf("write response: %v", err)
	}
}
