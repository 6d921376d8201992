package client

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/emsuite/ems-cli/pkg/config"
)

func initClient(t *testing.T) {
	t.Helper()
	if err := config.Init(filepath.Join(t.TempDir(), "config.toml")); err != nil {
		t.Fatalf("config.Init: %v", err)
	}
	Init()
	ClearSession()
}

func TestGetClientReturnsSingleton(t *testing.T) {
	initClient(t)

	if GetClient() != GetClient() {
		t.Error("GetClient returned different instances")
	}
}

func TestSessionHeadersAttached(t *testing.T) {
	initClient(t)

	var gotCSRF, gotCookie, gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCSRF = r.Header.Get("X-CSRFToken")
		gotCookie = r.Header.Get("Cookie")
		gotAgent = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	SetBaseURL(srv.URL)
	SetSession("sess-token", "csrf-token")

	if _, err := GetClient().R().Post("/api/journal-entries"); err != nil {
		t.Fatalf("request: %v", err)
	}

	if gotCSRF != "csrf-token" {
		t.Errorf("X-CSRFToken = %q", gotCSRF)
	}
	if gotCookie != "session=sess-token" {
		t.Errorf("Cookie = %q", gotCookie)
	}
	if gotAgent != "EMS-CLI/0.1.0" {
		t.Errorf("User-Agent = %q", gotAgent)
	}
}

func TestClearSessionDropsHeaders(t *testing.T) {
	initClient(t)

	var gotCSRF, gotCookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCSRF = r.Header.Get("X-CSRFToken")
		gotCookie = r.Header.Get("Cookie")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	SetBaseURL(srv.URL)
	SetSession("sess-token", "csrf-token")
	ClearSession()

	if _, err := GetClient().R().Get("/api/notifications"); err != nil {
		t.Fatalf("request: %v", err)
	}

	if gotCSRF != "" || gotCookie != "" {
		t.Errorf("headers survived ClearSession: csrf=%q cookie=%q", gotCSRF, gotCookie)
	}
}
