package api_test

import (
	"net/http"
	"testing"
)

func TestHealth(t *testing.T) {
	app := newTestApp(t, appOptions{})

	resp := app.get(t, "/health")
	expectStatus(t, resp, http.StatusOK)

	var body struct {
		OK bool `json:"ok"`
	}
	decode(t, resp, &body)
	if !body.OK {
		t.Error("expected ok=true")
	}
	for _, c := range resp.Cookies() {
		if c.Name == testCookie {
			t.Error("health must not mint a session")
		}
	}
}

func TestManifest(t *testing.T) {
	app := newTestApp(t, appOptions{})

	for _, path := range []string{"/manifest.json", "/manifest.webmanifest"} {
		resp := app.get(t, path)
		expectStatus(t, resp, http.StatusOK)
		if ct := resp.Header.Get("Content-Type"); ct != "application/manifest+json" {
			t.Errorf("%s: unexpected content type %q", path, ct)
		}
		var m struct {
			StartURL string `json:"start_url"`
		}
		decode(t, resp, &m)
		if m.StartURL != "/start" {
			t.Errorf("%s: expected start_url /start, got %q", path, m.StartURL)
		}
	}
}

func TestNoContentRoutes(t *testing.T) {
	app := newTestApp(t, appOptions{})

	for _, path := range []string{"/favicon.ico", "/.well-known/appspecific/com.chrome.devtools.json"} {
		expectStatus(t, app.get(t, path), http.StatusNoContent)
	}
}

func TestLogging_SetsRequestID(t *testing.T) {
	app := newTestApp(t, appOptions{})

	resp := app.get(t, "/health")
	if id := resp.Header.Get("X-Request-ID"); len(id) != 36 {
		t.Errorf("expected a uuid request id, got %q", id)
	}
}
