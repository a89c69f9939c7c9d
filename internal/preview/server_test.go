package preview

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/htmlsmith-dev/htmlsmith/internal/config"
)

const testIndexHTML = `<!DOCTYPE html>
<html>
  <head></head>
  <body>    <h1>Home</h1>
  </body>
</html>
`

func newTestServer(t *testing.T, liveReload bool) *Server {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte(testIndexHTML), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "style.css"), []byte("body { margin: 0 }\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "docs"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "docs", "index.html"), []byte(testIndexHTML), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := config.New()
	cfg.Serve.Dir = dir
	cfg.Serve.Watch = []string{dir}
	cfg.Serve.LiveReload = liveReload

	return NewServer(Options{Config: cfg})
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestServeIndexWithInjection(t *testing.T) {
	s := newTestServer(t, true)

	rec := get(t, s, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "<h1>Home</h1>") {
		t.Error("response should contain the page content")
	}
	if !strings.Contains(body, LiveReloadPath) {
		t.Error("response should contain the injected reload script")
	}
	if !strings.Contains(rec.Header().Get("Content-Type"), "text/html") {
		t.Errorf("Content-Type = %q, want text/html", rec.Header().Get("Content-Type"))
	}

	// The script lands before the closing body tag.
	if strings.Index(body, LiveReloadPath) > strings.Index(body, "</body>") {
		t.Error("script should be injected before </body>")
	}
}

func TestServeWithoutInjection(t *testing.T) {
	s := newTestServer(t, false)

	rec := get(t, s, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if strings.Contains(rec.Body.String(), LiveReloadPath) {
		t.Error("reload script should not be injected when live reload is off")
	}
}

func TestServeDirectoryIndex(t *testing.T) {
	s := newTestServer(t, true)

	rec := get(t, s, "/docs")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "<h1>Home</h1>") {
		t.Error("directory request should serve its index.html")
	}
}

func TestServeCSS(t *testing.T) {
	s := newTestServer(t, true)

	rec := get(t, s, "/style.css")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Header().Get("Content-Type"), "text/css") {
		t.Errorf("Content-Type = %q, want text/css", rec.Header().Get("Content-Type"))
	}
	if strings.Contains(rec.Body.String(), "<script>") {
		t.Error("non-HTML responses should not be modified")
	}
}

func TestServeMissing(t *testing.T) {
	s := newTestServer(t, true)

	rec := get(t, s, "/missing.html")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestServeTraversalRejected(t *testing.T) {
	s := newTestServer(t, true)

	// Outside the served directory.
	secret := filepath.Join(filepath.Dir(s.dir), "secret.txt")
	if err := os.WriteFile(secret, []byte("secret"), 0644); err != nil {
		t.Fatal(err)
	}

	rec := get(t, s, "/%2e%2e/secret.txt")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "secret") {
		t.Error("traversal must not leak file contents")
	}
}

func TestRelPath(t *testing.T) {
	tests := []struct {
		urlPath string
		want    string
		ok      bool
	}{
		{"/", "", true},
		{"/index.html", "index.html", true},
		{"/docs/page.html", "docs/page.html", true},
		{"/../secret.txt", "", false},
		{"/a/../../b", "", false},
		{"/./index.html", "", false},
		{"//etc/passwd", "", false},
		{"/a\\b.html", "", false},
		{"/bad\x00name", "", false},
	}

	for _, tt := range tests {
		got, ok := relPath(tt.urlPath)
		if got != tt.want || ok != tt.ok {
			t.Errorf("relPath(%q) = (%q, %v), want (%q, %v)", tt.urlPath, got, ok, tt.want, tt.ok)
		}
	}
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t, true)

	rec := get(t, s, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("content type = %q, want %q", got, "application/json")
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body %q: %v", rec.Body.String(), err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want %q", body["status"], "ok")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, true)

	// Generate one request so counters exist.
	get(t, s, "/")

	rec := get(t, s, "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "htmlsmith_preview_requests_total") {
		t.Error("metrics output should contain the request counter")
	}
	if !strings.Contains(rec.Body.String(), "htmlsmith_preview_response_bytes_total") {
		t.Error("metrics output should contain the response byte counter")
	}
}

func TestHeadRequest(t *testing.T) {
	s := newTestServer(t, true)

	req := httptest.NewRequest(http.MethodHead, "/index.html", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("HEAD response should have no body, got %d bytes", rec.Body.Len())
	}
}

func TestHandleChangesRecordsMetrics(t *testing.T) {
	s := newTestServer(t, true)

	s.handleChanges([]Change{{Path: "style.css", Type: ChangeCSS}})
	s.handleChanges([]Change{{Path: "index.html", Type: ChangeMarkup}})

	families, err := s.metrics.Registry().Gather()
	if err != nil {
		t.Fatal(err)
	}

	names := make(map[string]bool)
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	if !names["htmlsmith_preview_reloads_sent_total"] {
		t.Error("expected reloads counter to be recorded")
	}
	if !names["htmlsmith_preview_watch_changes_total"] {
		t.Error("expected watch changes counter to be recorded")
	}
}
