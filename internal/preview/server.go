package preview

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/htmlsmith-dev/htmlsmith/internal/config"
)

// Options configures the preview server.
type Options struct {
	// Config is the project configuration.
	Config *config.Config

	// Logger receives server logs. Defaults to slog.Default().
	Logger *slog.Logger
}

// Server serves a directory of rendered pages with live reload.
type Server struct {
	cfg        *config.Config
	log        *slog.Logger
	dir        string
	reload     *ReloadServer
	watcher    *Watcher
	metrics    *Metrics
	changeCh   chan Change
	httpServer *http.Server
	mu         sync.Mutex
	running    bool
}

// NewServer creates a new preview server.
func NewServer(opts Options) *Server {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var reload *ReloadServer
	clientCount := func() int { return 0 }
	if cfg.Serve.LiveReload {
		reload = NewReloadServer()
		clientCount = reload.ClientCount
	}

	watcher := NewWatcher(WatcherConfig{
		Paths: cfg.WatchPaths(),
	})

	return &Server{
		cfg:     cfg,
		log:     logger,
		dir:     cfg.ServePath(),
		reload:  reload,
		watcher: watcher,
		metrics: NewMetrics(clientCount),
	}
}

// Handler returns the HTTP handler for the preview server.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	// The WebSocket route stays outside the instrumented group: the metrics
	// and tracing wrappers hide http.Hijacker from the upgrader.
	if s.reload != nil {
		r.Get(LiveReloadPath, s.reload.HandleWebSocket)
	}

	r.Group(func(r chi.Router) {
		r.Use(s.logRequests)
		r.Use(s.metrics.Middleware)
		r.Use(Tracing())

		r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
		})
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{}))

		r.Get("/*", s.servePage)
		r.Head("/*", s.servePage)
	})

	return r
}

// Start runs the preview server until the context is cancelled.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.mu.Unlock()

	s.changeCh = make(chan Change, 64)
	s.watcher.OnChange(func(change Change) {
		select {
		case s.changeCh <- change:
		default:
		}
	})

	go s.watcher.Start(ctx)
	go s.processChanges(ctx)

	s.httpServer = &http.Server{
		Addr:    s.cfg.ServeAddress(),
		Handler: s.Handler(),
	}

	s.log.Info("preview server running", "url", s.cfg.ServeURL(), "dir", s.dir)

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.Stop()
		return nil
	case err := <-errCh:
		s.Stop()
		return err
	}
}

// Stop stops the preview server.
func (s *Server) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false

	s.watcher.Stop()
	if s.reload != nil {
		s.reload.Close()
	}
	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.httpServer.Shutdown(ctx)
	}
}

// processChanges serializes file change handling and coalesces bursts.
func (s *Server) processChanges(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case change := <-s.changeCh:
			changes := []Change{change}
			draining := true
			for draining {
				select {
				case next := <-s.changeCh:
					changes = append(changes, next)
				default:
					draining = false
				}
			}
			s.handleChanges(changes)
		}
	}
}

// handleChanges notifies browsers about a batch of file changes. A batch
// that only touched stylesheets swaps CSS in place; anything else reloads
// the page.
func (s *Server) handleChanges(changes []Change) {
	if len(changes) == 0 {
		return
	}

	cssOnly := true
	var cssPath string
	for _, change := range changes {
		s.metrics.RecordChange(change.Type)
		s.log.Debug("file changed", "path", change.Path)
		if change.Type == ChangeCSS {
			if cssPath == "" {
				cssPath = change.Path
			}
		} else {
			cssOnly = false
		}
	}

	if s.reload == nil {
		return
	}

	if cssOnly && cssPath != "" {
		s.reload.NotifyCSS(filepath.Base(cssPath))
		s.metrics.RecordReload(ReloadTypeCSS)
		s.log.Info("stylesheets reloaded", "browsers", s.reload.ClientCount())
		return
	}

	s.reload.NotifyReload()
	s.metrics.RecordReload(ReloadTypeFull)
	s.log.Info("browsers reloaded", "count", s.reload.ClientCount())
}

// logRequests logs completed requests at debug level.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		s.log.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.Status(),
			"duration", time.Since(start),
		)
	})
}

// servePage serves one file from the preview directory. Directory requests
// fall through to their index.html.
func (s *Server) servePage(w http.ResponseWriter, r *http.Request) {
	rel, ok := relPath(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	full := filepath.Join(s.dir, filepath.FromSlash(rel))
	info, err := os.Stat(full)
	if err == nil && info.IsDir() {
		full = filepath.Join(full, "index.html")
		info, err = os.Stat(full)
	}
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}

	if s.reload != nil && isHTMLPath(full) {
		s.serveInjected(w, r, full, info.ModTime())
		return
	}

	f, err := os.Open(full)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	http.ServeContent(w, r, full, info.ModTime(), f)
}

// serveInjected serves an HTML file with the live reload client script
// injected before the closing body tag.
func (s *Server) serveInjected(w http.ResponseWriter, r *http.Request, full string, modTime time.Time) {
	body, err := os.ReadFile(full)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	page := string(body)
	if idx := strings.LastIndex(page, "</body>"); idx != -1 {
		page = page[:idx] + ClientScript + page[idx:]
	} else if idx := strings.LastIndex(page, "</html>"); idx != -1 {
		page = page[:idx] + ClientScript + page[idx:]
	} else {
		page += ClientScript
	}

	http.ServeContent(w, r, full, modTime, strings.NewReader(page))
}

// relPath returns a sanitized path relative to the served directory for a
// request path. It rejects traversal and absolute-path tricks so serving
// cannot escape the directory. The empty result with ok=true means the
// directory root.
func relPath(urlPath string) (rel string, ok bool) {
	rel = strings.TrimPrefix(urlPath, "/")
	if rel == "" {
		return "", true
	}

	// Reject NUL early (can appear via %00).
	if strings.IndexByte(rel, 0) != -1 {
		return "", false
	}

	// Reject platform-dependent separators.
	if strings.Contains(rel, "\\") {
		return "", false
	}

	// A second leading "/" indicates an absolute-path attempt
	// (e.g. "//etc/passwd").
	if strings.HasPrefix(rel, "/") {
		return "", false
	}

	// Reject dot-segments before cleaning so traversal attempts are refused
	// rather than cleaned into a different request.
	for _, seg := range strings.Split(rel, "/") {
		if seg == "." || seg == ".." {
			return "", false
		}
	}

	clean := path.Clean(rel)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") || strings.HasPrefix(clean, "/") {
		return "", false
	}

	// Reject OS-absolute and volume paths after slash conversion.
	osPath := filepath.FromSlash(clean)
	if filepath.IsAbs(osPath) || filepath.VolumeName(osPath) != "" {
		return "", false
	}

	return clean, true
}

func isHTMLPath(p string) bool {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".html", ".htm":
		return true
	}
	return false
}
