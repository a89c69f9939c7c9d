// Package preview provides a local HTTP server for browsing rendered pages.
//
// The server serves a directory of generated markup, watches it for changes,
// and pushes reload notifications to connected browsers over WebSocket. A
// small client script is injected into served HTML pages to receive them.
//
// The server also exposes /healthz for liveness checks and /metrics in
// Prometheus format.
//
// # Usage
//
//	srv := preview.NewServer(preview.Options{
//	    Config: cfg,
//	    Logger: slog.Default(),
//	})
//	if err := srv.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
package preview
