package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/htmlsmith-dev/htmlsmith/internal/config"
	"github.com/htmlsmith-dev/htmlsmith/internal/preview"
)

func serveCmd() *cobra.Command {
	var (
		port        int
		host        string
		noReload    bool
		openBrowser bool
	)

	cmd := &cobra.Command{
		Use:   "serve [dir]",
		Short: "Preview rendered pages with live reload",
		Long: `Serve the output directory over HTTP.

The server watches the directory and reloads connected browsers when
files change. Stylesheets are swapped in place without a full reload.
An explicit directory argument overrides the configured one.

Endpoints:
  /healthz   liveness check
  /metrics   Prometheus metrics

Examples:
  htmlsmith serve
  htmlsmith serve build --port 9000
  htmlsmith serve --host 0.0.0.0 --no-reload`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) > 0 {
				dir = args[0]
			}
			return runServe(dir, port, host, noReload, openBrowser)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from htmlsmith.yaml)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from htmlsmith.yaml)")
	cmd.Flags().BoolVar(&noReload, "no-reload", false, "Disable live reload")
	cmd.Flags().BoolVarP(&openBrowser, "open", "o", false, "Open browser on start")

	return cmd
}

func runServe(dir string, port int, host string, noReload, openBrowser bool) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	if dir != "" {
		// Resolve against the invocation directory, not the config directory.
		if !filepath.IsAbs(dir) {
			if abs, err := filepath.Abs(dir); err == nil {
				dir = abs
			}
		}
		cfg.Serve.Dir = dir
		cfg.Serve.Watch = []string{dir}
	}
	if port > 0 {
		cfg.Serve.Port = port
	}
	if host != "" {
		cfg.Serve.Host = host
	}
	if noReload {
		cfg.Serve.LiveReload = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	printBanner()
	fmt.Println("  serve")
	fmt.Println()

	server := preview.NewServer(preview.Options{
		Config: cfg,
		Logger: slog.Default(),
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println("\n\n  Shutting down...")
		cancel()
		server.Stop()
	}()

	if openBrowser {
		go func() {
			time.Sleep(300 * time.Millisecond)
			openURL(cfg.ServeURL())
		}()
	}

	info("Serving %s at %s", cfg.ServePath(), cfg.ServeURL())
	return server.Start(ctx)
}

// openURL opens a URL in the default browser.
func openURL(url string) {
	var cmd *exec.Cmd

	switch {
	case commandExists("xdg-open"):
		cmd = exec.Command("xdg-open", url)
	case commandExists("open"):
		cmd = exec.Command("open", url)
	case commandExists("start"):
		cmd = exec.Command("cmd", "/c", "start", url)
	default:
		return
	}

	cmd.Start()
}

// commandExists checks if a command exists in PATH.
func commandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
