// cmd/serve.go
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Bitlatte/auraspaces/internal/config"
	"github.com/Bitlatte/auraspaces/internal/server"
)

const (
	rebuildDebounce = 500 * time.Millisecond
	shutdownTimeout = 5 * time.Second
)

var serverPort int // For the --port flag

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Builds the site, serves it locally and rebuilds on content changes",
	Long: `The serve command performs an initial build, then serves the output
directory: "/", "/interior-design/{city}", "/sitemap.xml" and "/static/...".
Unknown routes receive the not-found page with status 404. Request counts are
exposed on "/metrics". When a content directory is configured it is watched
and the site is rebuilt after changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := runBuildProcess(appConfig, logger); err != nil {
			return fmt.Errorf("initial build failed: %w", err)
		}

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", serverPort),
			Handler:           server.New(appConfig.OutputDir, logger),
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		g, ctx := errgroup.WithContext(cmd.Context())

		g.Go(func() error {
			logger.Info("serving site", "output_dir", appConfig.OutputDir, "addr", "http://localhost"+srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("failed to start HTTP server: %w", err)
			}
			return nil
		})

		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("graceful shutdown failed: %w", err)
			}
			logger.Info("server stopped")
			return nil
		})

		if appConfig.ContentDir != "" {
			g.Go(func() error {
				return watchContent(ctx, appConfig, logger)
			})
		}

		return g.Wait()
	},
}

// watchContent rebuilds the site whenever something under the content
// directory changes. Bursts of events are debounced into one rebuild.
func watchContent(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// fsnotify is not recursive, so every directory is added on its own.
	err = filepath.WalkDir(cfg.ContentDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if watchErr := watcher.Add(path); watchErr != nil {
				return fmt.Errorf("failed to watch %s: %w", path, watchErr)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	logger.Info("watching content for changes", "content_dir", cfg.ContentDir)

	rebuilds := newDebouncer(rebuildDebounce, func() {
		logger.Info("rebuilding site due to changes")
		if _, err := runBuildProcess(cfg, logger); err != nil {
			logger.Error("rebuild failed", "error", err)
		}
	})
	defer rebuilds.stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("change detected", "path", event.Name, "op", event.Op.String())

			if event.Has(fsnotify.Create) && isDir(event.Name) {
				if err := watcher.Add(event.Name); err != nil {
					logger.Warn("failed to watch new directory", "path", event.Name, "error", err)
				}
			}

			rebuilds.trigger()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)
		}
	}
}

// debouncer runs fn once after a quiet period of delay following the last
// trigger. Runs never overlap.
type debouncer struct {
	delay time.Duration
	fn    func()

	mu      sync.Mutex // held for the whole of a run
	timerMu sync.Mutex
	timer   *time.Timer
	stopped bool
}

func newDebouncer(delay time.Duration, fn func()) *debouncer {
	return &debouncer{delay: delay, fn: fn}
}

func (d *debouncer) trigger() {
	d.timerMu.Lock()
	defer d.timerMu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.run)
}

func (d *debouncer) run() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.fn()
}

// stop cancels any pending run and waits for a run already in progress, so
// no run starts or is still writing once it returns.
func (d *debouncer) stop() {
	d.timerMu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timerMu.Unlock()

	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()
}

// Helper function to check if a path is a directory
func isDir(path string) bool {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fileInfo.IsDir()
}

func init() {
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 1313, "Port to serve the site on")
	rootCmd.AddCommand(serveCmd)
}
