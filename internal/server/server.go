// Package server runs the live preview: it renders the store on every
// request, serves the static assets, and reloads connected browsers when
// the store document changes.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/exec"
	"runtime"
	"sync"
	"time"

	"github.com/conneroisu/storecraft/internal/config"
	"github.com/conneroisu/storecraft/internal/logging"
	"github.com/conneroisu/storecraft/internal/registry"
	"github.com/conneroisu/storecraft/internal/store"
	"github.com/conneroisu/storecraft/internal/validation"
	"github.com/conneroisu/storecraft/internal/watcher"
)

// PreviewServer serves the storefront preview with live reload.
type PreviewServer struct {
	config   *config.Config
	registry *registry.Registry
	logger   logging.Logger
	hub      *Hub

	httpServer  *http.Server
	serverMutex sync.RWMutex

	// site is the last store that loaded and validated. loadErr is the
	// error of the most recent failed reload, cleared on success.
	site      *store.Configuration
	loadErr   error
	siteMutex sync.RWMutex

	watcher      *watcher.FileWatcher
	shutdownOnce sync.Once
}

// New creates a preview server. The store is read by Reload or Start.
func New(cfg *config.Config, reg *registry.Registry, logger logging.Logger) *PreviewServer {
	if logger == nil {
		logger = logging.NopLogger{}
	}
	logger = logger.WithComponent("server")

	return &PreviewServer{
		config:   cfg,
		registry: reg,
		logger:   logger,
		hub:      NewHub(logger),
	}
}

// SetStore replaces the served configuration.
func (s *PreviewServer) SetStore(site *store.Configuration) {
	s.siteMutex.Lock()
	defer s.siteMutex.Unlock()

	s.site = site
	s.loadErr = nil
}

// Store returns the served configuration and the last reload error.
func (s *PreviewServer) Store() (*store.Configuration, error) {
	s.siteMutex.RLock()
	defer s.siteMutex.RUnlock()

	return s.site, s.loadErr
}

// Reload reads the store document again. On failure the previous store
// stays in service and browsers are told about the error.
func (s *PreviewServer) Reload(ctx context.Context) error {
	site, err := store.Load(s.config.Store.Path)
	if err != nil {
		s.siteMutex.Lock()
		s.loadErr = err
		s.siteMutex.Unlock()

		s.logger.Error(ctx, err, "Store reload failed", "path", s.config.Store.Path)
		s.hub.Broadcast(ctx, UpdateMessage{Type: MessageBuildError, Content: err.Error()})

		return err
	}

	s.SetStore(site)
	s.logger.Info(ctx, "Store loaded", "path", s.config.Store.Path, "name", site.Branding.Name)
	s.hub.Broadcast(ctx, UpdateMessage{Type: MessageReload})

	return nil
}

// Start loads the store, begins watching it and serves until ctx is done
// or the server is shut down.
func (s *PreviewServer) Start(ctx context.Context) error {
	if err := s.Reload(ctx); err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}

	if s.config.Development.HotReload {
		if err := s.setupFileWatcher(ctx); err != nil {
			s.logger.Warn(ctx, err, "Live reload disabled")
		}
	}

	addr := s.config.Address()
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		_ = s.Shutdown(context.WithoutCancel(ctx))
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s.serverMutex.Lock()
	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	server := s.httpServer
	s.serverMutex.Unlock()

	url := "http://" + listener.Addr().String()
	s.logger.Info(ctx, "Preview server listening", "url", url)
	if s.config.Server.Open {
		go s.openBrowser(ctx, url)
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.Shutdown(shutdownCtx)
	}()

	if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

func (s *PreviewServer) setupFileWatcher(ctx context.Context) error {
	fw, err := watcher.NewFileWatcher(watcher.DefaultDelay, s.logger)
	if err != nil {
		return err
	}

	fw.AddFilter(watcher.StoreFilter)
	fw.AddFilter(watcher.NoEditorTempFilter)
	fw.AddHandler(s.handleFileChange)

	if err := fw.WatchFile(s.config.Store.Path); err != nil {
		_ = fw.Stop()
		return err
	}
	if err := fw.Start(ctx); err != nil {
		_ = fw.Stop()
		return err
	}

	s.watcher = fw

	return nil
}

func (s *PreviewServer) handleFileChange(ctx context.Context, events []watcher.ChangeEvent) error {
	for _, e := range events {
		s.logger.Debug(ctx, "Store file changed", "path", e.Path, "type", e.Type.String())
	}

	return s.Reload(ctx)
}

func (s *PreviewServer) openBrowser(ctx context.Context, url string) {
	time.Sleep(100 * time.Millisecond) // Give server time to start

	// Validate URL for security before passing to system commands
	if err := validation.ValidateURL(url); err != nil {
		s.logger.Warn(ctx, err, "Browser open failed due to invalid URL")
		return
	}

	var err error
	switch runtime.GOOS {
	case "linux":
		err = exec.Command("xdg-open", url).Start()
	case "windows":
		err = exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	case "darwin":
		err = exec.Command("open", url).Start()
	default:
		err = fmt.Errorf("unsupported platform %s", runtime.GOOS)
	}

	if err != nil {
		s.logger.Warn(ctx, err, "Failed to open browser")
	}
}

// Shutdown gracefully shuts down the server and cleans up resources
func (s *PreviewServer) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.logger.Info(ctx, "Shutting down server")

		if s.watcher != nil {
			if err := s.watcher.Stop(); err != nil {
				s.logger.Warn(ctx, err, "Failed to stop watcher")
			}
		}

		s.hub.Close()

		s.serverMutex.RLock()
		server := s.httpServer
		s.serverMutex.RUnlock()

		if server != nil {
			shutdownErr = server.Shutdown(ctx)
		}
	})

	return shutdownErr
}
