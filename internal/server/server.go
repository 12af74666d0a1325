package server

import (
	"captive-portal/internal/config"
	"captive-portal/internal/metrics"
	"captive-portal/internal/middlewares"
	"captive-portal/internal/storage"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	versioncollector "github.com/prometheus/client_golang/prometheus/collectors/version"
)

const (
	readHeaderTimeout = 10 * time.Second
	idleTimeout       = 120 * time.Second
	shutdownTimeout   = 30 * time.Second
)

type Server struct {
	cfg         *config.Config
	logger      *slog.Logger
	logCloser   io.Closer
	appCtx      *middlewares.AppContext
	httpServer  *http.Server
	debugServer *http.Server
	ctx         context.Context
	cancel      context.CancelFunc
}

func New(cfg *config.Config) (*Server, error) {
	logger, logCloser, err := setupLogger(cfg)
	if err != nil {
		return nil, err
	}

	instanceID := os.Getenv("HOSTNAME")
	if instanceID == "" {
		instanceID = uuid.New().String()
	}
	logger = logger.With("instance", instanceID)

	ctx, cancel := context.WithCancel(context.Background())

	store, err := setupStorage(cfg, logger)
	if err != nil {
		cancel()
		_ = logCloser.Close()
		return nil, err
	}

	appCtx := middlewares.NewAppContext(ctx, cfg, logger, store)

	router := setupRouter(appCtx)
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
	}

	var debugServer *http.Server
	if cfg.Server.Debug.Enabled {
		if err := prometheus.Register(versioncollector.NewCollector(metrics.Namespace)); err != nil {
			logger.Debug("failed to register build info collector: already registered", "error", err)
		}

		debugServer = &http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.Server.Debug.Host, cfg.Server.Debug.Port),
			Handler:           setupDebugRouter(),
			ReadHeaderTimeout: readHeaderTimeout,
		}
	}

	return &Server{
		cfg:         cfg,
		logger:      logger,
		logCloser:   logCloser,
		appCtx:      appCtx,
		httpServer:  server,
		debugServer: debugServer,
		ctx:         ctx,
		cancel:      cancel,
	}, nil
}

// setupStorage prepares the storage directory and reports on an existing
// submissions file. A file with an unexpected header is used as is.
func setupStorage(cfg *config.Config, logger *slog.Logger) (*storage.CSVStore, error) {
	if err := storage.EnsureDirectory(cfg.Storage.Directory); err != nil {
		return nil, err
	}

	store := storage.NewCSVStore()
	path := cfg.Storage.Path()

	status, err := store.InspectHeader(path)
	switch {
	case err != nil:
		logger.Warn("failed to inspect submissions file", "path", path, "error", err)
	case status == storage.HeaderMismatch:
		logger.Warn("submissions file has an unexpected header, appending anyway", "path", path)
	default:
		logger.Debug("submissions file inspected", "path", path, "header", status.String())
	}

	return store, nil
}

// Handler exposes the portal router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Start() error {
	defer s.logCloser.Close()

	go func() {
		s.logger.Info("Captive portal listening",
			"port", s.cfg.Server.Port,
			"redirect_url", s.cfg.Portal.RedirectURL,
			"submissions", s.cfg.Storage.Path(),
		)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server failed to start", "error", err)
			s.cancel()
		}
	}()

	if s.debugServer != nil {
		go func() {
			s.logger.Info("Metrics server starting", "address", s.debugServer.Addr)
			if err := s.debugServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error("Metrics server failed to start", "error", err)
				s.cancel()
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
		s.logger.Info("Shutdown signal received")
	case <-s.ctx.Done():
		s.logger.Info("Context canceled")
	}

	return s.Shutdown()
}

// Shutdown stops both listeners, waiting up to shutdownTimeout for in-flight
// submissions to finish.
func (s *Server) Shutdown() error {
	defer s.cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	s.logger.Info("Shutting Down Server")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("Server forced to shutdown", "error", err)
		return err
	}

	if s.debugServer != nil {
		if err := s.debugServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Debug server forced to shutdown", "error", err)
		}
	}

	s.logger.Info("Server Exited")
	return nil
}
