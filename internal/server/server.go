// Package server boots the full HTTP stack: config, database, cache,
// storage, middleware, routes and graceful shutdown.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/atelierhq/atelier/app/routes"
	"github.com/atelierhq/atelier/config"
	"github.com/atelierhq/atelier/pkg/cache"
	"github.com/atelierhq/atelier/pkg/database"
	"github.com/atelierhq/atelier/pkg/logger"
	"github.com/atelierhq/atelier/pkg/metrics"
	"github.com/atelierhq/atelier/pkg/middleware"
	"github.com/atelierhq/atelier/pkg/reqid"
	"github.com/atelierhq/atelier/pkg/router"
	"github.com/atelierhq/atelier/pkg/session"
	"github.com/atelierhq/atelier/pkg/storage"
)

// NewRouter builds the application router with the full middleware stack.
// Split out from Start so tests can drive the whole stack through httptest.
func NewRouter() *router.Router {
	r := router.New()

	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		session.Middleware(session.DefaultOptions()),
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(300, time.Minute),
	)

	r.Get("/metrics", "metrics", metrics.Handler())

	// Uploaded images are served straight off the local disk.
	uploads := http.StripPrefix(config.UploadsURL()+"/",
		http.FileServer(http.Dir(config.UploadsDir())))
	r.Mount(config.UploadsURL(), uploads)

	routes.RegisterWeb(r)
	routes.RegisterAPI(r)

	return r
}

// Start boots every subsystem and serves HTTP until SIGINT/SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	if err := database.Connect(); err != nil {
		return err
	}
	if err := cache.Connect(); err != nil {
		// Redis is optional; sessions and caching degrade to no-ops.
		logger.Warn("server: redis unavailable", "error", err)
	}
	storage.Connect()

	r := NewRouter()

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server: listening", "addr", srv.Addr, "env", config.AppEnv())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("server: shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
