package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "console/internal/config"
	router "console/internal/http"
	"console/internal/session"
	"console/internal/tripcater"
	"console/internal/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	env, err := intconfig.LoadEnv()
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger := utils.NewLogger(env.Log.Level, env.Log.Format)
	if env.Server.GinMode != "" {
		gin.SetMode(env.Server.GinMode)
	}

	if err := run(env, logger); err != nil {
		logger.Error("console stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// run serves until a signal arrives or the server fails. Deferred cleanup
// runs on every return path.
func run(env intconfig.Env, logger *slog.Logger) error {
	opts := session.Options{
		CookieName: env.Session.CookieName,
		TTL:        env.Session.TTL,
		Secure:     env.Session.Secure,
	}

	deps := router.Deps{
		Env:    env,
		API:    tripcater.NewClient(env.API.BaseURL, env.API.Timeout, logger),
		Logger: logger,
	}

	switch env.Session.Store {
	case intconfig.SessionStoreMySQL:
		db, err := intconfig.ConnectDB(env.Database)
		if err != nil {
			return fmt.Errorf("connect session database: %w", err)
		}
		defer intconfig.CloseDB()

		store := session.NewMySQLStore(db, opts)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = store.EnsureSchema(ctx)
		cancel()
		if err != nil {
			return fmt.Errorf("prepare session table: %w", err)
		}
		deps.Store = store
		deps.DBCheck = intconfig.EnsureDB
		go purgeSessions(store, env.Session.TTL, logger)
	default:
		deps.Store = session.NewCookieStore(env.Session.Secret, opts)
	}

	r, err := router.NewRouter(deps)
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	srv := &http.Server{
		Addr:              env.Server.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       env.Server.ReadTimeout,
		WriteTimeout:      env.Server.WriteTimeout,
		IdleTimeout:       env.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("console listening",
			slog.String("addr", env.Server.AppAddr),
			slog.String("backend", env.API.BaseURL),
			slog.String("session_store", env.Session.Store),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return fmt.Errorf("serve: %w", err)
	case <-quit:
	}

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), env.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// purgeSessions drops expired session rows in the background.
func purgeSessions(store *session.MySQLStore, ttl time.Duration, logger *slog.Logger) {
	every := ttl / 4
	if every < time.Minute {
		every = time.Minute
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		n, err := store.PurgeExpired(ctx)
		cancel()
		if err != nil {
			logger.Warn("session purge failed", slog.String("error", err.Error()))
			continue
		}
		if n > 0 {
			logger.Info("expired sessions purged", slog.Int64("rows", n))
		}
	}
}
