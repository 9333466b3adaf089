package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/travel-tracker/cliparse"
	"github.com/danielhkuo/travel-tracker/db"
	"github.com/danielhkuo/travel-tracker/logging"
	"github.com/danielhkuo/travel-tracker/router"
	"github.com/danielhkuo/travel-tracker/session"
)

func main() {
	var err error

	// .env is optional; real environment variables win
	if err := cliparse.LoadEnv(); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}
	logging.Setup()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect and verify
	dbConn, err := db.Open(cfg)
	if err != nil {
		slog.Error("database connection failed", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn, cfg.DatabaseType); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	if cfg.SeedData {
		if err := db.Seed(dbConn, cfg.DatabaseType); err != nil {
			slog.Error("seeding failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Seed data ready", "countries", len(db.Countries))
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	sessions, closeSessions, err := newSessions(cfg)
	if err != nil {
		slog.Error("session store failed", "error", err)
		os.Exit(1)
	}
	defer closeSessions()

	// Create router
	mux, err := router.NewRouter(dbConn, cfg, sessions)
	if err != nil {
		slog.Error("router setup failed", "error", err)
		os.Exit(1)
	}

	// Create server
	server := http.Server{
		Handler:      mux,
		Addr:         ":" + strconv.Itoa(cfg.Port),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "sessions", cfg.SessionMode)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// newSessions builds the session manager for the configured mode. The
// returned func releases any backend connection.
func newSessions(cfg cliparse.Config) (session.Manager, func(), error) {
	if cfg.SessionMode == cliparse.SessionShared {
		slog.Warn("shared session mode: one current user for all clients")
		return session.NewShared(cfg.DefaultUserID), func() {}, nil
	}

	if cfg.RedisURL == "" {
		backend := session.NewMemoryBackend(session.DefaultTTL)
		return session.NewCookieManager(backend, cfg.SessionSecret, cfg.DefaultUserID, session.WithSecureCookie(cfg.SecureCookie)), func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	backend, err := session.NewRedisBackend(ctx, cfg.RedisURL, session.DefaultTTL)
	if err != nil {
		return nil, nil, err
	}
	slog.Info("Sessions stored in redis")

	m := session.NewCookieManager(backend, cfg.SessionSecret, cfg.DefaultUserID, session.WithSecureCookie(cfg.SecureCookie))
	return m, func() { backend.Close() }, nil
}
