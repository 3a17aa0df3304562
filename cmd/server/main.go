package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chatboard/auth"
	"chatboard/handlers"
	"chatboard/internal"
	"chatboard/services"
	"chatboard/store"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

// Exit codes to provide meaningful status to the operating system or
// service manager.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// main only maps run() onto an OS exit code, so deferred cleanup
	// inside run() always executes.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	// 1. Configuration & logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Normalize(); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := internal.GetLoggerFromString(config.LogLevel)

	// 2. Document store
	var docStore store.DocumentStore
	switch config.StoreBackend {
	case internal.BackendBadger:
		db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
			WithLoggingLevel(badger.WARNING))
		if err != nil {
			return exitRuntime, fmt.Errorf("database opening failed: %w", err)
		}
		defer func() {
			logger.Info("Closing BadgerDB...")
			_ = db.Close()
		}()
		docStore = store.NewBadgerStore(db, logger)
	case internal.BackendFile:
		docStore = store.NewFileStore(config.DataFilepath, logger)
	}

	// All mutating cycles serialize through the gate; the document is the
	// only shared mutable resource.
	gate := store.NewGate(docStore)

	// 3. Services & HTTP surface
	issuer := auth.NewTokenIssuer(config.AuthSecret, config.AuthTokenDuration)
	handler := handlers.New(
		services.NewUserService(gate, config.DefaultAvatarURL, logger),
		services.NewChannelService(gate, logger),
		services.NewMessageService(gate, config.MaxContentLength, logger),
		issuer,
		config.RequireAuth,
		logger,
	)

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   config.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	addr := fmt.Sprintf("%s:%d", config.Host, config.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsMiddleware.Handler(handler.Router()),
		IdleTimeout:  120 * time.Second,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "addr", addr, "backend", config.StoreBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	// 4. Lifecycle: block until a signal or a listener failure.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return exitRuntime, fmt.Errorf("listen failed: %w", err)
	case sig := <-sigChan:
		logger.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return exitRuntime, fmt.Errorf("forced shutdown: %w", err)
	}

	logger.Info("Server exited gracefully")
	return exitOK, nil
}
