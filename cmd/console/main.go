package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"pos-console/internal/backend"
	"pos-console/internal/composer"
	"pos-console/internal/config"
	"pos-console/internal/httpserver"
	"pos-console/internal/session"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[console] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	var sessions session.Store
	if cfg.RedisAddr != "" {
		rdb, err := session.Connect(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Fatalf("connect to redis: %v", err)
		}
		defer rdb.Close()
		sessions = session.NewRedis(rdb, cfg.SessionTTL)
		logger.Printf("sessions stored in redis at %s", cfg.RedisAddr)
	} else {
		sessions = session.NewMemory()
		logger.Printf("REDIS_ADDR not set, sessions stored in memory")
	}

	client := backend.New(cfg.BackendBaseURL, cfg.BackendTimeout, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Backend:     client,
		Sessions:    sessions,
		Carts:       composer.NewRegistry(),
		CORSOrigins: cfg.CORSOrigins,
		StockAdjust: cfg.StockAdjust,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s, data service at %s", cfg.HTTPAddr, cfg.BackendBaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
