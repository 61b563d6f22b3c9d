package main

import (
	"context"
	"errors"
	"log"
	"os"

	"pos-console/internal/backend"
	"pos-console/internal/config"
	"pos-console/internal/domain"
	"pos-console/internal/seed"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC)

	username := os.Getenv("SEED_USERNAME")
	password := os.Getenv("SEED_PASSWORD")
	if username == "" || password == "" {
		logger.Fatalf("SEED_USERNAME and SEED_PASSWORD must be set")
	}

	ctx := context.Background()
	client := backend.New(cfg.BackendBaseURL, cfg.BackendTimeout, logger)

	res, err := client.Login(ctx, username, password)
	if errors.Is(err, domain.ErrUnauthorized) {
		logger.Printf("login failed, registering %s", username)
		res, err = client.Register(ctx, username, password)
	}
	if err != nil {
		logger.Fatalf("authenticate against %s: %v", cfg.BackendBaseURL, err)
	}

	if err := seed.Apply(ctx, client, res.Token); err != nil {
		logger.Fatalf("seed: %v", err)
	}
	logger.Printf("seed data created at %s", cfg.BackendBaseURL)
}
