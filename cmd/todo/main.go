package main

import (
	"context"
	"fmt"
	"os"

	"todo-backend/internal/api"
	"todo-backend/internal/auth"
	"todo-backend/internal/cli"
	"todo-backend/internal/config"
	"todo-backend/internal/ratelimit"
)

func main() {
	cfg := config.NewConfig()
	if err := cfg.LoadFromEnvironment(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Create repository based on environment
	factory := NewRepositoryFactory(GetEnvironment(), cfg)
	repo, err := factory.CreateRepository()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating repository: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	limiter := ratelimit.NewTokenBucket(cfg.RateLimitPolicies())
	apiInstance := api.New(repo, auth.ContextResolver{}, limiter, cfg)

	app := cli.NewApp(apiInstance, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Application.Timeout)
	defer cancel()

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
