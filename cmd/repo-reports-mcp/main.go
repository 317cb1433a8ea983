// Package main provides the entry point for the repo-reports MCP server.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/grubhold/repo-reports-mcp/internal/config"
	"github.com/grubhold/repo-reports-mcp/internal/github"
	"github.com/grubhold/repo-reports-mcp/internal/server"
	"github.com/grubhold/repo-reports-mcp/internal/store"
	"github.com/grubhold/repo-reports-mcp/internal/tools"
)

const version = "0.1.0"

func main() {
	// Load configuration
	cfg := config.Load()

	// Setup logger (dual output: stderr text + file JSON)
	logger, cleanup := config.SetupLogger(cfg.LogFile, cfg.LogLevel)
	defer cleanup()

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Log startup info
	logger.Info("repo-reports-mcp starting",
		"version", version,
		"repo", cfg.RepoOwner+"/"+cfg.RepoName,
		"branch", cfg.Branch,
		"root_path", cfg.RootPath,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Build the GitHub-backed report store
	ghClient := github.NewClient(github.Config{
		APIURL: cfg.GitHubAPIURL,
		Token:  cfg.GitHubToken,
		Owner:  cfg.RepoOwner,
		Repo:   cfg.RepoName,
		Branch: cfg.Branch,
	}, logger)
	reportStore := store.New(ghClient, cfg.RootPath, cfg.StatusPath(), logger)

	// Create and setup server
	srv := server.New(version, logger)
	srv.Setup()

	// Register tools
	deps := &tools.Dependencies{
		Store:  reportStore,
		Logger: logger,
	}
	tools.RegisterAll(srv.MCPServer(), deps)
	logger.Info("tools registered", "count", 6)

	// Log ready state
	logger.Info("server ready, awaiting connections")

	// Run server (blocks until disconnect or context cancelled)
	if err := srv.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	logger.Info("shutdown complete")
}
