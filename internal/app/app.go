// Package app initializes and orchestrates the main components of the code
// review service. It wires together the configuration, reviewer and server.
package app

import (
	"log/slog"

	"github.com/sevigo/code-critic/internal/config"
	"github.com/sevigo/code-critic/internal/core"
	"github.com/sevigo/code-critic/internal/server"
)

// App holds the main application components.
type App struct {
	Cfg      *config.Config
	Reviewer core.Reviewer
	Logger   *slog.Logger

	server *server.Server
}

// NewApp assembles the application from its dependencies.
func NewApp(cfg *config.Config, reviewer core.Reviewer, srv *server.Server, logger *slog.Logger) *App {
	logger.Info("code review service initialized",
		"llm_provider", cfg.AI.LLMProvider,
		"generator_model", cfg.AI.GeneratorModel,
		"request_timeout", cfg.Server.RequestTimeout,
	)
	return &App{
		Cfg:      cfg,
		Reviewer: reviewer,
		Logger:   logger,
		server:   srv,
	}
}

// Start runs the HTTP server and blocks until it stops.
func (a *App) Start() error {
	a.Logger.Info("starting code review service", "server_port", a.Cfg.Server.Port)

	if err := a.server.Start(); err != nil {
		a.Logger.Error("failed to start HTTP server", "error", err)
		return err
	}
	return nil
}

// Stop shuts down the application cleanly, letting in-flight reviews finish.
func (a *App) Stop() error {
	a.Logger.Info("shutting down code review service")

	if err := a.server.Stop(); err != nil {
		a.Logger.Error("error during HTTP server shutdown", "error", err)
		return err
	}

	a.Logger.Info("code review service stopped successfully")
	return nil
}
