package main

import (
	"fmt"
	"log/slog"

	"github.com/ideaforge/forge-api/internal/api"
	"github.com/ideaforge/forge-api/internal/config"
	"github.com/ideaforge/forge-api/internal/forge"
	"github.com/ideaforge/forge-api/internal/platform/gemini"
	"github.com/ideaforge/forge-api/internal/platform/logger"
)

// application holds the initialized dependencies for the server.
type application struct {
	config       *config.Config
	logger       *slog.Logger
	forgeHandler *api.ForgeHandler
}

// initializeApp loads configuration, sets up logging, and wires the
// session store, generation client, service, and handlers.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName,
		"max_attempts", cfg.LLM.MaxAttempts)

	// A missing credential is reported per generation call, but worth a
	// startup warning so the operator sees it before the first user does.
	if cfg.LLM.GeminiAPIKey == "" {
		appLogger.Warn("no Gemini API key configured; generation calls will fail until FORGE_LLM_GEMINI_API_KEY is set")
	}

	generator, err := gemini.NewClient(appLogger, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation client: %w", err)
	}

	forgeService, err := forge.NewService(forge.NewStore(), generator, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create forge service: %w", err)
	}

	forgeHandler, err := api.NewForgeHandler(forgeService, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create forge handler: %w", err)
	}

	return &application{
		config:       cfg,
		logger:       appLogger,
		forgeHandler: forgeHandler,
	}, nil
}

// run starts the HTTP server and blocks until shutdown.
func (app *application) run() error {
	return app.startHTTPServer(app.setupRouter())
}
