package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmxvidhya/Multi-agent-Tourism-System/internal/config"
	"github.com/rmxvidhya/Multi-agent-Tourism-System/internal/llm"
	"github.com/rmxvidhya/Multi-agent-Tourism-System/internal/orchestrator"
)

// App encapsulates application dependencies
type App struct {
	router       *gin.Engine
	logger       *slog.Logger
	orchestrator orchestrator.Service
	cfg          *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Convert panics into the generic failure response
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic while handling request", "error", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": fmt.Sprintf("An error occurred: %v", recovered),
		})
	}))

	// Initialize the shared completion-service client
	llmClient, err := llm.NewOpenAIClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
	if err != nil {
		return nil, err
	}

	app := &App{
		router:       router,
		logger:       logger,
		orchestrator: orchestrator.NewService(llmClient, cfg.Places.RadiusMeters, logger),
		cfg:          cfg,
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
