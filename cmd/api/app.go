package main

import (
	"context"
	"log/slog"

	"github.com/AjayAntoIsDev/SafeRoute/internal/assessment"
	"github.com/AjayAntoIsDev/SafeRoute/internal/config"
	"github.com/AjayAntoIsDev/SafeRoute/internal/observability"
	"github.com/AjayAntoIsDev/SafeRoute/internal/types"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Assessor runs a disaster risk assessment for a coordinate
type Assessor interface {
	Assess(ctx context.Context, coords types.Coords) (*types.Prediction, error)
}

// App encapsulates application dependencies
type App struct {
	router      *gin.Engine
	logger      *slog.Logger
	assessments Assessor
	gatherer    prometheus.Gatherer
	cfg         *config.Config
}

// NewApp creates a new application with the real upstream clients
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := observability.NewMetrics(registry)

	svc, err := assessment.NewServiceFromConfig(cfg, metrics, logger)
	if err != nil {
		return nil, err
	}

	return newApp(cfg, logger, svc, registry), nil
}

// newApp wires the router around an existing assessor
func newApp(cfg *config.Config, logger *slog.Logger, assessments Assessor, gatherer prometheus.Gatherer) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", requestIDHeader},
		ExposeHeaders: []string{"Content-Length", requestIDHeader, analysisSourceHeader},
	}))
	router.Use(requestID(logger))

	app := &App{
		router:      router,
		logger:      logger,
		assessments: assessments,
		gatherer:    gatherer,
		cfg:         cfg,
	}

	// Register routes
	app.registerRoutes()

	return app
}
