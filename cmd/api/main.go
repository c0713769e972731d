package main

import (
	"errors"
	"log"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mahacyber/cyber-suraksha/internal/directory"
	"github.com/mahacyber/cyber-suraksha/internal/evidence"
	"github.com/mahacyber/cyber-suraksha/internal/genai"
	"github.com/mahacyber/cyber-suraksha/internal/pipeline"
	"github.com/mahacyber/cyber-suraksha/internal/report"
	"github.com/mahacyber/cyber-suraksha/internal/routing"
	"github.com/mahacyber/cyber-suraksha/internal/triage"
	"github.com/mahacyber/cyber-suraksha/pkg/common"
	"github.com/mahacyber/cyber-suraksha/pkg/config"
	"github.com/mahacyber/cyber-suraksha/pkg/logger"
	"github.com/mahacyber/cyber-suraksha/pkg/middleware"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load("cyber-suraksha")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Server.Environment); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Reference data and generation oracle
	dir := directory.NewRepository()
	oracle := genai.NewClient(cfg.Gemini)
	if !oracle.Configured() {
		logger.Warn("GOOGLE_API_KEY not set; classification and drafting will use fallbacks")
	}

	// Stage services and orchestrator
	triageService := triage.NewService(oracle, dir)
	evidenceService := evidence.NewService(dir)
	routingService := routing.NewService(dir)
	reportService := report.NewService(oracle)
	pipelineService := pipeline.NewService(triageService, evidenceService, routingService, reportService)
	handler := pipeline.NewHandler(pipelineService, triageService, dir)

	// Set up Gin router
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.CorrelationID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())
	router.Use(middleware.Metrics(cfg.Server.ServiceName))
	router.Use(middleware.SecurityHeaders())

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(cfg.Server.CORSOrigins, ",")
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", middleware.CorrelationIDHeader}
	router.Use(cors.New(corsConfig))

	// Health check and metrics (no auth required)
	router.GET("/healthz", common.HealthCheckWithDeps(cfg.Server.ServiceName, version, map[string]func() error{
		"genai": func() error {
			if !oracle.Configured() {
				return errors.New("API key not configured")
			}
			return nil
		},
	}))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/reports", handler.SubmitReport)
		api.POST("/triage", handler.Triage)
		api.POST("/suspects/check", handler.CheckSuspect)
		api.GET("/officers", handler.GetOfficers)
		api.GET("/banks", handler.GetBanks)
		api.GET("/scam-types", handler.GetScamTypes)
	}

	// Start server
	logger.Info("Cyber-Suraksha API starting on port " + cfg.Server.Port)
	if err := router.Run(cfg.Server.Addr()); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
