package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/johnquangdev/transcript-insight/pkg/validator"

	"github.com/johnquangdev/transcript-insight/internal/adapter/handler"
	"github.com/johnquangdev/transcript-insight/internal/adapter/repository"
	"github.com/johnquangdev/transcript-insight/internal/infrastructure/database"
	"github.com/johnquangdev/transcript-insight/internal/infrastructure/storage"
	"github.com/johnquangdev/transcript-insight/internal/usecase/extraction"
	"github.com/johnquangdev/transcript-insight/internal/usecase/ingestion"
	pkgai "github.com/johnquangdev/transcript-insight/pkg/ai"
	"github.com/johnquangdev/transcript-insight/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize Neo4j
	log.Println("📦 Connecting to Neo4j...")
	db, err := database.NewNeo4jDB(&cfg.Neo4j)
	if err != nil {
		log.Fatalf("Failed to connect to Neo4j: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Close(ctx); err != nil {
			logger.Warn("neo4j.close.failed", zap.Error(err))
		}
	}()

	// Provision constraints and indexes. Statement failures are warnings;
	// the service still starts against a partially provisioned database.
	log.Println("🔄 Ensuring Neo4j schema...")
	schemaCtx, schemaCancel := context.WithTimeout(context.Background(), 30*time.Second)
	schemaResult, err := db.EnsureSchema(schemaCtx)
	schemaCancel()
	if err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}
	for _, warning := range schemaResult.Warnings {
		logger.Warn("neo4j.schema.warning", zap.String("statement", warning))
	}
	log.Printf("✅ Schema ready (%d statements applied, %d warnings)", schemaResult.Applied, len(schemaResult.Warnings))

	// Initialize upload storage
	log.Printf("📁 Initializing %s upload storage...", cfg.Storage.Type)
	var uploads storage.UploadStore
	switch cfg.Storage.Type {
	case "minio":
		uploads, err = storage.NewMinIOStore(&cfg.Storage)
	default:
		uploads, err = storage.NewLocalStore(cfg.Storage.UploadDir)
	}
	if err != nil {
		log.Fatalf("Failed to initialize upload storage: %v", err)
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	transcriptRepo := repository.NewTranscriptRepository(db, logger)

	// Initialize AI components
	log.Println("🤖 Initializing AI components...")
	claudeClient := pkgai.NewClaudeClient(&cfg.Claude)
	extractionService := extraction.NewService(claudeClient, logger)

	// Initialize ingestion service
	log.Println("✨ Initializing ingestion service...")
	ingestionService := ingestion.NewService(transcriptRepo, extractionService, uploads, logger)

	// Initialize transcript handler
	log.Println("🚀 Initializing transcript handler...")
	transcriptHandler := handler.NewTranscriptHandler(ingestionService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(transcriptHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
