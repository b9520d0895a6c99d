package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/meeting-summarizer-team/meeting-summarizer/internal/adapter/handler"
	"github.com/meeting-summarizer-team/meeting-summarizer/internal/adapter/repository"
	"github.com/meeting-summarizer-team/meeting-summarizer/internal/infrastructure/database"
	"github.com/meeting-summarizer-team/meeting-summarizer/internal/usecase/summary"
	"github.com/meeting-summarizer-team/meeting-summarizer/pkg/ai"
	"github.com/meeting-summarizer-team/meeting-summarizer/pkg/config"
	"github.com/meeting-summarizer-team/meeting-summarizer/pkg/mailer"
	pkgvalidator "github.com/meeting-summarizer-team/meeting-summarizer/pkg/validator"
)

// @title           AI Meeting Summarizer API
// @version         1.0
// @description     API for uploading meeting transcripts, generating AI summaries, and sharing them via email

// @host      localhost:5000
// @BasePath  /api

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

	// Tag every request so handler logs can be correlated
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Printf("📦 Connecting to database (%s)...", cfg.Database.Driver)
	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	log.Println("🔄 Running schema migrations...")
	if err := database.Migrate(db, cfg.Database.Driver); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	meetingRepo := repository.NewMeetingRepository(db)
	shareRepo := repository.NewShareRepository(db)

	// Initialize external clients
	log.Println("🤖 Initializing AI client...")
	groqClient := ai.NewGroqClient(&cfg.Groq)
	if !groqClient.Configured() {
		log.Println("⚠️  GROQ_API_KEY not set, summary generation runs in demo mode")
	}

	log.Println("📧 Initializing mailer...")
	mailClient := mailer.New(&cfg.Email)
	if !mailClient.Configured() {
		log.Println("⚠️  EMAIL_USER/EMAIL_PASS not set, email sharing runs in demo mode")
	}

	// Initialize summary service
	log.Println("✨ Initializing summary service...")
	summaryService := summary.NewService(meetingRepo, shareRepo, groqClient, mailClient, logger)

	// Initialize handler
	log.Println("🚀 Initializing meeting handler...")
	meetingHandler := handler.NewMeetingHandler(summaryService, logger)

	// Setup router
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, meetingHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.GetListenAddr()
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/api/health", addr)

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
