package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "github.com/johnquangdev/meeting-notes/docs"
	pkgvalidator "github.com/johnquangdev/meeting-notes/pkg/validator"

	"github.com/johnquangdev/meeting-notes/internal/adapter/handler"
	"github.com/johnquangdev/meeting-notes/internal/adapter/repository"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/database"
	httpmw "github.com/johnquangdev/meeting-notes/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/metrics"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/storage"
	aiuse "github.com/johnquangdev/meeting-notes/internal/usecase/ai"
	"github.com/johnquangdev/meeting-notes/internal/usecase/auth"
	"github.com/johnquangdev/meeting-notes/internal/usecase/export"
	"github.com/johnquangdev/meeting-notes/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-notes/internal/usecase/membership"
	"github.com/johnquangdev/meeting-notes/internal/usecase/share"
	"github.com/johnquangdev/meeting-notes/internal/usecase/transcribe"
	pkgai "github.com/johnquangdev/meeting-notes/pkg/ai"
	"github.com/johnquangdev/meeting-notes/pkg/config"
	"github.com/johnquangdev/meeting-notes/pkg/jwt"
)

// @title           Meeting Notes API
// @version         1.0
// @description     Transcription, summary, action item, export and share relays for the meeting notes app

// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()
	e.HTTPErrorHandler = handler.NewHTTPErrorHandler(logger, cfg.IsProduction())

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	appMetrics := metrics.New(registry)

	e.Use(middleware.RequestID())

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${id} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// JSON bodies are capped; audio uploads are capped by the transcribe handler
	e.Use(middleware.BodyLimitWithConfig(middleware.BodyLimitConfig{
		Limit: cfg.Server.JSONBodyLimit,
		Skipper: func(c echo.Context) bool {
			return strings.HasSuffix(c.Request().URL.Path, "/api/transcribe")
		},
	}))

	e.Use(httpmw.EchoMetrics(appMetrics))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Production deployments should manage schema via notesctl migrate
	if cfg.Database.AutoMigrate {
		if cfg.IsProduction() {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or run notesctl migrate up.")
		}
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping AutoMigrate; use notesctl migrate up to apply schema migrations")
	}

	// Completion cache
	var store cache.Store
	if cfg.RedisEnabled() {
		log.Println("📦 Connecting to Redis...")
		redisStore, err := cache.NewRedisStore(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		store = redisStore
	} else {
		log.Println("📦 REDIS_HOST not set, using in-memory completion cache")
		store = cache.NewMemoryStore()
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	meetingRepo := repository.NewMeetingRepository(db)
	actionRepo := repository.NewActionItemRepository(db)
	shareRepo := repository.NewShareRepository(db)

	// Initialize AI clients
	log.Println("🤖 Initializing AI components...")
	groqClient := pkgai.NewGroqClient(&cfg.Groq, nil)
	if !groqClient.Configured() {
		logger.Warn("⚠️  GROQ_API_KEY is not set, summary and action extraction will fail")
	}
	completer := aiuse.NewCachedCompleter(groqClient, store, cfg.Groq.CacheTTL, appMetrics, logger)
	aiService := aiuse.NewAIService(completer, logger, aiuse.WithMetrics(appMetrics))

	var transcriber pkgai.Transcriber
	switch cfg.Transcribe.Backend {
	case config.TranscribeBackendAssemblyAI:
		log.Println("🎙️  Using AssemblyAI transcription")
		transcriber = pkgai.NewAssemblyAIClient(&cfg.Assembly, "", logger)
	default:
		log.Printf("🎙️  Using local Whisper transcription (%s, model %s)", cfg.Transcribe.WhisperBinary, cfg.Transcribe.WhisperModel)
		transcriber = pkgai.NewWhisperClient(&cfg.Transcribe, logger)
	}
	transcribeService, err := transcribe.NewTranscribeService(transcriber, cfg.Transcribe.UploadDir, cfg.Transcribe.MaxUploadBytes, appMetrics, logger)
	if err != nil {
		log.Fatalf("Failed to initialize transcription: %v", err)
	}

	// Initialize export storage
	log.Println("🗄️  Initializing export storage...")
	var exportStore storage.ExportStore
	if cfg.Storage.Type == "minio" {
		minioClient, err := storage.NewMinIOClient(ctx, &cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to connect to MinIO: %v", err)
		}
		exportStore = minioClient
		log.Printf("✅ MinIO bucket: %s", cfg.Storage.BucketName)
	} else {
		localStore, err := storage.NewLocalStore(cfg.Server.ExportDir)
		if err != nil {
			log.Fatalf("Failed to initialize export directory: %v", err)
		}
		exportStore = localStore
		log.Printf("✅ Exports directory: %s", localStore.Dir())
	}

	// Initialize services
	log.Println("✨ Initializing services...")
	exportService := export.NewExportService(exportStore, appMetrics, logger)
	shareService := share.NewShareService(shareRepo, cfg.Server.FrontendURL, appMetrics, logger)
	meetingService := meeting.NewMeetingService(meetingRepo, actionRepo, logger)
	membershipValidator := membership.NewAcceptAllValidator(logger)

	// Initialize auth
	log.Println("🔑 Initializing token verification...")
	verifier := jwt.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.Audience)
	authEchoMW := httpmw.EchoAuth(auth.NewJWTAuthenticator(verifier), cfg.Auth.Mode, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(handler.Handlers{
		AI:         handler.NewAIController(aiService, logger),
		Transcribe: handler.NewTranscribe(transcribeService, cfg.Transcribe.MaxUploadBytes, logger),
		Export:     handler.NewExport(exportService, exportStore, logger),
		Share:      handler.NewShare(shareService, membershipValidator, logger),
		Meeting:    handler.NewMeeting(meetingService, logger),
	}, authEchoMW, registry)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔐 Auth mode: %s", cfg.Auth.Mode)
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}

// newLogger builds a JSON production logger or a console development logger
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
