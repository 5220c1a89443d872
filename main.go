package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	database "github.com/h1zik/ELLAVERABEAUTY/app/db"
	appLogger "github.com/h1zik/ELLAVERABEAUTY/app/logger"
	"github.com/h1zik/ELLAVERABEAUTY/app/tracer"
	"github.com/h1zik/ELLAVERABEAUTY/config"
	"github.com/h1zik/ELLAVERABEAUTY/internal/api/article"
	"github.com/h1zik/ELLAVERABEAUTY/internal/api/auth"
	"github.com/h1zik/ELLAVERABEAUTY/internal/api/category"
	"github.com/h1zik/ELLAVERABEAUTY/internal/api/client"
	"github.com/h1zik/ELLAVERABEAUTY/internal/api/contact"
	generativeAI "github.com/h1zik/ELLAVERABEAUTY/internal/api/generative_ai"
	"github.com/h1zik/ELLAVERABEAUTY/internal/api/pages"
	"github.com/h1zik/ELLAVERABEAUTY/internal/api/product"
	"github.com/h1zik/ELLAVERABEAUTY/internal/api/review"
	"github.com/h1zik/ELLAVERABEAUTY/internal/api/settings"
	"github.com/h1zik/ELLAVERABEAUTY/internal/api/upload"
	"github.com/h1zik/ELLAVERABEAUTY/internal/router"
)

func main() {
	// Use standard log until slog is configured, in case godotenv fails
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or error loading:", err)
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("FATAL: Error initializing config: %v", err)
	}

	logger := setupLogger(cfg.Mode)
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	tracer.InitTracingAndMetrics(cfg.Server.MetricsPort)

	// --- Database Setup ---
	dbConfig, err := database.NewDatabaseConfig(&cfg, logger)
	if err != nil {
		logger.Error("Failed to generate database config", slog.Any("error", err))
		os.Exit(1)
	}

	mongoClient, err := database.Init(dbConfig, logger)
	if err != nil {
		logger.Error("Failed to initialize MongoDB client", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			logger.Error("MongoDB disconnect failed", slog.Any("error", err))
		}
	}()

	if !database.WaitForDB(ctx, mongoClient, logger) {
		logger.Error("Database not ready after waiting, exiting.")
		os.Exit(1)
	}

	db := mongoClient.Database(dbConfig.DatabaseName)
	if err := database.EnsureIndexes(ctx, db, logger); err != nil {
		logger.Error("Failed to ensure indexes", slog.Any("error", err))
		os.Exit(1)
	}

	// --- Dependency Injection ---
	authRepo := auth.NewMongoAuthRepo(db, logger)
	authService := auth.NewAuthService(authRepo, cfg.Auth.JWT, logger)
	authHandler := auth.NewAuthHandler(authService, logger)
	authMiddleware := auth.NewMiddleware(authService, cfg.Auth.JWT, logger)

	categoryRepo := category.NewMongoCategoryRepo(db, logger)
	categoryService := category.NewCategoryService(categoryRepo, logger)
	categoryHandler := category.NewCategoryHandler(categoryService, logger)

	productRepo := product.NewMongoProductRepo(db, logger)
	productService := product.NewProductService(productRepo, logger)
	productHandler := product.NewProductHandler(productService, logger)

	articleRepo := article.NewMongoArticleRepo(db, logger)
	articleService := article.NewArticleService(articleRepo, logger)
	articleHandler := article.NewArticleHandler(articleService, logger)

	clientRepo := client.NewMongoClientRepo(db, logger)
	clientService := client.NewClientService(clientRepo, logger)
	clientHandler := client.NewClientHandler(clientService, logger)

	reviewRepo := review.NewMongoReviewRepo(db, logger)
	reviewService := review.NewReviewService(reviewRepo, logger)
	reviewHandler := review.NewReviewHandler(reviewService, logger)

	contactRepo := contact.NewMongoContactRepo(db, logger)
	contactService := contact.NewContactService(contactRepo, logger)
	contactHandler := contact.NewContactHandler(contactService, logger)

	pagesRepo := pages.NewMongoPageSectionRepo(db, logger)
	pagesService := pages.NewPageSectionService(pagesRepo, logger)
	pagesHandler := pages.NewPageSectionHandler(pagesService, logger)

	settingsRepo := settings.NewMongoSettingsRepo(db, logger)
	settingsService := settings.NewSettingsService(settingsRepo, logger)
	settingsHandler := settings.NewSettingsHandler(settingsService, logger)

	uploadService := upload.NewUploadService(logger)
	uploadHandler := upload.NewUploadHandler(uploadService, logger)

	var aiClient *generativeAI.AIClient
	if cfg.AI.APIKey != "" {
		aiClient, err = generativeAI.NewAIClient(ctx, cfg.AI.APIKey, cfg.AI.TextModel, cfg.AI.ImageModel)
		if err != nil {
			logger.Error("Failed to initialize AI client", slog.Any("error", err))
			os.Exit(1)
		}
	} else {
		logger.Warn("GOOGLE_GEMINI_API_KEY not set, AI endpoints will answer 503")
	}
	aiService := generativeAI.NewAIService(aiClient, logger)
	aiHandler := generativeAI.NewAIHandler(aiService, logger)

	// --- Router Setup ---
	apiRouter := router.SetupRouter(&router.Config{
		AuthHandler:     authHandler,
		CategoryHandler: categoryHandler,
		ProductHandler:  productHandler,
		ArticleHandler:  articleHandler,
		ClientHandler:   clientHandler,
		ReviewHandler:   reviewHandler,
		ContactHandler:  contactHandler,
		PagesHandler:    pagesHandler,
		SettingsHandler: settingsHandler,
		UploadHandler:   uploadHandler,
		AIHandler:       aiHandler,
		Authenticate:    authMiddleware.Authenticate,
		RequireAdmin:    authMiddleware.RequireAdmin,
		AllowedOrigins:  cfg.Cors.AllowedOrigins,
	})

	mux := chi.NewMux()
	mux.Use(middleware.RequestID)
	mux.Use(middleware.RealIP)
	mux.Use(appLogger.StructuredLogger(logger))
	mux.Use(middleware.Recoverer)
	mux.Use(middleware.StripSlashes)
	mux.Use(middleware.Timeout(60 * time.Second))
	mux.Use(middleware.Compress(5, "application/json"))
	mux.Mount("/", apiRouter)

	// --- HTTP Server Setup ---
	serverAddress := fmt.Sprintf(":%s", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         serverAddress,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	go func() {
		logger.Info("Starting HTTP server", slog.String("address", serverAddress))
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server ListenAndServe error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()

	logger.Info("Shutdown signal received, starting graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server graceful shutdown failed", slog.Any("error", err))
	} else {
		logger.Info("HTTP server gracefully stopped")
	}

	logger.Info("Application shut down complete.")
}

// setupLogger configures and returns the application logger.
func setupLogger(mode string) *slog.Logger {
	var logger *slog.Logger

	if mode == "development" || mode == "" {
		tintOpts := &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		}
		logger = slog.New(tint.NewHandler(os.Stdout, tintOpts))
		log.Println("Initialized development logger (tint)")
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     slog.LevelInfo,
			AddSource: false,
		}
		logger = slog.New(slog.NewJSONHandler(os.Stdout, jsonOpts))
		log.Println("Initialized production logger (JSON)")
	}
	return logger
}
