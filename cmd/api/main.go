package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/LedioKoci/backend-vercel/internal/config"
	"github.com/LedioKoci/backend-vercel/internal/engine"
	"github.com/LedioKoci/backend-vercel/internal/handlers"
	"github.com/LedioKoci/backend-vercel/internal/middleware"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()
	logger := zapLogger.Sugar()

	// Initialize the AI engine for the configured provider. A missing API key
	// is reported per request by the handler so the server still boots.
	var eng engine.Engine
	switch cfg.Provider {
	case config.ProviderOpenAI:
		eng = engine.NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	default:
		eng = engine.NewGemini(cfg.GeminiAPIKey, cfg.GeminiModel)
	}

	// Initialize Gin router
	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RequestLoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.CORSMiddleware())

	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed. Use POST.", "success": false})
	})

	// Initialize handlers
	audioHandler := handlers.NewAudioHandler(eng, cfg, logger)

	// Define routes
	api := router.Group("/api")
	{
		api.POST("/process-audio", audioHandler.ProcessAudio)
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		logger.Infow("server starting", "port", cfg.Port, "provider", cfg.Provider, "strategy", cfg.Strategy)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Infow("shutting down server")

	// Give a 5 second timeout for graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Infow("server exited")
}
