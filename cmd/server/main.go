package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Seriphap/Youtube-Comment-Analysis-byGemini/internal/config"
	"github.com/Seriphap/Youtube-Comment-Analysis-byGemini/internal/gemini"
	"github.com/Seriphap/Youtube-Comment-Analysis-byGemini/internal/handler"
	"github.com/Seriphap/Youtube-Comment-Analysis-byGemini/internal/logger"
	"github.com/Seriphap/Youtube-Comment-Analysis-byGemini/internal/metrics"
	"github.com/Seriphap/Youtube-Comment-Analysis-byGemini/internal/middleware"
	"github.com/Seriphap/Youtube-Comment-Analysis-byGemini/internal/service"
	"github.com/Seriphap/Youtube-Comment-Analysis-byGemini/internal/session"
	"github.com/Seriphap/Youtube-Comment-Analysis-byGemini/internal/validator"
	"github.com/Seriphap/Youtube-Comment-Analysis-byGemini/internal/youtube"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.SetLevel(cfg.LogLevel)

	// Outbound API clients
	youtubeClient := youtube.NewClient(youtube.Config{
		APIKey:    cfg.YouTubeAPIKey,
		BaseURL:   cfg.YouTubeBaseURL,
		Timeout:   cfg.YouTubeTimeout,
		PageSize:  cfg.YouTubePageSize,
		RateLimit: cfg.YouTubeRateLimit,
	})
	geminiClient := gemini.NewClient(gemini.Config{
		APIKey:  cfg.GeminiAPIKey,
		BaseURL: cfg.GeminiBaseURL,
		Model:   cfg.GeminiModel,
		Timeout: cfg.GeminiTimeout,
	})

	// Session store with background TTL eviction
	sessions := session.NewStore(cfg.SessionTTL)
	sessions.StartSweeper(cfg.SessionSweepInterval)
	defer sessions.StopSweeper()

	// Live session gauge
	sessionStatsCollector := metrics.NewSessionStatsCollector(sessions)
	sessionStatsCollector.Start(15 * time.Second)
	defer sessionStatsCollector.Stop()

	// Initialize validator
	v := validator.NewValidator(cfg.MaxResultsCap)

	// Initialize services
	classifier := service.NewLLMClassifier(geminiClient, cfg.ClassifyBatchSize)
	analysisService := service.NewAnalysisService(sessions, youtubeClient, geminiClient, classifier, service.Options{
		DefaultMaxResults: cfg.DefaultMaxResults,
		MaxResultsCap:     cfg.MaxResultsCap,
		PromptMaxChars:    cfg.PromptMaxChars,
		TopKeywords:       cfg.TopKeywords,
		TopComments:       cfg.TopComments,
	})

	// Initialize handlers
	analysisHandler := handler.NewAnalysisHandler(analysisService, v)
	healthHandler := handler.NewHealthHandler(sessions)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		sessionsGroup := v1.Group("/sessions")
		{
			sessionsGroup.POST("", analysisHandler.CreateSession)
			sessionsGroup.POST("/:id/fetch", analysisHandler.Fetch)
			sessionsGroup.GET("/:id/stats", analysisHandler.Stats)
			sessionsGroup.POST("/:id/questions", analysisHandler.Ask)
			sessionsGroup.GET("/:id/questions", analysisHandler.History)
			sessionsGroup.DELETE("/:id/questions", analysisHandler.ClearHistory)
			sessionsGroup.GET("/:id/export", analysisHandler.Export)
		}

		v1.GET("/questions/suggested", analysisHandler.SuggestedQuestions)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
