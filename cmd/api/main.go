package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Mirzasalman11/bank-statement-to-json/internal/api/handlers"
	"github.com/Mirzasalman11/bank-statement-to-json/internal/api/middleware"
	"github.com/Mirzasalman11/bank-statement-to-json/internal/config"
	"github.com/Mirzasalman11/bank-statement-to-json/internal/llm"
	"github.com/Mirzasalman11/bank-statement-to-json/internal/logger"
	"github.com/Mirzasalman11/bank-statement-to-json/internal/pdftext"
	"github.com/Mirzasalman11/bank-statement-to-json/internal/pipeline"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load environment variables from .env file if present
	_ = godotenv.Load()

	log := logger.New(os.Getenv("LOG_LEVEL"))

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	ctx := context.Background()

	extractor, err := llm.NewGeminiClient(ctx, llm.GeminiConfig{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		Timeout: cfg.Gemini.Timeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create extraction client")
	}

	processor := pipeline.NewProcessor(pdftext.NewExtractor(log), extractor, pipeline.Config{
		MaxChunkChars:    cfg.Chunking.MaxChunkChars,
		ChunkOverlap:     cfg.Chunking.ChunkOverlap,
		AccountHeadChars: cfg.Chunking.AccountHeadChars,
		ChunkConcurrency: cfg.Chunking.ChunkConcurrency,
	}, log)

	statementHandler := handlers.NewStatementHandler(processor, log)

	// Create router
	mux := http.NewServeMux()

	mux.HandleFunc("/api/process-statement", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			statementHandler.ProcessStatement(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			statementHandler.Health(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	// CORS stays permissive: the API is consumed by a browser client served
	// from a different origin.
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	})

	// Apply middleware
	handler := middleware.Recovery(log)(
		middleware.Logger(log)(
			middleware.RequestID(
				corsHandler.Handler(mux),
			),
		),
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 5 * time.Minute, // statement processing holds the request open
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("addr", server.Addr).Str("model", cfg.Gemini.Model).Msg("Starting API server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
