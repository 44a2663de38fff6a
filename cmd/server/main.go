// Package main is the entry point for the LegalBridge PDF Analysis API server.
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

	"github.com/joho/godotenv"

	"github.com/LegalBridgeFouderCEO/bubble-pdf-split/internal/config"
	"github.com/LegalBridgeFouderCEO/bubble-pdf-split/internal/router"
	"github.com/LegalBridgeFouderCEO/bubble-pdf-split/internal/services/analysis"
	"github.com/LegalBridgeFouderCEO/bubble-pdf-split/internal/services/fetcher"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("🚀 LegalBridge PDF Analysis API %s starting...", Version)

	// Optional .env for local development; env vars win in deployment.
	_ = godotenv.Load()

	// Step 1: Load Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	log.Printf("📋 Config loaded: port=%s, model=%s, fetch_timeout=%s, gin_mode=%s",
		cfg.Port, cfg.OpenAIModel, cfg.FetchTimeout, cfg.GinMode)

	os.Setenv("GIN_MODE", cfg.GinMode)

	// Step 2: Create Services
	fetchSvc := fetcher.New(cfg.FetchTimeout)
	analyzer := analysis.New(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.MaxTokens, cfg.Temperature)
	if analyzer.IsConfigured() {
		log.Println("✅ Contract analysis enabled (OpenAI)")
	} else {
		log.Println("⚠️  Contract analysis disabled (set OPENAI_API_KEY to enable)")
	}

	// Step 3: Setup HTTP Router
	r := router.Setup(fetchSvc, analyzer, cfg.AllowedOrigins)

	// Step 4: Start the HTTP Server
	// WriteTimeout must cover the document fetch plus the model call.
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 180 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("🌐 Server listening on http://localhost:%s", cfg.Port)
		log.Printf("📖 Health check: http://localhost:%s/health", cfg.Port)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Server failed: %v", err)
		}
	}()

	// Step 5: Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	log.Printf("🛑 Received signal %v, shutting down gracefully...", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("⚠️  Server forced to shutdown: %v", err)
	}

	log.Println("👋 Server stopped. Goodbye!")
}
