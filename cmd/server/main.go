package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sentenceclash/internal/config"
	"sentenceclash/internal/database"
	"sentenceclash/internal/handlers"
	"sentenceclash/internal/quizdata"
	"sentenceclash/internal/repository"
	"sentenceclash/internal/security"
	"sentenceclash/internal/service"
	"sentenceclash/internal/templates"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	if err := db.RunMigrations(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	sentenceService := service.NewSentenceService(repository.NewSentenceRepository(db))

	// Seed the sentence pairs on first start
	seed, err := quizdata.LoadSource(cfg.QuizDataPath)
	if err != nil {
		log.Printf("Warning: Failed to load quiz data: %v", err)
	} else if n, err := sentenceService.SeedIfEmpty(seed); err != nil {
		log.Printf("Warning: Failed to seed sentence pairs: %v", err)
	} else if n > 0 {
		log.Printf("Seeded %d sentence pairs", n)
	}

	if stats, err := sentenceService.Stats(); err == nil {
		log.Printf("Serving %d sentence pairs (%d words, longest answer %d words)", stats.TotalPairs, stats.TotalTokens, stats.LongestWords)
	}

	tmpl, err := templates.Load()
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := service.NewSessionStore(cfg.SessionTTL)
	quizService := service.NewQuizService(sentenceService, store, cfg.SessionSize, cfg.Debug)

	limiter := security.NewRateLimiter(cfg.StartRateLimit, cfg.StartRateWindow)
	csrf := security.NewCSRFGenerator(cfg.SessionSecret)
	middleware := handlers.NewMiddleware(security.NewPlayerTokens(cfg.SessionSecret, cfg.SessionTTL), csrf, limiter, cfg.SessionTTL)
	quizHandler := handlers.NewQuizHandler(quizService, csrf, tmpl)

	// Background cleanup of idle sessions and rate limiter buckets
	go store.RunCleanup(ctx, time.Minute)
	go limiter.RunCleanup(ctx, time.Hour)

	router := handlers.NewRouter(quizHandler, middleware, cfg.StaticFilesPath, cfg.AllowedOrigins)

	// Wrap with logging middleware
	handler := handlers.Logging(router)

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Server shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}
}
