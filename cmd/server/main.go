package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/ShitalYadav18/SmartQuizzer-Quiz-Generator/internal/api"
	"github.com/ShitalYadav18/SmartQuizzer-Quiz-Generator/internal/generator"
	"github.com/ShitalYadav18/SmartQuizzer-Quiz-Generator/internal/infrastructure/config"
	"github.com/ShitalYadav18/SmartQuizzer-Quiz-Generator/internal/service"
	"github.com/ShitalYadav18/SmartQuizzer-Quiz-Generator/internal/session"
	"github.com/ShitalYadav18/SmartQuizzer-Quiz-Generator/internal/store"

	_ "github.com/ShitalYadav18/SmartQuizzer-Quiz-Generator/docs" // generated swagger docs
)

// @title           SmartQuizzer API
// @version         1.0
// @description     Adaptive quiz generator: upload study material, generate questions with an LLM, and practice with a difficulty ladder that follows your answers.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	llm := generator.NewLLMGenerator(cfg.LLMURL, cfg.LLMModel, cfg.LLMToken)
	generationSvc := service.NewGenerationService(db, llm, logger, cfg.GenerationWorkers)
	sessions := session.NewManager()
	handler := api.NewHandler(db, sessions, generationSvc, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()
	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      120 * time.Second, // quiz generation waits on the LLM
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
