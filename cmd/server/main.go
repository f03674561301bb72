package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Jaymieblaze/my-todo-app/internal/server/ai"
	"github.com/Jaymieblaze/my-todo-app/internal/server/handlers"
	"github.com/Jaymieblaze/my-todo-app/internal/server/middleware"
	"github.com/Jaymieblaze/my-todo-app/internal/server/storage/sqlite"
	"github.com/Jaymieblaze/my-todo-app/pkg/api"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// welcomeTodos заполняет пустую базу стартовыми задачами
var welcomeTodos = []api.TodoPayload{
	{Title: "Welcome to your new to-do list!", UserID: 1},
	{Title: "Click the pencil icon to edit this task", UserID: 1},
	{Title: "Click the checkbox to mark a task as complete", UserID: 1, Completed: true},
	{Title: "Use the 'AI Assistant' to generate new tasks", UserID: 1},
}

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", ":8080", "HTTP listen address")
	dbPath := flag.String("db", "todo-server.db", "Path to the SQLite database")
	seed := flag.Bool("seed", true, "Seed welcome todos into an empty database")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if err := run(logger, *addr, *dbPath, *seed); err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, addr, dbPath string, seed bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		_ = store.Close()
	}()

	if seed {
		if err := store.SeedTodos(ctx, welcomeTodos); err != nil {
			return fmt.Errorf("failed to seed todos: %w", err)
		}
	}

	todoHandler := handlers.NewTodoHandler(logger, store)
	healthHandler := handlers.NewHealthHandler(logger, Version)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.HandleFunc("GET /todos", todoHandler.List)
	mux.HandleFunc("POST /todos", todoHandler.Create)
	mux.HandleFunc("GET /todos/{id}", todoHandler.Get)
	mux.HandleFunc("PUT /todos/{id}", todoHandler.Update)
	mux.HandleFunc("DELETE /todos/{id}", todoHandler.Delete)

	if generator := buildGenerator(logger); generator != nil {
		generateHandler := handlers.NewGenerateHandler(logger, generator)
		// AI endpoint дорогой, поэтому отдельный rate limit
		rateLimited := middleware.RateLimitMiddleware(10, time.Minute, logger)
		mux.Handle("/api/generate-tasks", rateLimited(http.HandlerFunc(generateHandler.Generate)))
	}

	handler := middleware.RecoveryMiddleware(logger)(
		middleware.LoggingWithSkip(logger, []string{"/health"})(mux),
	)

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr, "version", Version)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	return nil
}

// buildGenerator создает AI генератор задач, если задан API ключ.
// Без ключа сервер работает, но без эндпоинта генерации.
func buildGenerator(logger *slog.Logger) ai.TaskGenerator {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		logger.Warn("ANTHROPIC_API_KEY is not set, task generation endpoint is disabled")
		return nil
	}

	return ai.NewAnthropicGenerator(apiKey, logger)
}

func printVersion() {
	fmt.Printf("Todo Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
