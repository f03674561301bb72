package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/Jaymieblaze/my-todo-app/internal/client/api"
	"github.com/Jaymieblaze/my-todo-app/internal/client/cli"
	"github.com/Jaymieblaze/my-todo-app/internal/client/iocli"
	"github.com/Jaymieblaze/my-todo-app/internal/client/netmon"
	"github.com/Jaymieblaze/my-todo-app/internal/client/storage/boltdb"
	"github.com/Jaymieblaze/my-todo-app/internal/client/sync"
	"github.com/Jaymieblaze/my-todo-app/internal/client/tasks"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "https://jsonplaceholder.typicode.com", "Remote todos resource URL")
	apiURL := flag.String("api", "http://localhost:8080", "Task-generation server URL")
	dbPath := flag.String("db", "todo-client.db", "Path to local database")
	offline := flag.Bool("offline", false, "Force offline mode, skip the connectivity probe")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	stdio := iocli.NewStdio()

	args := flag.Args()
	if len(args) == 0 {
		cli.New(nil, nil, netmon.NewStatic(false), stdio).PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	// Открываем BoltDB storage
	store, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	clientID, err := store.ClientID(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read client id: %v\n", err)
		os.Exit(1)
	}

	apiClient := api.NewClient(*serverURL, clientID)

	// Монитор соединения: в offline режиме probe не запускается
	var monitor netmon.Monitor
	if *offline {
		monitor = netmon.NewStatic(false)
	} else {
		checker := netmon.NewChecker(netmon.HTTPProbe(*serverURL), netmon.DefaultInterval, logger)
		checker.Start(ctx)
		monitor = checker
	}

	syncService, err := sync.NewService(apiClient, store, store, store, monitor, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize sync service: %v\n", err)
		os.Exit(1)
	}

	// Переход в online запускает replay очереди
	monitor.Subscribe(func(online bool) {
		if !online {
			return
		}
		if _, err := syncService.Replay(ctx); err != nil {
			logger.Warn("replay on reconnect failed", "error", err)
		}
	})

	generator := tasks.NewClient(*apiURL)

	c := cli.New(syncService, generator, monitor, stdio)
	if err := c.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("Todo Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
