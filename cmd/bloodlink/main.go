package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/iudanet/bloodlink/internal/client/api"
	"github.com/iudanet/bloodlink/internal/client/auth"
	"github.com/iudanet/bloodlink/internal/client/cli"
	"github.com/iudanet/bloodlink/internal/client/feed"
	"github.com/iudanet/bloodlink/internal/client/iocli"
	"github.com/iudanet/bloodlink/internal/client/session"
	"github.com/iudanet/bloodlink/internal/client/storage/boltdb"
	"github.com/iudanet/bloodlink/internal/crypto"
)

const defaultServerURL = "https://bloodlink-server-g6ee.onrender.com/api"

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", defaultServerURL, "Server base URL")
	dataDir := flag.String("data-dir", defaultDataDir(), "Directory for local data")
	passwordFile := flag.String("password-file", "", "Path to file containing account password")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	if err := os.MkdirAll(*dataDir, 0o700); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create data directory: %v\n", err)
		os.Exit(1)
	}

	// Ключ шифрования токена деривируется из device-секрета
	encryptionKey, err := crypto.DeviceKey(*dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load device key: %v\n", err)
		os.Exit(1)
	}

	// Открываем BoltDB storage
	dbPath := filepath.Join(*dataDir, "bloodlink.db")
	boltStorage, err := boltdb.New(ctx, dbPath, encryptionKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	stdio := iocli.NewStdio()

	// Создаем API клиент и менеджер сессии
	apiClient := api.NewClient(*serverURL, boltStorage, logger)
	sessionMgr := session.NewManager(boltStorage, cli.NewNavigator(stdio), logger)

	// Сессия восстанавливается до выполнения команды
	sessionMgr.Init(ctx)

	// 401 с приложенным токеном завершает сессию
	apiClient.SetExpiryHandler(sessionMgr.HandleSessionExpired)

	authService := auth.NewService(apiClient)
	feedService := feed.NewService(apiClient, logger)

	c := cli.New(stdio, apiClient, authService, sessionMgr, feedService, logger, cli.Passwords{
		FromFile: *passwordFile,
	})

	c.Run(ctx, command, args[1:])
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".bloodlink"
	}
	return filepath.Join(home, ".bloodlink")
}

func printVersion() {
	fmt.Printf("BloodLink Donor Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
