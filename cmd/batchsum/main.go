package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/InQaaaaGit/batchsum/internal/app"
	"github.com/InQaaaaGit/batchsum/internal/buildinfo"
	"github.com/InQaaaaGit/batchsum/internal/config"
	"github.com/InQaaaaGit/batchsum/internal/logger"
	"go.uber.org/zap"
)

// Заполняются при сборке: go build -ldflags "-X main.buildVersion=v1.0.0 ..."
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer func() {
		if err := zl.Sync(); err != nil {
			log.Printf("Error syncing logger: %v", err)
		}
	}()

	zl.Info("Build info", buildinfo.NewInfo(buildVersion, buildDate, buildCommit).Fields()...)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.NewApp(cfg, zl).Run(ctx); err != nil {
		zl.Fatal("Server error", zap.Error(err))
	}
	zl.Info("Server stopped")
}
