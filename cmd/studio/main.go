// Package main is the entry point for Ribbon Studio.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/ribbon-studio/internal/config"
	"github.com/Faultbox/ribbon-studio/internal/logger"
	"github.com/Faultbox/ribbon-studio/internal/studio"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Ribbon Studio ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	exportDir, err := os.Getwd()
	if err != nil {
		exportDir = os.TempDir()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := studio.New(cfg, exportDir)
	if err != nil {
		logger.Error("failed to create studio", zap.Error(err))
		os.Exit(1)
	}
	defer s.Close()

	if err := s.Run(ctx); err != nil {
		logger.Error("studio error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("studio closed normally")
}
