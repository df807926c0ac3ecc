package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pageserve/internal/config"
	"pageserve/internal/server"
	"pageserve/internal/static"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const shutdownGrace = 5 * time.Second

// bootstrap logs until the configured logger exists.
var bootstrap *zap.Logger

var rootCmd = &cobra.Command{
	Use:           "pageserve",
	Short:         "pageserve - serve a handful of HTML pages and their assets",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(bootstrap)

		logger, err := newLogger(cfg.LogLevel)
		if err != nil {
			bootstrap.Fatal("Failed to build logger", zap.Error(err))
		}
		defer logger.Sync()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return run(ctx, cfg, logger)
	},
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	responder := static.NewResponder(static.DefaultContentTypes(), logger)
	srv := server.NewServer(cfg, server.DefaultRoutes(), responder, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("Web server failed", zap.Error(err))
		}
		return err
	case <-ctx.Done():
		logger.Info("Shutting down...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("Goodbye!")
	return <-errCh
}

// loadConfig exits through logger.Fatal when the config cannot be loaded.
func loadConfig(logger *zap.Logger) *config.Config {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}
	return cfg
}

// newLogger returns a development logger for debug and a JSON production
// logger otherwise. Unknown levels fall back to info.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	var zcfg zap.Config
	if lvl == zapcore.DebugLevel {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

func main() {
	var err error
	bootstrap, err = zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer bootstrap.Sync()

	if err := rootCmd.Execute(); err != nil {
		bootstrap.Fatal("pageserve stopped", zap.Error(err))
	}
}
