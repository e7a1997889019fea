package main

import (
	"context"
	"log"
	"os"
	"syscall"
	"time"

	"github.com/honeycarbs/resume-assistant/internal/config"
	"github.com/honeycarbs/resume-assistant/internal/mcp"
	"github.com/honeycarbs/resume-assistant/pkg/logging"
	"github.com/honeycarbs/resume-assistant/pkg/shutdown"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv, err := mcp.NewServer(ctx, logger, cfg)
	if err != nil {
		logger.Error("failed to initialize resume assistant", "err", err)
		_ = logger.Sync()
		os.Exit(1)
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		_ = shutdown.Graceful(ctx,
			[]os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP},
			shutdownTimeout,
			logger,
			srv,
			shutdown.StopFunc(func(context.Context) error { return logger.Sync() }),
		)
	}()

	if err := srv.Run(); err != nil {
		logger.Error("resume assistant exited with error", "err", err)
		cancel()
	}
	<-stopped
}
