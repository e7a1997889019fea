package shutdown

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"time"

	"github.com/honeycarbs/resume-assistant/pkg/logging"
)

// Stoppable is anything that can drain in-flight work before exit
type Stoppable interface {
	Shutdown(ctx context.Context) error
}

// StopFunc adapts a plain function to Stoppable
type StopFunc func(ctx context.Context) error

func (f StopFunc) Shutdown(ctx context.Context) error { return f(ctx) }

// Graceful blocks until one of signals arrives or ctx is done, then stops
// targets in order within timeout
func Graceful(ctx context.Context, signals []os.Signal, timeout time.Duration, log *logging.Logger, targets ...Stoppable) error {
	sigCtx, stop := signal.NotifyContext(ctx, signals...)
	defer stop()

	<-sigCtx.Done()
	log.Info("shutdown signal received", "cause", context.Cause(sigCtx))

	return Stop(timeout, log, targets...)
}

// Stop shuts every target down under one shared deadline. Every target is
// attempted; failures are joined.
func Stop(timeout time.Duration, log *logging.Logger, targets ...Stoppable) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var errs []error
	for i, t := range targets {
		if t == nil {
			continue
		}
		if err := t.Shutdown(ctx); err != nil {
			log.Warn("shutdown target failed", "index", i, "err", err)
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		log.Warn("graceful shutdown completed with errors", "failed", len(errs))
		return err
	}
	log.Info("graceful shutdown completed successfully")
	return nil
}
