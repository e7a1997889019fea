package shutdown

import (
	"context"
	"errors"
	"os"
	"syscall"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/honeycarbs/resume-assistant/pkg/logging"
)

type stoppable struct {
	err      error
	called   bool
	deadline bool
}

func (s *stoppable) Shutdown(ctx context.Context) error {
	s.called = true
	_, s.deadline = ctx.Deadline()
	return s.err
}

func TestStopLogsOutcome(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := logging.FromZap(zap.New(core))

	ok := &stoppable{}
	if err := Stop(time.Second, log, ok); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if !ok.deadline {
		t.Fatal("shutdown context should carry a deadline")
	}
	if logs.FilterMessage("graceful shutdown completed successfully").Len() != 1 {
		t.Fatal("expected success log")
	}
}

func TestStopAttemptsEveryTarget(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := logging.FromZap(zap.New(core))

	busy := errors.New("busy")
	first := &stoppable{err: busy}
	second := &stoppable{}

	err := Stop(time.Second, log, first, nil, second)
	if !errors.Is(err, busy) {
		t.Fatalf("err = %v, want busy", err)
	}
	if !second.called {
		t.Fatal("later targets must still be stopped")
	}
	if logs.FilterLevelExact(zapcore.WarnLevel).Len() != 2 {
		t.Fatalf("expected target and summary warnings, got %d", logs.FilterLevelExact(zapcore.WarnLevel).Len())
	}
}

func TestGracefulStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	flushed := false
	flush := StopFunc(func(context.Context) error {
		flushed = true
		return nil
	})

	if err := Graceful(ctx, []os.Signal{syscall.SIGUSR1}, time.Second, logging.NewNop(), flush); err != nil {
		t.Fatalf("Graceful: %v", err)
	}
	if !flushed {
		t.Fatal("expected StopFunc to run")
	}
}
