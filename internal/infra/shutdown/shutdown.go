package shutdown

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const defaultShutdownTimeout = 5 * time.Second

// Notify returns a channel that will receive SIGTERM and SIGINT signals.
// Call it first in main so that early signals are not lost.
func Notify() <-chan os.Signal {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGINT)

	return signals
}

type Handler struct {
	logger *slog.Logger
	quiter quiter
}

// New creates a new shutdown handler.
func New(logger *slog.Logger, quiter quiter) *Handler {
	return &Handler{
		logger: logger,
		quiter: quiter,
	}
}

// HandleSignals blocks until a termination signal arrives or ctx is done, and calls cancel on a signal.
func (h *Handler) HandleSignals(ctx context.Context, cancel func()) {
	select {
	case <-ctx.Done():
		h.logger.DebugContext(ctx, "terminating signal handler due to context done")

		return
	case sig := <-h.quiter.Quit():
		h.logger.InfoContext(ctx, "received termination signal, terminating", "signal", sig.String())
	}

	cancel()
}

// GracefulShutdown shuts components down in reverse registration order
// within a bounded time, and joins their errors.
func GracefulShutdown(
	originCtx context.Context,
	logger *slog.Logger,
	shutdowners []Shutdowner,
) error {
	// Shutdown must proceed even when originCtx is already cancelled.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(originCtx), defaultShutdownTimeout)
	defer cancel()

	var errs error

	for i := len(shutdowners) - 1; i >= 0; i-- {
		start := time.Now()
		shutdowner := shutdowners[i]
		name := shutdowner.Name()

		if err := shutdowner.Shutdown(ctx); err != nil {
			logger.ErrorContext(ctx, "component shutdown failed",
				"component", name,
				"duration", time.Since(start),
				"reason", err,
			)

			errs = errors.Join(errs, err)

			continue
		}

		logger.InfoContext(ctx, "component shutdown completed",
			"component", name,
			"duration", time.Since(start),
		)
	}

	return errs
}
