package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
)

// endpoint owns one listening *http.Server and its lifecycle. Server and
// MetricsServer embed it and differ only in the handler they serve.
type endpoint struct {
	logger     *slog.Logger
	name       string
	port       string
	server     *http.Server
	addr       atomic.Pointer[string]
	ready      chan struct{}
	inShutdown atomic.Bool
}

func newEndpoint(logger *slog.Logger, name, port string) *endpoint {
	return &endpoint{
		logger: logger.With("component", name),
		name:   name,
		port:   port,
		ready:  make(chan struct{}),
	}
}

// Name returns the component name.
func (e *endpoint) Name() string {
	return e.name
}

// Addr returns the bound listen address, or "" before Start.
func (e *endpoint) Addr() string {
	if addr := e.addr.Load(); addr != nil {
		return *addr
	}

	return ""
}

// Ready returns a channel that is closed once the listener accepts connections.
func (e *endpoint) Ready() <-chan struct{} {
	return e.ready
}

// Ping returns nil when the server is serving.
func (e *endpoint) Ping(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-e.ready:
		return nil
	default:
		return ErrNotReady
	}
}

// serve listens synchronously so bind errors surface from Start, then serves
// handler in a goroutine.
func (e *endpoint) serve(ctx context.Context, handler http.Handler) error {
	if e.inShutdown.Load() {
		e.logger.InfoContext(ctx, "server is shutting down, skipping start")

		return nil
	}

	addr := ":" + e.port
	e.server = &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		MaxHeaderBytes:    maxHeaderBytes,
	}

	lc := &net.ListenConfig{
		KeepAliveConfig: net.KeepAliveConfig{
			Enable: true,
		},
	}

	listener, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s tcp: %w", e.name, err)
	}

	listenAddr := listener.Addr().String()
	e.addr.Store(&listenAddr)

	e.logger.InfoContext(ctx, "server listening", "addr", listenAddr)

	go func() {
		close(e.ready)

		if err := e.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.logger.ErrorContext(ctx, "server error", "reason", err)
		}
	}()

	return nil
}

// Shutdown gracefully stops the server. Later calls are no-ops.
func (e *endpoint) Shutdown(ctx context.Context) error {
	if !e.inShutdown.CompareAndSwap(false, true) {
		e.logger.WarnContext(ctx, "server is already shutting down, skipping shutdown")

		return nil
	}

	e.logger.InfoContext(ctx, "shutting down server")

	if e.server == nil {
		return nil
	}

	if err := e.server.Shutdown(ctx); err != nil {
		e.logger.ErrorContext(ctx, "error shutting down server", "reason", err)

		return fmt.Errorf("%s shutdown: %w", e.name, err)
	}

	e.logger.InfoContext(ctx, "server closed properly")

	return nil
}
