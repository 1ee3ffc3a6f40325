package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/skillcoder/kubenexus/internal/infra/shutdown"
)

const defaultMetricsPort = "9090"

// MetricsServer serves Prometheus metrics on a dedicated port, apart from the API.
type MetricsServer struct {
	*endpoint
}

// NewMetricsServer creates a metrics server for GET /metrics on port.
func NewMetricsServer(logger *slog.Logger, port string) *MetricsServer {
	if port == "" {
		port = defaultMetricsPort
	}

	return &MetricsServer{
		endpoint: newEndpoint(logger, "metrics-server", port),
	}
}

var _ shutdown.Shutdowner = (*MetricsServer)(nil)

// Start listens on the metrics port and serves the default registry.
func (s *MetricsServer) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.Handler())

	return s.serve(ctx, mux)
}
