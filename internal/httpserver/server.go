package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/skillcoder/kubenexus/internal/infra/appstate"
	"github.com/skillcoder/kubenexus/internal/infra/shutdown"
)

// LogTail bounds the tail_lines parameter of the pod logs endpoint.
type LogTail struct {
	Default int64
	Max     int64
}

// Server serves the read-only cluster summary API and the operational endpoints.
type Server struct {
	*endpoint

	logger    *slog.Logger
	appState  appstater
	inventory inventoryService
	logTail   LogTail
}

// New creates a new HTTP server instance
func New(
	logger *slog.Logger,
	appState appstater,
	inventory inventoryService,
	port string,
	logTail LogTail,
) *Server {
	if port == "" {
		port = defaultPort
	}

	return &Server{
		endpoint:  newEndpoint(logger, "http-server", port),
		logger:    logger,
		appState:  appState,
		inventory: inventory,
		logTail:   logTail,
	}
}

var _ shutdown.Shutdowner = (*Server)(nil)

// Router builds the chi router with every route and middleware.
func (s *Server) Router() http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(instrument)

	router.Get("/health", s.handleHealth)

	router.Route("/namespaces", func(r chi.Router) {
		r.Get("/", s.handleListNamespaces)
		r.Get("/{name}", s.handleGetNamespace)
	})

	router.Route("/pods", func(r chi.Router) {
		r.Get("/", s.handleListPods)
		r.Get("/{namespace}/{name}", s.handleGetPod)
		r.Get("/{namespace}/{name}/logs", s.handleGetPodLogs)
		r.Get("/{namespace}/{name}/usage", s.handleGetPodUsage)
	})

	router.Get("/-/healthz", appstate.HandleHealthz(s.logger, s.appState))
	router.Get("/-/readyz", appstate.HandleReadyz(s.logger, s.appState))
	router.Get("/-/status", appstate.HandleStatus(s.logger, s.appState))

	return router
}

// Start listens on the configured port and serves the API in a goroutine.
func (s *Server) Start(ctx context.Context) error {
	return s.serve(ctx, s.Router())
}
