package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/skillcoder/kubenexus/internal/logic/inventory"
	"github.com/skillcoder/kubenexus/internal/logic/summary"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

type healthResponse struct {
	Status string `json:"status"`
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, code int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.ErrorContext(r.Context(), "failed to encode response",
			"traceID", middleware.GetReqID(r.Context()),
			"reason", err,
		)
	}
}

// writeError maps an inventory error kind to a status code and a detail.
// Only validation errors echo their message; failure is the detail for
// everything the cluster side produced.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error, failure string) {
	ctx := r.Context()
	logger := s.logger.With(
		"traceID", middleware.GetReqID(ctx),
		"route", r.URL.Path,
		"reason", err,
	)

	switch {
	case errors.Is(err, inventory.ErrInvalidArgument):
		logger.DebugContext(ctx, "bad request")
		s.writeJSON(w, r, http.StatusBadRequest, errorResponse{Detail: err.Error()})
	case errors.Is(err, inventory.ErrNotFound):
		logger.DebugContext(ctx, "resource not found")
		s.writeJSON(w, r, http.StatusNotFound, errorResponse{Detail: detailNotFound})
	case errors.Is(err, inventory.ErrTooManyRequests):
		logger.WarnContext(ctx, "cluster API throttled the request")
		s.writeJSON(w, r, http.StatusServiceUnavailable, errorResponse{Detail: detailThrottled})
	case errors.Is(err, inventory.ErrProviderUnavailable):
		logger.ErrorContext(ctx, "resource provider unavailable")
		s.writeJSON(w, r, http.StatusInternalServerError, errorResponse{Detail: detailProviderUnavailable})
	case errors.Is(err, summary.ErrMalformedResource):
		logger.ErrorContext(ctx, "malformed resource from cluster")
		s.writeJSON(w, r, http.StatusInternalServerError, errorResponse{Detail: failure})
	default:
		logger.ErrorContext(ctx, failure)
		s.writeJSON(w, r, http.StatusInternalServerError, errorResponse{Detail: failure})
	}
}
