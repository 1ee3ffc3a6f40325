package httpserver

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/skillcoder/kubenexus/internal/logic/inventory"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, healthResponse{Status: "ok"})
}

func (s *Server) handleListNamespaces(w http.ResponseWriter, r *http.Request) {
	namespaces, err := s.inventory.ListNamespacesQuery(r.Context())
	if err != nil {
		s.writeError(w, r, err, "failed to list namespaces")

		return
	}

	s.writeJSON(w, r, http.StatusOK, namespaces)
}

func (s *Server) handleGetNamespace(w http.ResponseWriter, r *http.Request) {
	namespace, err := s.inventory.GetNamespaceQuery(r.Context(), chi.URLParam(r, paramName))
	if err != nil {
		s.writeError(w, r, err, "failed to get namespace")

		return
	}

	s.writeJSON(w, r, http.StatusOK, namespace)
}

// handleListPods lists pods in ?namespace=, or in every namespace when it is absent or empty.
func (s *Server) handleListPods(w http.ResponseWriter, r *http.Request) {
	pods, err := s.inventory.ListPodsQuery(r.Context(), r.URL.Query().Get(paramNamespace))
	if err != nil {
		s.writeError(w, r, err, "failed to list pods")

		return
	}

	s.writeJSON(w, r, http.StatusOK, pods)
}

func (s *Server) handleGetPod(w http.ResponseWriter, r *http.Request) {
	pod, err := s.inventory.GetPodQuery(r.Context(), chi.URLParam(r, paramNamespace), chi.URLParam(r, paramName))
	if err != nil {
		s.writeError(w, r, err, "failed to get pod")

		return
	}

	s.writeJSON(w, r, http.StatusOK, pod)
}

func (s *Server) handleGetPodLogs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	tailLines, err := s.parseTailLines(query.Get(paramTailLines))
	if err != nil {
		s.writeError(w, r, err, "failed to get pod logs")

		return
	}

	logs, err := s.inventory.GetPodLogsQuery(
		r.Context(),
		chi.URLParam(r, paramNamespace),
		chi.URLParam(r, paramName),
		inventory.LogOptions{
			Container: query.Get(paramContainer),
			TailLines: tailLines,
		},
	)
	if err != nil {
		s.writeError(w, r, err, "failed to get pod logs")

		return
	}

	w.Header().Set("Content-Type", contentTypeText)
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte(logs)); err != nil {
		s.logger.DebugContext(r.Context(), "failed to write pod logs", "reason", err)
	}
}

func (s *Server) handleGetPodUsage(w http.ResponseWriter, r *http.Request) {
	usage, err := s.inventory.GetPodUsageQuery(r.Context(), chi.URLParam(r, paramNamespace), chi.URLParam(r, paramName))
	if err != nil {
		s.writeError(w, r, err, "failed to get pod usage")

		return
	}

	s.writeJSON(w, r, http.StatusOK, usage)
}

// parseTailLines returns the configured default for an empty value.
func (s *Server) parseTailLines(raw string) (int64, error) {
	if raw == "" {
		return s.logTail.Default, nil
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q",
			inventory.ErrInvalidArgument, paramTailLines, raw)
	}

	if n > s.logTail.Max {
		return 0, fmt.Errorf("%w: %s must not exceed %d, got %d",
			inventory.ErrInvalidArgument, paramTailLines, s.logTail.Max, n)
	}

	return n, nil
}
