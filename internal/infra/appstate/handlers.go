package appstate

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/skillcoder/kubenexus/internal/infra/pinger"
)

type pingerStatus struct {
	Ready               bool      `json:"ready"`
	Healthy             bool      `json:"healthy"`
	LastRun             time.Time `json:"lastRun"`
	LastError           string    `json:"lastError,omitempty"`
	LastLatency         string    `json:"lastLatency"`
	SuccessCount        int64     `json:"successCount"`
	ErrorCount          int64     `json:"errorCount"`
	ConsecutiveFailures int       `json:"consecutiveFailures"`
	LatencyP50          string    `json:"latencyP50"`
	LatencyP99          string    `json:"latencyP99"`
}

type statusResponse struct {
	State     string                  `json:"state"`
	Uptime    string                  `json:"uptime"`
	StartTime time.Time               `json:"startTime"`
	UptimeSec float64                 `json:"uptimeSeconds"`
	Pingers   map[string]pingerStatus `json:"pingers"`
}

// HandleHealthz returns an http.HandlerFunc for the /-/healthz endpoint
func HandleHealthz(
	logger *slog.Logger,
	appState healthChecker,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.With("traceID", middleware.GetReqID(ctx))

		if !appState.IsHealthy() {
			w.WriteHeader(http.StatusServiceUnavailable)
			log.DebugContext(ctx, "health check failed")

			return
		}

		w.WriteHeader(http.StatusOK)
		log.DebugContext(ctx, "health check passed")
	}
}

// HandleReadyz returns an http.HandlerFunc for the /-/readyz endpoint
func HandleReadyz(
	logger *slog.Logger,
	appState readyChecker,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.With("traceID", middleware.GetReqID(ctx))

		if !appState.IsReady() {
			w.WriteHeader(http.StatusServiceUnavailable)
			log.DebugContext(ctx, "readiness check failed")

			return
		}

		w.WriteHeader(http.StatusOK)
		log.DebugContext(ctx, "readiness check passed")
	}
}

// HandleStatus returns an http.HandlerFunc for the /-/status endpoint
func HandleStatus(
	logger *slog.Logger,
	appState statusGetter,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.With("traceID", middleware.GetReqID(ctx))

		state := appState.GetState()
		uptime := appState.GetUptime()

		response := statusResponse{
			State:     string(state),
			Uptime:    uptime.String(),
			StartTime: appState.GetStartTime(),
			UptimeSec: uptime.Seconds(),
			Pingers:   toPingerStatuses(appState.GetAllStats()),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(response); err != nil {
			log.ErrorContext(ctx, "failed to encode status response", "reason", err)

			return
		}

		log.DebugContext(ctx, "status response sent",
			"state", string(state),
			"uptime", uptime.String(),
		)
	}
}

func toPingerStatuses(all map[string]*pinger.Statistics) map[string]pingerStatus {
	out := make(map[string]pingerStatus, len(all))

	for name, st := range all {
		if st == nil {
			continue
		}

		status := pingerStatus{
			Ready:               st.IsReady,
			Healthy:             st.IsHealthy,
			LastRun:             st.LastRun,
			LastLatency:         st.LastLatency.String(),
			SuccessCount:        st.SuccessCount,
			ErrorCount:          st.ErrorCount,
			ConsecutiveFailures: st.ConsecutiveFailures,
			LatencyP50:          st.LatencyP50.String(),
			LatencyP99:          st.LatencyP99.String(),
		}

		if st.LastError != nil {
			status.LastError = st.LastError.Error()
		}

		out[name] = status
	}

	return out
}
