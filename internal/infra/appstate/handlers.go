package appstate

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/skillcoder/kubedev-controller/internal/infra/pinger"
)

type statusResponse struct {
	State     string                        `json:"state"`
	Uptime    string                        `json:"uptime"`
	StartTime time.Time                     `json:"startTime"`
	UptimeSec float64                       `json:"uptimeSeconds"`
	Checks    map[string]*pinger.Statistics `json:"checks"`
}

// HandleHealthz serves the liveness probe.
func HandleHealthz(logger *slog.Logger, appState healthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if !appState.IsHealthy() {
			w.WriteHeader(http.StatusServiceUnavailable)
			logger.DebugContext(ctx, "health check failed", "traceID", middleware.GetReqID(ctx))

			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

// HandleReadyz serves the readiness probe.
func HandleReadyz(logger *slog.Logger, appState readyChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if !appState.IsReady() {
			w.WriteHeader(http.StatusServiceUnavailable)
			logger.DebugContext(ctx, "readiness check failed", "traceID", middleware.GetReqID(ctx))

			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

// HandleStatus reports the process state with the result of every dependency check.
func HandleStatus(logger *slog.Logger, appState statusGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		uptime := appState.GetUptime()

		checks := appState.GetAllStats()
		if checks == nil {
			checks = map[string]*pinger.Statistics{}
		}

		response := statusResponse{
			State:     string(appState.GetState()),
			Uptime:    uptime.Round(time.Second).String(),
			StartTime: appState.GetStartTime(),
			UptimeSec: uptime.Seconds(),
			Checks:    checks,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.ErrorContext(ctx, "failed to encode status response",
				"reason", err,
				"traceID", middleware.GetReqID(ctx),
			)
		}
	}
}
