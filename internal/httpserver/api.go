package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/skillcoder/kubedev-controller/internal/logic/workspace"
)

type batchRequest struct {
	Users     []string                `json:"users"`
	Workspace workspace.CreateRequest `json:"workspace"`
}

type createFailure struct {
	Error     string                  `json:"error"`
	Workspace *workspace.CreateResult `json:"workspace"`
}

type logsResponse struct {
	ID   string `json:"id"`
	Logs string `json:"logs"`
}

func (s *Server) apiRoutes(r chi.Router) {
	r.Use(s.authenticate)

	r.Route("/me/workspaces", func(r chi.Router) {
		r.Post("/", s.handleCreate)
		r.Get("/", s.handleListOwn)
		r.Get("/{id}", s.handleGet)
		r.Get("/{id}/logs", s.handleLogs)
		r.Post("/{id}/stop", s.handleStop)
		r.Post("/{id}/start", s.handleStart)
		r.Post("/{id}/restart", s.handleRestart)
		r.Delete("/{id}", s.handleDelete)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Post("/workspaces/batch", s.handleBatchCreate)
		r.Get("/workspaces", s.handleListAll)
		r.Post("/cleanup/expired", s.handleSweep)
		r.Get("/overview", s.handleOverview)
		r.Get("/namespaces/{namespace}/quota", s.handleQuota)
	})
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req workspace.CreateRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)

		return
	}

	result, err := s.api.CreateWorkspace(r.Context(), requesterFrom(r.Context()), req)
	if err != nil {
		if result == nil {
			s.writeError(w, r, err)

			return
		}

		// The record exists in a failed phase; report it along with the cause.
		s.logFailure(r, err)
		s.writeJSON(w, r, statusFor(err), createFailure{Error: err.Error(), Workspace: result})

		return
	}

	s.writeJSON(w, r, http.StatusCreated, result)
}

func (s *Server) handleBatchCreate(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)

		return
	}

	result, err := s.api.BatchCreate(r.Context(), requesterFrom(r.Context()), req.Users, req.Workspace)
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	s.writeJSON(w, r, http.StatusOK, result)
}

func (s *Server) handleListOwn(w http.ResponseWriter, r *http.Request) {
	views, err := s.api.ListWorkspaces(r.Context(), requesterFrom(r.Context()))
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	s.writeJSON(w, r, http.StatusOK, views)
}

func (s *Server) handleListAll(w http.ResponseWriter, r *http.Request) {
	views, err := s.api.ListAllWorkspaces(r.Context(), requesterFrom(r.Context()))
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	s.writeJSON(w, r, http.StatusOK, views)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	view, err := s.api.GetWorkspace(r.Context(), requesterFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	s.writeJSON(w, r, http.StatusOK, view)
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	var tail int64

	if raw := r.URL.Query().Get(queryTail); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 0 {
			s.writeError(w, r, fmt.Errorf("%w: %s must be a non-negative integer", ErrBadRequest, queryTail))

			return
		}

		tail = n
	}

	id := chi.URLParam(r, "id")

	logs, err := s.api.GetLogs(r.Context(), requesterFrom(r.Context()), id, tail)
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	s.writeJSON(w, r, http.StatusOK, logsResponse{ID: id, Logs: logs})
}

func (s *Server) handleStop(w http.ResponseWriter, r *http.Request) {
	view, err := s.api.StopWorkspace(r.Context(), requesterFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	s.writeJSON(w, r, http.StatusOK, view)
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	view, err := s.api.StartWorkspace(r.Context(), requesterFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	s.writeJSON(w, r, http.StatusOK, view)
}

func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	err := s.api.RestartWorkspace(r.Context(), requesterFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	deleteNamespaceFirst, err := boolQuery(r, queryDeleteNamespaceFirst, true)
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	err = s.api.DeleteWorkspace(r.Context(), requesterFrom(r.Context()), chi.URLParam(r, "id"), deleteNamespaceFirst)
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSweep(w http.ResponseWriter, r *http.Request) {
	dryRun, err := boolQuery(r, queryDryRun, false)
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	report, err := s.api.SweepExpired(r.Context(), requesterFrom(r.Context()), dryRun)
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	s.writeJSON(w, r, http.StatusOK, report)
}

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := s.api.ClusterOverview(r.Context(), requesterFrom(r.Context()))
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	s.writeJSON(w, r, http.StatusOK, overview)
}

func (s *Server) handleQuota(w http.ResponseWriter, r *http.Request) {
	quota, err := s.api.QuotaStatus(r.Context(), requesterFrom(r.Context()), chi.URLParam(r, "namespace"))
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	s.writeJSON(w, r, http.StatusOK, quota)
}

func boolQuery(r *http.Request, key string, def bool) (bool, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean", ErrBadRequest, key)
	}

	return v, nil
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: decode body: %w", ErrBadRequest, err)
	}

	return nil
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.ErrorContext(r.Context(), "failed to encode response", "reason", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	s.logFailure(r, err)
	s.writeJSON(w, r, statusFor(err), errorResponse{Error: err.Error()})
}

func (s *Server) logFailure(r *http.Request, err error) {
	if statusFor(err) >= http.StatusInternalServerError {
		s.logger.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"reason", err,
		)

		return
	}

	s.logger.DebugContext(r.Context(), "request rejected",
		"method", r.Method,
		"path", r.URL.Path,
		"reason", err,
	)
}
