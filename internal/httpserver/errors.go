package httpserver

import (
	"errors"
	"net/http"

	"github.com/skillcoder/kubedev-controller/internal/logic/workspace"
)

var (
	ErrMissingCredentials = errors.New("missing bearer token")
	ErrInvalidCredentials = errors.New("invalid api key")
	ErrBadRequest         = errors.New("bad request")
)

type errorResponse struct {
	Error string `json:"error"`
}

// statusFor maps a lifecycle error onto its HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest), errors.Is(err, workspace.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrMissingCredentials), errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, workspace.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, workspace.ErrNotFound), errors.Is(err, workspace.ErrQuotaNotFound):
		return http.StatusNotFound
	case errors.Is(err, workspace.ErrNotReady),
		errors.Is(err, workspace.ErrConflict),
		errors.Is(err, workspace.ErrInvalidTransition):
		return http.StatusConflict
	}

	return http.StatusInternalServerError
}
