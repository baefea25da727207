package httpserver

import (
	"context"
	"net/http"
	"strings"

	"github.com/skillcoder/kubedev-controller/internal/logic/workspace"
)

const bearerPrefix = "Bearer "

type requesterKey struct{}

// authenticate resolves the bearer API key into a requester stored in the request context.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			s.writeError(w, r, ErrMissingCredentials)

			return
		}

		requester, ok := s.keys[strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))]
		if !ok {
			s.writeError(w, r, ErrInvalidCredentials)

			return
		}

		ctx := context.WithValue(r.Context(), requesterKey{}, requester)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requesterFrom(ctx context.Context) workspace.Requester {
	requester, _ := ctx.Value(requesterKey{}).(workspace.Requester)

	return requester
}
