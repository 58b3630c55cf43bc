package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/2beens/calisthenix/internal/auth"
	"github.com/2beens/calisthenix/internal/telemetry/tracing"
	"github.com/2beens/calisthenix/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

type authenticator interface {
	Authenticate(r *http.Request) (*auth.Identity, error)
}

type AuthMiddlewareHandler struct {
	authenticator        authenticator
	allowedPaths         map[string]bool
	allowedPathsPrefixes []string
}

func NewAuthMiddlewareHandler(authenticator authenticator) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		authenticator: authenticator,
		allowedPaths: map[string]bool{
			"/":              true,
			"/api/login":     true,
			"/api/logout":    true,
			"/api/exercises": true,
		},
		allowedPathsPrefixes: []string{
			"/api/exercises/",
		},
	}
}

func (h *AuthMiddlewareHandler) pathIsAlwaysAllowed(path string) bool {
	if h.allowedPaths[path] {
		return true
	}
	for _, prefix := range h.allowedPathsPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// AuthCheck resolves the caller and stores the identity in the request context.
// Requests to allowlisted paths go through anonymously when no identity is found.
func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				span.SetStatus(codes.Ok, "options-ok")
				next.ServeHTTP(w, r)
				return
			}

			identity, err := h.authenticator.Authenticate(r.WithContext(ctx))
			if err == nil {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), identity)))
				return
			}

			if h.pathIsAlwaysAllowed(r.URL.Path) {
				span.SetStatus(codes.Ok, "anonymous")
				next.ServeHTTP(w, r)
				return
			}

			if errors.Is(err, auth.ErrUnauthenticated) {
				log.Tracef("[auth middleware] unauthenticated => %s", r.URL.Path)
				span.SetStatus(codes.Error, "unauthenticated")
			} else {
				log.Errorf("[auth middleware] authenticate => %s: %s", r.URL.Path, err)
				span.SetStatus(codes.Error, "authenticate-err")
				span.RecordError(err)
			}
			pkg.WriteErrorResponse(w, "unauthenticated", http.StatusUnauthorized)
		})
	}
}
