package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/calisthenix/internal/telemetry/tracing"
	"github.com/2beens/calisthenix/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=auth_test

type sessionManager interface {
	Create(ctx context.Context, userID string) (string, error)
	Delete(ctx context.Context, token string) error
	TTL() time.Duration
}

type Handler struct {
	sessions     sessionManager
	devIdentity  *Identity
	secureCookie bool
}

// NewHandler builds the login/logout handler. devIdentity is the identity
// the dev login signs in as; nil disables /api/login.
func NewHandler(sessions sessionManager, devIdentity *Identity, secureCookie bool) *Handler {
	return &Handler{
		sessions:     sessions,
		devIdentity:  devIdentity,
		secureCookie: secureCookie,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	if h.devIdentity != nil {
		r.HandleFunc("/api/login", h.HandleDevLogin).Methods("GET", "OPTIONS").Name("dev-login")
	}
	r.HandleFunc("/api/logout", h.HandleLogout).Methods("GET", "POST", "OPTIONS").Name("logout")
}

func (h *Handler) HandleDevLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.devlogin")
	defer span.End()

	token, err := h.sessions.Create(ctx, h.devIdentity.UserID)
	if err != nil {
		log.Errorf("dev login, create session: %s", err)
		pkg.WriteErrorResponse(w, "login failed", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, NewSessionCookie(token, h.sessions.TTL(), h.secureCookie))
	log.Debugf("dev login: session created for user [%s]", h.devIdentity.UserID)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	if token := SessionTokenFromRequest(r); token != "" {
		if err := h.sessions.Delete(ctx, token); err != nil {
			log.Errorf("logout, delete session: %s", err)
			pkg.WriteErrorResponse(w, "logout failed", http.StatusInternalServerError)
			return
		}
	}

	http.SetCookie(w, ExpiredSessionCookie())
	http.Redirect(w, r, "/", http.StatusFound)
}
