package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const (
	SessionCookieName  = "calisthenix_session"
	SessionTokenHeader = "X-Session-Token"
)

type sessionResolver interface {
	Resolve(ctx context.Context, token string) (string, error)
}

// SessionAuthenticator authenticates requests by the session token they
// carry, in the session cookie or in the X-Session-Token header.
type SessionAuthenticator struct {
	sessions sessionResolver
}

func NewSessionAuthenticator(sessions sessionResolver) *SessionAuthenticator {
	return &SessionAuthenticator{
		sessions: sessions,
	}
}

func SessionTokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return r.Header.Get(SessionTokenHeader)
}

func (a *SessionAuthenticator) Authenticate(r *http.Request) (*Identity, error) {
	token := SessionTokenFromRequest(r)
	if token == "" {
		return nil, fmt.Errorf("missing session token: %w", ErrUnauthenticated)
	}

	userID, err := a.sessions.Resolve(r.Context(), token)
	if errors.Is(err, ErrSessionNotFound) {
		return nil, fmt.Errorf("invalid session: %w", ErrUnauthenticated)
	}
	if err != nil {
		return nil, err
	}

	return &Identity{UserID: userID}, nil
}

func NewSessionCookie(token string, ttl time.Duration, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func ExpiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	}
}
