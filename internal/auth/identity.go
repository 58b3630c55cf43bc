package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/calisthenix/pkg"
)

var ErrUnauthenticated = errors.New("unauthenticated")

// Identity is the authenticated caller of a request.
type Identity struct {
	UserID          string
	Email           string
	FirstName       string
	LastName        string
	ProfileImageURL string
}

// Authenticator resolves the caller of a request. Implementations return
// ErrUnauthenticated (possibly wrapped) when the request carries no valid identity.
type Authenticator interface {
	Authenticate(r *http.Request) (*Identity, error)
}

type identityCtxKey struct{}

func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey{}, identity)
}

func IdentityFrom(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(identityCtxKey{}).(*Identity)
	return identity, ok && identity != nil
}

// UserIDFrom returns the caller's user id, or an empty string for anonymous requests.
func UserIDFrom(ctx context.Context) string {
	identity, ok := IdentityFrom(ctx)
	if !ok {
		return ""
	}
	return identity.UserID
}

// RequireUserID returns the caller's user id, or writes a 401 and returns false.
func RequireUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := UserIDFrom(r.Context())
	if userID == "" {
		pkg.WriteErrorResponse(w, "unauthenticated", http.StatusUnauthorized)
		return "", false
	}
	return userID, true
}

// StaticAuthenticator authenticates every request as the same configured
// identity. Only meant for local development builds.
type StaticAuthenticator struct {
	identity Identity
}

func NewStaticAuthenticator(identity Identity) *StaticAuthenticator {
	return &StaticAuthenticator{
		identity: identity,
	}
}

func (a *StaticAuthenticator) Identity() Identity {
	return a.identity
}

func (a *StaticAuthenticator) Authenticate(_ *http.Request) (*Identity, error) {
	identity := a.identity
	return &identity, nil
}
