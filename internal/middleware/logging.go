package middleware

import (
	"net/http"

	"github.com/2beens/calisthenix/internal/auth"

	log "github.com/sirupsen/logrus"
)

func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			log.Tracef(" ====> request [%s] path: [%s] [user: %s] [UA: %s]",
				r.Method, r.URL.Path, auth.UserIDFrom(r.Context()), r.Header.Get("User-Agent"))
		})
	}
}
