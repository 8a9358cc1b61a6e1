package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/blaisecz/soulsync/pkg/problem"
)

// AdminTokenHeader carries the shared admin secret.
const AdminTokenHeader = "X-Admin-Token"

// AdminToken rejects requests whose X-Admin-Token does not match token. An
// empty token disables the guarded routes entirely.
func AdminToken(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				problem.Forbidden("Admin API is disabled").Write(w)
				return
			}
			got := r.Header.Get(AdminTokenHeader)
			if got == "" {
				problem.Unauthorized("Missing " + AdminTokenHeader + " header").Write(w)
				return
			}
			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				problem.Forbidden("Invalid admin token").Write(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
