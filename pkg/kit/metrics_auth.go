package kit

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

const forbiddenKind = "ForbiddenError"

// MetricsAuth requires "Authorization: Bearer <token>". An empty token
// closes the endpoint entirely.
func MetricsAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				WriteError(w, r, http.StatusForbidden, forbiddenKind, "metrics disabled")
				return
			}

			authz := r.Header.Get("Authorization")
			got, ok := strings.CutPrefix(authz, "Bearer ")
			if !ok || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				WriteError(w, r, http.StatusForbidden, forbiddenKind, "invalid metrics token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
