package products

import (
	"crypto/subtle"
	"net/http"

	"go.uber.org/zap"
)

const APIKeyHeader = "x-api-key"

// RequireAPIKey rejects requests whose x-api-key header is not exactly key.
func RequireAPIKey(key string, log *zap.Logger) func(http.Handler) http.Handler {
	want := []byte(key)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := []byte(r.Header.Get(APIKeyHeader))
			if len(want) == 0 || subtle.ConstantTimeCompare(got, want) != 1 {
				writeError(w, r, log, errInvalidAPIKey)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
