package kit

import (
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const (
	internalErrorKind    = "InternalServerError"
	internalErrorMessage = "Something went wrong!"
)

// Recoverer turns a panic into the uniform 500 error body.
func Recoverer(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				log.Error("panic recovered",
					zap.String("request_id", middleware.GetReqID(r.Context())),
					zap.Any("panic", rvr),
					zap.ByteString("stack", debug.Stack()),
				)
				WriteError(w, r, http.StatusInternalServerError, internalErrorKind, internalErrorMessage)
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// Logging writes one access line per request before the request is handled.
// The path includes the raw query string.
func Logging(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Info("request",
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.RequestURI()),
				zap.String("remote", r.RemoteAddr),
			)

			next.ServeHTTP(w, r)
		})
	}
}
