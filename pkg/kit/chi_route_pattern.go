package kit

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

const unmatchedRoute = "unmatched"

// ChiRoutePattern returns the matched chi route pattern. Requests that hit no
// route share one label so raw paths never leak into metric cardinality.
func ChiRoutePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}
	if rp := rctx.RoutePattern(); rp != "" {
		return rp
	}
	return unmatchedRoute
}
