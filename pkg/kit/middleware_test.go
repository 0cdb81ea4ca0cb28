package kit

import (
	"encoding/json"
	"strings"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogging_OneLineBeforeHandler(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core)

	var linesSeenByHandler int
	h := chimw.RequestID(Logging(log)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		linesSeenByHandler = logs.Len()
		w.WriteHeader(http.StatusTeapot)
	})))

	req := httptest.NewRequest(http.MethodGet, "/api/products?category=kitchen&page=2", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)

	if linesSeenByHandler != 1 {
		t.Fatalf("lines logged before handler=%d", linesSeenByHandler)
	}
	if logs.Len() != 1 {
		t.Fatalf("lines=%d", logs.Len())
	}

	entry := logs.All()[0]
	fields := entry.ContextMap()
	if fields["method"] != http.MethodGet {
		t.Fatalf("method=%v", fields["method"])
	}
	if fields["path"] != "/api/products?category=kitchen&page=2" {
		t.Fatalf("path=%v", fields["path"])
	}
	if fields["request_id"] == "" {
		t.Fatalf("empty request_id")
	}
	if entry.Time.IsZero() {
		t.Fatalf("zero timestamp")
	}
}

func TestRecoverer_WritesInternalError(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)

	h := Recoverer(zap.New(core))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d", rec.Code)
	}

	var body ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v body=%s", err, rec.Body.String())
	}
	if body.Error != "InternalServerError" || body.Message != "Something went wrong!" {
		t.Fatalf("body=%+v", body)
	}
	if logs.FilterMessage("panic recovered").Len() != 1 {
		t.Fatalf("panic not logged")
	}
}

func TestMetricsAuth(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	tests := []struct {
		name   string
		token  string
		authz  string
		status int
	}{
		{name: "no token configured", token: "", authz: "Bearer anything", status: http.StatusForbidden},
		{name: "missing header", token: "t0k", authz: "", status: http.StatusForbidden},
		{name: "wrong scheme", token: "t0k", authz: "Basic t0k", status: http.StatusForbidden},
		{name: "wrong token", token: "t0k", authz: "Bearer nope", status: http.StatusForbidden},
		{name: "valid", token: "t0k", authz: "Bearer t0k", status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
			if tt.authz != "" {
				req.Header.Set("Authorization", tt.authz)
			}
			rec := httptest.NewRecorder()
			MetricsAuth(tt.token)(ok).ServeHTTP(rec, req)

			if rec.Code != tt.status {
				t.Fatalf("status=%d want=%d", rec.Code, tt.status)
			}
		})
	}
}

func TestMetrics_CountsByRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg, "products")

	r := chi.NewRouter()
	r.Use(m.Middleware(ChiRoutePattern))
	r.Get("/items/{id}", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("ok")) })

	for _, p := range []string{"/items/1", "/items/2", "/missing"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}

	rec := httptest.NewRecorder()
	promhttp.HandlerFor(reg, promhttp.HandlerOpts{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	out := rec.Body.String()

	for _, want := range []string{
		`http_requests_total{method="GET",route="/items/{id}",service="products",status="200"} 2`,
		`http_requests_total{method="GET",route="unmatched",service="products",status="404"} 1`,
		`http_requests_in_flight{service="products"} 0`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}
