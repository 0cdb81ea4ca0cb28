package kit

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	labelMethod = "method"
	labelRoute  = "route"
	labelStatus = "status"
)

type Metrics struct {
	Requests *prometheus.CounterVec
	Latency  *prometheus.HistogramVec
	InFlight prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer, service string) *Metrics {
	constLabels := prometheus.Labels{"service": service}

	m := &Metrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total HTTP requests",
				ConstLabels: constLabels,
			},
			[]string{labelMethod, labelRoute, labelStatus},
		),
		Latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP latency",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{labelMethod, labelRoute},
		),
		InFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name:        "http_requests_in_flight",
				Help:        "HTTP requests currently being served",
				ConstLabels: constLabels,
			},
		),
	}

	reg.MustRegister(m.Requests, m.Latency, m.InFlight)
	return m
}

func (m *Metrics) Middleware(routeLabel func(*http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			m.InFlight.Inc()
			defer m.InFlight.Dec()

			start := time.Now()
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			route := routeLabel(r)
			m.Latency.WithLabelValues(r.Method, route).
				Observe(time.Since(start).Seconds())

			m.Requests.WithLabelValues(r.Method, route, strconv.Itoa(status)).
				Inc()
		})
	}
}
