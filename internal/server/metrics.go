package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tartampluch/go-bikram-sambat/internal/config"
)

type metrics struct {
	requests    *prometheus.CounterVec
	conversions *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: config.MetricNamespace,
				Name:      config.MetricRequests,
				Help:      config.MetricRequestsHelp,
			},
			[]string{config.MetricLabelRoute, config.MetricLabelCode},
		),
		conversions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: config.MetricNamespace,
				Name:      config.MetricConversions,
				Help:      config.MetricConversionsHelp,
			},
			[]string{config.MetricLabelDir, config.MetricLabelResult},
		),
	}
	reg.MustRegister(m.requests, m.conversions)
	return m
}

// middleware counts requests by route pattern, so /convert/ad/{date} is one
// series regardless of the date asked for.
func (m *metrics) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := config.RouteUnmatched
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	})
}

func (m *metrics) conversion(direction, result string) {
	m.conversions.WithLabelValues(direction, result).Inc()
}
