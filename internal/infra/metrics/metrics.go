// Package metrics exposes prometheus counters for authentication and password management.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"passwarden/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "passwarden"

// Recorder owns a private registry so independent instances never collide.
type Recorder struct {
	registry *prometheus.Registry

	logins              *prometheus.CounterVec
	registrations       *prometheus.CounterVec
	passwordChanges     *prometheus.CounterVec
	authorizationDenied *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
}

var _ service.MetricsRecorder = (*Recorder)(nil)

// New registers the service counters plus the Go runtime and process collectors.
func New() *Recorder {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Recorder{
		registry: registry,
		logins: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "Login attempts by result.",
		}, []string{"result"}),
		registrations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_total",
			Help:      "Registration attempts by result.",
		}, []string{"result"}),
		passwordChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "password_changes_total",
			Help:      "Committed password changes by kind.",
		}, []string{"kind"}),
		authorizationDenied: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "authorization_denials_total",
			Help:      "Requests rejected by the authorization policy, by operation.",
		}, []string{"operation"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method, route pattern and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

// RecordLogin counts a login attempt.
func (r *Recorder) RecordLogin(result string) {
	r.logins.WithLabelValues(result).Inc()
}

// RecordRegistration counts a registration attempt.
func (r *Recorder) RecordRegistration(result string) {
	r.registrations.WithLabelValues(result).Inc()
}

// RecordPasswordChange counts a committed password change.
func (r *Recorder) RecordPasswordChange(kind string) {
	r.passwordChanges.WithLabelValues(kind).Inc()
}

// RecordAuthorizationDenial counts a 401 or 403 decision.
func (r *Recorder) RecordAuthorizationDenial(operation string) {
	r.authorizationDenied.WithLabelValues(operation).Inc()
}

// ObserveHTTPRequest records the latency of a completed request.
func (r *Recorder) ObserveHTTPRequest(method, route string, status int, latency time.Duration) {
	r.requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(latency.Seconds())
}

// Handler serves the registry in the prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
