package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the board's Prometheus collectors. It implements core.Observer.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	MessagesPosted      *prometheus.CounterVec
	MessagesEvicted     prometheus.Counter
	ProfilesCreated     prometheus.Counter
	Rooms               prometheus.Gauge
}

// New registers collectors on a fresh registry, so several instances can coexist in tests.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "starboard_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "starboard_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		MessagesPosted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "starboard_messages_posted_total",
				Help: "Total number of messages posted, by room",
			},
			[]string{"room"},
		),
		MessagesEvicted: factory.NewCounter(prometheus.CounterOpts{
			Name: "starboard_messages_evicted_total",
			Help: "Total number of messages dropped by the per-room cap",
		}),
		ProfilesCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "starboard_profiles_created_total",
			Help: "Total number of user profiles created",
		}),
		Rooms: factory.NewGauge(prometheus.GaugeOpts{
			Name: "starboard_rooms",
			Help: "Number of rooms that have received messages",
		}),
	}
}

// MessagePosted implements core.Observer.
func (m *Metrics) MessagePosted(room string, evicted int) {
	m.MessagesPosted.WithLabelValues(room).Inc()
	if evicted > 0 {
		m.MessagesEvicted.Add(float64(evicted))
	}
}

// ProfileCreated implements core.Observer.
func (m *Metrics) ProfileCreated() {
	m.ProfilesCreated.Inc()
}

// RoomCreated implements core.Observer.
func (m *Metrics) RoomCreated(string) {
	m.Rooms.Inc()
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
