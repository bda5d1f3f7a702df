package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds every Prometheus collector the service exports.
type Metrics struct {
	// Requests served, by route template, method and status
	Requests *prometheus.CounterVec

	RequestLatency *prometheus.HistogramVec

	// Stored records per entity kind, refreshed by the inventory job
	Inventory *prometheus.GaugeVec

	// Messages handed to the queue, by topic and outcome
	Messages *prometheus.CounterVec
}

// New registers all collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fleetdesk_http_requests_total",
			Help: "Total HTTP requests by route, method and status",
		}, []string{"route", "method", "status"}),

		RequestLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fleetdesk_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route and method",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"route", "method"}),

		Inventory: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "fleetdesk_records",
			Help: "Number of stored records by kind",
		}, []string{"kind"}),

		Messages: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fleetdesk_messages_total",
			Help: "Messages produced to the queue by topic and result",
		}, []string{"topic", "result"}),
	}
}

func (m *Metrics) ObserveRequest(route, method string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.RequestLatency.WithLabelValues(route, method).Observe(d.Seconds())
}

func (m *Metrics) SetInventory(kind string, count int64) {
	if m != nil {
		m.Inventory.WithLabelValues(kind).Set(float64(count))
	}
}

// IncrementMessages counts a produce attempt. ok is false when delivery failed.
func (m *Metrics) IncrementMessages(topic string, ok bool) {
	if m == nil {
		return
	}

	result := "delivered"
	if !ok {
		result = "failed"
	}
	m.Messages.WithLabelValues(topic, result).Inc()
}
