package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus метрик сервиса
type Metrics struct {
	// HTTP метрики
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Метрики базы данных
	DBQueryDuration   *prometheus.HistogramVec
	DBConnectionsOpen *prometheus.GaugeVec
	DBConnectionsIdle *prometheus.GaugeVec
	DBConnectionsUsed *prometheus.GaugeVec

	// Доменные метрики
	AppointmentsTotal   *prometheus.CounterVec
	SlotResolutionTotal *prometheus.CounterVec
	BackendCallsTotal   *prometheus.CounterVec
	WebhookEventsTotal  *prometheus.CounterVec
	OutboundCallsTotal  *prometheus.CounterVec
}

// New создает и регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation"}),

		DBConnectionsOpen: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_open",
			Help:        "Number of open database connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBConnectionsIdle: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_idle",
			Help:        "Number of idle database connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBConnectionsUsed: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_in_use",
			Help:        "Number of database connections in use",
			ConstLabels: constLabels,
		}, []string{"db"}),

		AppointmentsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "appointments_total",
			Help:        "Total number of appointment operations",
			ConstLabels: constLabels,
		}, []string{"operation", "result"}),

		SlotResolutionTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "slot_resolutions_total",
			Help:        "Total number of availability resolutions",
			ConstLabels: constLabels,
		}, []string{"result"}),

		BackendCallsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "scheduling_backend_calls_total",
			Help:        "Total number of scheduling backend calls",
			ConstLabels: constLabels,
		}, []string{"provider", "operation", "result"}),

		WebhookEventsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "webhook_events_total",
			Help:        "Total number of inbound webhook events",
			ConstLabels: constLabels,
		}, []string{"provider", "event", "result"}),

		OutboundCallsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "outbound_calls_total",
			Help:        "Total number of outbound voice calls",
			ConstLabels: constLabels,
		}, []string{"provider", "result"}),
	}
}
