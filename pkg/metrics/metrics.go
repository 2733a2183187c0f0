package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	BookingsCreated     prometheus.Counter
	BookingsCancelled   prometheus.Counter
	BookingsRescheduled prometheus.Counter
}

// New регистрирует и возвращает метрики сервиса.
// serviceName попадает в constant labels, чтобы различать инстансы в общем Prometheus.
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: labels,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request duration in seconds",
				ConstLabels: labels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		BookingsCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name:        "bookings_created_total",
				Help:        "Total number of bookings created",
				ConstLabels: labels,
			},
		),
		BookingsCancelled: promauto.NewCounter(
			prometheus.CounterOpts{
				Name:        "bookings_cancelled_total",
				Help:        "Total number of bookings cancelled",
				ConstLabels: labels,
			},
		),
		BookingsRescheduled: promauto.NewCounter(
			prometheus.CounterOpts{
				Name:        "bookings_rescheduled_total",
				Help:        "Total number of bookings rescheduled",
				ConstLabels: labels,
			},
		),
	}
}
