package metrics

import (
	"database/sql"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Результаты операций для счётчиков бронирований и отмен
const (
	ResultReserved        = "reserved"
	ResultSlotTaken       = "slot_taken"
	ResultRejected        = "rejected"
	ResultCancelled       = "cancelled"
	ResultPolicyViolation = "policy_violation"
	ResultNotFound        = "not_found"
	ResultUnauthorized    = "unauthorized"
	ResultError           = "error"
)

// Metrics набор метрик сервиса
// Все методы безопасны для nil-получателя, чтобы метрики можно было отключить в конфиге
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration   *prometheus.HistogramVec
	dbOpenConnections prometheus.Gauge
	dbInUse           prometheus.Gauge
	dbIdle            prometheus.Gauge
	dbWaitCount       prometheus.Gauge

	bookingsTotal      *prometheus.CounterVec
	cancellationsTotal *prometheus.CounterVec
	slotsGenerated     prometheus.Histogram
}

// New создает метрики и регистрирует их в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики и регистрирует их в переданном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	ns := namespace(serviceName)

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ns,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ns,
			Name:      "db_query_duration_seconds",
			Help:      "Database query duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		dbOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "db_open_connections",
			Help:      "Number of established connections",
		}),
		dbInUse: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "db_in_use_connections",
			Help:      "Number of connections currently in use",
		}),
		dbIdle: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "db_idle_connections",
			Help:      "Number of idle connections",
		}),
		dbWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "db_wait_count",
			Help:      "Total number of connections waited for",
		}),
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "bookings_total",
			Help:      "Booking attempts by result",
		}, []string{"result"}),
		cancellationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "cancellations_total",
			Help:      "Cancellation attempts by result",
		}, []string{"result"}),
		slotsGenerated: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: ns,
			Name:      "available_slots_returned",
			Help:      "Number of available slots returned per query",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueryDuration,
		m.dbOpenConnections,
		m.dbInUse,
		m.dbIdle,
		m.dbWaitCount,
		m.bookingsTotal,
		m.cancellationsTotal,
		m.slotsGenerated,
	)

	return m
}

// ObserveHTTP фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTP(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, path, statusLabel(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetPoolStats обновляет метрики пула соединений
func (m *Metrics) SetPoolStats(stats sql.DBStats) {
	if m == nil {
		return
	}
	m.dbOpenConnections.Set(float64(stats.OpenConnections))
	m.dbInUse.Set(float64(stats.InUse))
	m.dbIdle.Set(float64(stats.Idle))
	m.dbWaitCount.Set(float64(stats.WaitCount))
}

// IncBooking увеличивает счётчик попыток бронирования
func (m *Metrics) IncBooking(result string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(result).Inc()
}

// IncCancellation увеличивает счётчик попыток отмены
func (m *Metrics) IncCancellation(result string) {
	if m == nil {
		return
	}
	m.cancellationsTotal.WithLabelValues(result).Inc()
}

// ObserveSlots фиксирует количество слотов в ответе
func (m *Metrics) ObserveSlots(count int) {
	if m == nil {
		return
	}
	m.slotsGenerated.Observe(float64(count))
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}

// namespace приводит имя сервиса к допустимому виду для Prometheus
func namespace(serviceName string) string {
	replacer := strings.NewReplacer("-", "_", ".", "_", " ", "_")
	return strings.ToLower(replacer.Replace(serviceName))
}
