package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-коллекторов сервиса
// Все методы безопасны для nil-получателя: если метрики выключены, вызовы ничего не делают
type Metrics struct {
	service string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbQueryErrors   *prometheus.CounterVec
	dbConnections   *prometheus.GaugeVec

	bookingDecisions *prometheus.CounterVec
	mailsSent        *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegistry создает метрики в указанном реестре
func NewWithRegistry(reg prometheus.Registerer, serviceName string) *Metrics {
	m := &Metrics{
		service: serviceName,
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"service", "operation"}),
		dbQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Total number of failed database queries",
		}, []string{"service", "operation"}),
		dbConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections",
			Help: "Database connection pool state",
		}, []string{"service", "state"}),
		bookingDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_decisions_total",
			Help: "Booking conflict resolver decisions by outcome",
		}, []string{"service", "outcome"}),
		mailsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "otp_mails_total",
			Help: "OTP mails by delivery result",
		}, []string{"service", "result"}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueryDuration,
		m.dbQueryErrors,
		m.dbConnections,
		m.bookingDecisions,
		m.mailsSent,
	)

	return m
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(m.service, method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(m.service, method, route).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует выполненный запрос к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(m.service, operation).Observe(duration.Seconds())
	if err != nil {
		m.dbQueryErrors.WithLabelValues(m.service, operation).Inc()
	}
}

// SetDBPoolStats обновляет состояние пула соединений
func (m *Metrics) SetDBPoolStats(stats sql.DBStats) {
	if m == nil {
		return
	}
	m.dbConnections.WithLabelValues(m.service, "open").Set(float64(stats.OpenConnections))
	m.dbConnections.WithLabelValues(m.service, "in_use").Set(float64(stats.InUse))
	m.dbConnections.WithLabelValues(m.service, "idle").Set(float64(stats.Idle))
}

// IncBookingDecision учитывает решение резолвера конфликтов (accepted / rejected / invalid)
func (m *Metrics) IncBookingDecision(outcome string) {
	if m == nil {
		return
	}
	m.bookingDecisions.WithLabelValues(m.service, outcome).Inc()
}

// IncMail учитывает попытку отправки OTP письма (sent / failed)
func (m *Metrics) IncMail(result string) {
	if m == nil {
		return
	}
	m.mailsSent.WithLabelValues(m.service, result).Inc()
}
