package metrics

import (
	"database/sql"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "expense_manager_"

	resultSuccess  = "success"
	resultNotFound = "not_found"
	resultConflict = "conflict"
	resultError    = "error"
)

var (
	registerOnce sync.Once

	ledgerOperations       *prometheus.CounterVec
	ledgerOperationLatency *prometheus.HistogramVec

	httpRequests       *prometheus.CounterVec
	httpRequestLatency *prometheus.HistogramVec
)

// Init registers the service metrics and, when db is non-nil, the DB-backed
// row-count gauges. Safe to call more than once; only the first call counts.
func Init(db *sql.DB, logger *log.Logger) {
	registerOnce.Do(func() {
		ledgerOperations = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "ledger_operations_total",
				Help: "Total ledger and account operations by operation and result",
			},
			[]string{"operation", "result"},
		)
		ledgerOperationLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "ledger_operation_latency_seconds",
				Help:    "Ledger and account operation latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "result"},
		)

		httpRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "http_requests_total",
				Help: "Total HTTP requests by method and status",
			},
			[]string{"method", "status"},
		)
		httpRequestLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "http_request_latency_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		)

		prometheus.MustRegister(
			ledgerOperations,
			ledgerOperationLatency,
			httpRequests,
			httpRequestLatency,
		)

		if db != nil {
			registerDBMetrics(db, logger)
		}
	})
}

// ObserveOperation records one service operation.
func ObserveOperation(operation, result string, duration time.Duration) {
	if operation == "" {
		operation = "unknown"
	}
	if result == "" {
		result = resultSuccess
	}
	if ledgerOperations != nil {
		ledgerOperations.WithLabelValues(operation, result).Inc()
	}
	if ledgerOperationLatency != nil {
		ledgerOperationLatency.WithLabelValues(operation, result).Observe(duration.Seconds())
	}
}

// ObserveHTTPRequest records one served request.
func ObserveHTTPRequest(method string, status int, duration time.Duration) {
	if status == 0 {
		status = 200
	}
	if httpRequests != nil {
		httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	}
	if httpRequestLatency != nil {
		httpRequestLatency.WithLabelValues(method).Observe(duration.Seconds())
	}
}

// Exported result labels for callers.
const (
	ResultSuccess  = resultSuccess
	ResultNotFound = resultNotFound
	ResultConflict = resultConflict
	ResultError    = resultError
)
