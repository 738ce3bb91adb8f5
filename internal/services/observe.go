package services

import (
	"time"

	"github.com/expensemanager/backend/internal/observability/metrics"
)

func resultOf(err error) string {
	switch {
	case err == nil:
		return metrics.ResultSuccess
	case IsNotFound(err):
		return metrics.ResultNotFound
	case IsConflict(err):
		return metrics.ResultConflict
	}
	return metrics.ResultError
}

// observe records a write operation that began at start.
func observe(operation string, start time.Time, err error) {
	metrics.ObserveOperation(operation, resultOf(err), time.Since(start))
}
