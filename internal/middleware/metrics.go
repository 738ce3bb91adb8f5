package middleware

import (
	"net/http"
	"time"

	"github.com/expensemanager/backend/internal/observability/metrics"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Metrics records request count and latency by method and status.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		metrics.ObserveHTTPRequest(r.Method, ww.Status(), time.Since(start))
	})
}
