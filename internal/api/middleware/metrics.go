package middleware

import (
	"net/http"
	"time"

	"github.com/blaisecz/soulsync/internal/metrics"
)

// Metrics records request counts and latency by route pattern.
func Metrics(rec *metrics.Recorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := newStatusWriter(w)
			start := time.Now()

			next.ServeHTTP(sw, r)

			rec.ObserveHTTP(r.Method, routePattern(r), sw.statusCode, time.Since(start))
		})
	}
}
