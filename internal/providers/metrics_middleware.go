package providers

import (
	"net/http"
	"time"
)

// otherEndpoint labels every path outside the registered routes so that
// probing random URLs cannot grow the label set.
const otherEndpoint = "other"

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// MetricsMiddleware records request count and latency per endpoint. Paths
// not listed in endpoints are recorded as "other".
func MetricsMiddleware(metrics MetricsProviderInterface, endpoints []string, next http.Handler) http.Handler {
	known := make(map[string]struct{}, len(endpoints))
	for _, e := range endpoints {
		known[e] = struct{}{}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		endpoint := r.URL.Path
		if _, ok := known[endpoint]; !ok {
			endpoint = otherEndpoint
		}
		metrics.IncRequestsTotal(endpoint, sw.status)
		metrics.ObserveRequestDuration(endpoint, time.Since(start))
	})
}
