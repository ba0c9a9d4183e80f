package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/msomdec/user-service/internal/metrics"
)

// statusWriter captures the status code written by the next handler.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// RequestLogger logs every request at the boundary with method, path,
// status and duration. Inner layers never log expected failures.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		slog.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration", time.Since(start),
		)
	})
}

// Metrics records request counts and latencies.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		metrics.HTTPRequests.WithLabelValues(r.Method, strconv.Itoa(sw.status)).Inc()
		metrics.HTTPRequestDuration.Observe(time.Since(start).Seconds())
	})
}
