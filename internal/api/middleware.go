package api

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"relief-route-service/internal/metrics"
	"relief-route-service/internal/platform/obs"
)

// statusWriter captures the final HTTP status code and number of bytes written.
// This helps distinguish "handler returned 200" from "client received a response".
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Record implicit 200 responses when handlers write without calling WriteHeader.
func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// instrumentMiddleware logs end-to-end request duration and response size,
// and feeds the Prometheus request counters and histograms.
func instrumentMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		sw := &statusWriter{
			ResponseWriter: w,
			status:         0,
		}

		// Tag downstream operation timings with a per-request id.
		ctx := obs.WithRequestID(r.Context(), uuid.New().String())
		next.ServeHTTP(sw, r.WithContext(ctx))

		elapsed := time.Since(start)
		status := strconv.Itoa(sw.status)

		metrics.HTTPRequests.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		metrics.HTTPDuration.WithLabelValues(r.Method, r.URL.Path, status).Observe(elapsed.Seconds())

		log.Printf(
			"method=%s path=%s status=%d bytes=%d dur=%dms",
			r.Method, r.URL.RequestURI(), sw.status, sw.bytes, elapsed.Milliseconds(),
		)
	})
}
