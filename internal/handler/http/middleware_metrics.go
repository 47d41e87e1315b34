package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// withMetrics records a request counter and duration observation for
// every completed request, labelled with the chi route pattern so that
// /items/4 and /items/7 collapse into one series.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		mw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(mw, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = r.URL.Path
		}

		status := mw.status
		if status == 0 {
			status = http.StatusOK
		}

		h.metrics.ObserveHTTPRequest(r.Method, route, status, time.Since(start))
	})
}
