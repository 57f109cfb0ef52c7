package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Logging пишет в лог каждый обработанный запрос
func Logging(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)

			next.ServeHTTP(sw, r)

			logger.Info("%s %s - status=%d, bytes=%d, duration=%s, request_id=%s",
				r.Method, r.URL.Path, sw.status, sw.bytes, time.Since(start), GetRequestID(r.Context()))
		})
	}
}
