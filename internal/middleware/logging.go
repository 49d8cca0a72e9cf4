package middleware

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			entry := log.WithFields(log.Fields{
				"method": r.Method,
				"path":   r.URL.Path,
				"ua":     r.Header.Get("User-Agent"),
			})
			if key := r.Header.Get("Idempotency-Key"); key != "" {
				entry = entry.WithField("idempotency_key", key)
			}

			entry.Trace(" ====> request")
			next.ServeHTTP(w, r)
			entry.WithField("took", time.Since(start).String()).Trace(" <==== request done")
		})
	}
}
