package middleware

import (
	"io"
	"net/http"
)

// MaxRequestBodyBytes bounds request bodies, a workout submission is plain text and
// never comes close to it.
const MaxRequestBodyBytes = 1 << 20

// LimitAndDrainRequest caps the request body to maxBodyBytes, and drains and closes
// whatever the handler left unread. Reads past the cap fail, so decoding an oversized
// submission ends up as a bad request.
func LimitAndDrainRequest(maxBodyBytes int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil && maxBodyBytes > 0 {
				r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
			}
			next.ServeHTTP(w, r)
			if r.Body != nil {
				_, _ = io.Copy(io.Discard, r.Body)
				_ = r.Body.Close()
			}
		})
	}
}
