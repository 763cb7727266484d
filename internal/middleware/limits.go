package middleware

import (
	"net/http"
	"strings"
	"time"
)

// MaxBytes limits the request body to the specified number of bytes.
func MaxBytes(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// Timeout bounds handlers with http.TimeoutHandler. Paths under one of the
// exempt prefixes are served directly, since TimeoutHandler cannot flush.
func Timeout(d time.Duration, exempt ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		bounded := http.TimeoutHandler(next, d, `{"error":"request timeout"}`)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, prefix := range exempt {
				if strings.HasPrefix(r.URL.Path, prefix) {
					next.ServeHTTP(w, r)
					return
				}
			}
			bounded.ServeHTTP(w, r)
		})
	}
}
