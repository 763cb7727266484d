package middleware

import (
	"net/http"
	"time"
)

// Options configures the middleware stack.
type Options struct {
	AllowedOrigins []string
	APIKey         string
	MaxBodyBytes   int64
	Timeout        time.Duration
	// TimeoutExempt lists path prefixes served without the request timeout.
	TimeoutExempt []string
}

// Chain wraps the handler with the full middleware stack.
// Order: CORS → RequestID → Logging → Metrics → APIKey → MaxBytes → Timeout → router
func Chain(handler http.Handler, opts Options) http.Handler {
	h := handler
	h = Timeout(opts.Timeout, opts.TimeoutExempt...)(h)
	h = MaxBytes(opts.MaxBodyBytes)(h)
	h = APIKey(opts.APIKey)(h)
	h = Metrics(h)
	h = Logging(h)
	h = RequestID(h)
	h = CORS(opts.AllowedOrigins)(h)
	return h
}
