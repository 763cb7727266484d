package middleware

import (
	"net/http"
	"strconv"

	"github.com/mlorentedev/emailwriter/internal/metrics"
)

// routes are the paths recorded verbatim. Anything else is labelled "other"
// so scanners cannot grow the series count.
var routes = map[string]bool{
	"/api/health":          true,
	"/api/email/generate":  true,
	"/api/email/summarize": true,
	"/metrics":             true,
	"/mcp":                 true,
}

// Metrics records request count by method, route, and status code.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		metrics.RequestsTotal.WithLabelValues(r.Method, routeLabel(r.URL.Path), strconv.Itoa(sw.status)).Inc()
	})
}

func routeLabel(path string) string {
	if routes[path] {
		return path
	}
	return "other"
}
