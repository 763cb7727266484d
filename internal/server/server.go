package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mlorentedev/emailwriter/internal/adapter"
	"github.com/mlorentedev/emailwriter/internal/email"
	"github.com/mlorentedev/emailwriter/internal/handler"
	"github.com/mlorentedev/emailwriter/internal/middleware"
	"github.com/mlorentedev/emailwriter/internal/tool"
)

const maxBodyBytes = 64 * 1024

// Options carries the host-level settings for SetupMux.
type Options struct {
	Model          adapter.ModelInfo
	APIKey         string
	AllowedOrigins []string
	RequestTimeout time.Duration
	Version        string
}

// SetupMux wires handlers with the full middleware chain.
func SetupMux(svc *email.Service, opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Get("/api/health", handler.Health(svc.Model(), opts.Model))
	r.Route("/api/email", func(r chi.Router) {
		r.Post("/generate", handler.Generate(svc))
		r.Post("/summarize", handler.Summarize(svc))
	})
	r.Handle("/metrics", promhttp.Handler())

	mcpServer := tool.NewServer(svc, opts.Version)
	r.Handle("/mcp", mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return mcpServer }, nil))

	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = 65 * time.Second
	}

	return middleware.Chain(r, middleware.Options{
		AllowedOrigins: opts.AllowedOrigins,
		APIKey:         opts.APIKey,
		MaxBodyBytes:   maxBodyBytes,
		Timeout:        timeout,
		TimeoutExempt:  []string{"/mcp"},
	})
}
