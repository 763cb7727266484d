// Package email implements the reply and summarize operations on top of a
// model gateway.
package email

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/mlorentedev/emailwriter/internal/adapter"
	"github.com/mlorentedev/emailwriter/internal/metrics"
	"github.com/mlorentedev/emailwriter/internal/prompt"
)

const (
	OpReply     = "reply"
	OpSummarize = "summarize"
)

// Service builds prompts and sends them to the model. It holds no per-request
// state and is safe for concurrent use.
type Service struct {
	model   adapter.Model
	timeout time.Duration
	logger  *slog.Logger
}

// NewService returns a Service that bounds every model call by timeout.
// A zero timeout leaves the caller's context as the only bound.
func NewService(model adapter.Model, timeout time.Duration, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{model: model, timeout: timeout, logger: logger}
}

// Model returns the gateway the service sends prompts to.
func (s *Service) Model() adapter.Model {
	return s.model
}

// GenerateReply drafts a reply to req.EmailContent.
func (s *Service) GenerateReply(ctx context.Context, req prompt.ReplyRequest) (adapter.Reply, error) {
	return s.run(ctx, OpReply, req.EmailContent, prompt.Reply(req))
}

// Summarize condenses req.EmailContent into bullet points and a short summary.
func (s *Service) Summarize(ctx context.Context, req prompt.SummarizeRequest) (adapter.Reply, error) {
	return s.run(ctx, OpSummarize, req.EmailContent, prompt.Summarize(req.EmailContent, req.Length()))
}

func (s *Service) run(ctx context.Context, op, emailContent, p string) (adapter.Reply, error) {
	metrics.InputChars.WithLabelValues(op).Observe(float64(utf8.RuneCountInString(emailContent)))

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	reply, err := s.model.Generate(ctx, p)
	elapsed := time.Since(start)
	metrics.GenerationDuration.WithLabelValues(op).Observe(elapsed.Seconds())

	if err != nil {
		kind := adapter.Kind(err)
		metrics.GatewayErrors.WithLabelValues(kind).Inc()
		s.logger.Warn("generation failed",
			"operation", op,
			"model", s.model.Name(),
			"kind", kind,
			"elapsed_ms", elapsed.Milliseconds(),
			"error", err,
		)
		return adapter.Reply{}, fmt.Errorf("%s: %w", op, err)
	}

	if reply.Fallback {
		metrics.FallbackTotal.Inc()
	}
	s.logger.Info("generation",
		"operation", op,
		"model", s.model.Name(),
		"elapsed_ms", elapsed.Milliseconds(),
		"fallback", reply.Fallback,
	)
	return reply, nil
}
