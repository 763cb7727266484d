package adapter

import "context"

// Model is the contract the email service talks to. Generate sends a single
// prompt and returns the extracted reply.
type Model interface {
	Name() string
	Generate(ctx context.Context, prompt string) (Reply, error)
	Available() bool
}

// Reply is the outcome of a successful generation. Fallback is set when the
// provider returned no candidates and Text holds the whole response document.
type Reply struct {
	Text     string `json:"text"`
	Fallback bool   `json:"fallback"`
}

// ModelInfo is exposed via GET /api/health.
type ModelInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
}
