package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// MockAdapter echoes the prompt back after an optional delay.
// Used for development and testing without a Gemini key.
type MockAdapter struct {
	Delay time.Duration
}

func (m *MockAdapter) Name() string { return "Mock" }

func (m *MockAdapter) Generate(ctx context.Context, prompt string) (Reply, error) {
	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return Reply{}, fmt.Errorf("mock: %w", ctx.Err())
		}
	}

	return Reply{Text: strings.TrimSpace(prompt)}, nil
}

func (m *MockAdapter) Available() bool { return true }
