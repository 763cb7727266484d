package adapter

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMockAdapterGenerate(t *testing.T) {
	m := &MockAdapter{}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"echoes prompt", "Summarize this", "Summarize this"},
		{"trims whitespace", "  hello world \n", "hello world"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Generate(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Text != tt.want {
				t.Errorf("got %q, want %q", got.Text, tt.want)
			}
			if got.Fallback {
				t.Error("mock reply should never be a fallback")
			}
		})
	}
}

func TestMockAdapterContextCancel(t *testing.T) {
	m := &MockAdapter{Delay: 5 * time.Second}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Generate(ctx, "hello")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestMockAdapterAvailable(t *testing.T) {
	m := &MockAdapter{}
	if !m.Available() {
		t.Error("mock adapter should always be available")
	}
}

func TestMockAdapterName(t *testing.T) {
	m := &MockAdapter{}
	if m.Name() != "Mock" {
		t.Errorf("got %q, want %q", m.Name(), "Mock")
	}
}
