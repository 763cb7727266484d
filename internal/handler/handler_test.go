package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mlorentedev/emailwriter/internal/adapter"
	"github.com/mlorentedev/emailwriter/internal/email"
	"github.com/mlorentedev/emailwriter/internal/prompt"
)

type stubService struct {
	reply adapter.Reply
	err   error
}

func (s *stubService) GenerateReply(ctx context.Context, req prompt.ReplyRequest) (adapter.Reply, error) {
	return s.reply, s.err
}

func (s *stubService) Summarize(ctx context.Context, req prompt.SummarizeRequest) (adapter.Reply, error) {
	return s.reply, s.err
}

func mockService() *email.Service {
	return email.NewService(&adapter.MockAdapter{}, time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHandleHealth(t *testing.T) {
	info := adapter.ModelInfo{ID: "mock", Name: "Mock (dev)", Provider: "mock"}

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()

	Health(&adapter.MockAdapter{}, info).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status: got %d, want %d", w.Code, http.StatusOK)
	}

	var resp healthResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("status: got %q, want %q", resp.Status, "ok")
	}
	if resp.Model.ID != "mock" {
		t.Errorf("model id: got %q, want %q", resp.Model.ID, "mock")
	}
	if !resp.Model.Available {
		t.Error("mock model: got unavailable, want available")
	}
}

func TestHandleHealthUnavailableGemini(t *testing.T) {
	info := adapter.ModelInfo{ID: "gemini-2.5-flash", Name: "Gemini", Provider: "gemini"}

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()

	Health(&adapter.GeminiAdapter{Model: "gemini-2.5-flash"}, info).ServeHTTP(w, req)

	var resp healthResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Model.Available {
		t.Error("gemini: got available, want unavailable")
	}
	if resp.Model.Reason != "no API key" {
		t.Errorf("gemini reason: got %q, want %q", resp.Model.Reason, "no API key")
	}
}

func TestHandleGenerate(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
		wantBody string
	}{
		{
			name:     "formal tone",
			body:     `{"emailContent":"Can we meet Friday?","tone":"formal"}`,
			wantCode: http.StatusOK,
			wantBody: "Generate a professional email reply for the following email. Use a formal tone.\n\nOriginal Email:\nCan we meet Friday?",
		},
		{
			name:     "no tone",
			body:     `{"emailContent":"Can we meet Friday?"}`,
			wantCode: http.StatusOK,
			wantBody: "Generate a professional email reply for the following email.\n\nOriginal Email:\nCan we meet Friday?",
		},
		{
			name:     "null tone",
			body:     `{"emailContent":"Can we meet Friday?","tone":null}`,
			wantCode: http.StatusOK,
			wantBody: "Generate a professional email reply for the following email.\n\nOriginal Email:\nCan we meet Friday?",
		},
		{
			name:     "empty email",
			body:     `{"emailContent":"  ","tone":"formal"}`,
			wantCode: http.StatusBadRequest,
			wantBody: "emailContent is required",
		},
		{
			name:     "invalid json",
			body:     `{invalid`,
			wantCode: http.StatusBadRequest,
			wantBody: "invalid JSON body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/email/generate", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			Generate(mockService()).ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Errorf("status: got %d, want %d", w.Code, tt.wantCode)
			}
			if !strings.Contains(w.Body.String(), tt.wantBody) {
				t.Errorf("body: got %q, want to contain %q", w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestHandleGeneratePlainText(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/email/generate", strings.NewReader(`{"emailContent":"hi"}`))
	w := httptest.NewRecorder()

	Generate(&stubService{reply: adapter.Reply{Text: "Hello"}}).ServeHTTP(w, req)

	if got := w.Header().Get("Content-Type"); got != "text/plain; charset=utf-8" {
		t.Errorf("Content-Type: got %q", got)
	}
	if w.Body.String() != "Hello" {
		t.Errorf("body: got %q, want %q", w.Body.String(), "Hello")
	}
	if got := w.Header().Get("X-Model-Fallback"); got != "" {
		t.Errorf("X-Model-Fallback: got %q, want empty", got)
	}
}

func TestHandleSummarize(t *testing.T) {
	tests := []struct {
		name       string
		length     any
		descriptor string
	}{
		{"default", nil, "a short"},
		{"medium", "medium", "a medium-length"},
		{"long upper", "LONG", "a detailed"},
		{"unknown", "novel", "a short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := map[string]any{"emailContent": "Budget approved."}
			if tt.length != nil {
				payload["summaryLength"] = tt.length
			}
			body, _ := json.Marshal(payload)

			req := httptest.NewRequest(http.MethodPost, "/api/email/summarize", bytes.NewReader(body))
			w := httptest.NewRecorder()

			Summarize(mockService()).ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("status: got %d, want %d", w.Code, http.StatusOK)
			}
			want := "Summarize the following email into " + tt.descriptor + " clear bullet-points"
			if !strings.HasPrefix(w.Body.String(), want) {
				t.Errorf("body: got %q, want prefix %q", w.Body.String(), want)
			}
		})
	}
}

func TestHandleEmailTooLong(t *testing.T) {
	t.Run("over limit", func(t *testing.T) {
		body, _ := json.Marshal(prompt.SummarizeRequest{EmailContent: strings.Repeat("a", maxEmailLength+1)})
		req := httptest.NewRequest(http.MethodPost, "/api/email/summarize", bytes.NewReader(body))
		w := httptest.NewRecorder()

		Summarize(mockService()).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status: got %d, want %d", w.Code, http.StatusBadRequest)
		}
		var resp errorResponse
		json.NewDecoder(w.Body).Decode(&resp)
		if !strings.Contains(resp.Error, "too long") {
			t.Errorf("error: got %q, want to contain 'too long'", resp.Error)
		}
	})

	t.Run("at limit counts characters", func(t *testing.T) {
		body, _ := json.Marshal(prompt.ReplyRequest{EmailContent: strings.Repeat("é", maxEmailLength)})
		req := httptest.NewRequest(http.MethodPost, "/api/email/generate", bytes.NewReader(body))
		w := httptest.NewRecorder()

		Generate(mockService()).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("status: got %d, want %d", w.Code, http.StatusOK)
		}
	})
}

func TestHandleGenerationErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"transport", fmt.Errorf("reply: gemini: %w: unexpected status 500", adapter.ErrTransport), http.StatusBadGateway, "model request failed"},
		{"parse", fmt.Errorf("reply: gemini: %w: eof", adapter.ErrParse), http.StatusBadGateway, "failed to parse model response"},
		{"shape", fmt.Errorf("reply: gemini: %w: parts missing", adapter.ErrShape), http.StatusBadGateway, "unexpected model response shape"},
		{"timeout", fmt.Errorf("reply: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, "did not respond in time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/email/generate", strings.NewReader(`{"emailContent":"hi"}`))
			w := httptest.NewRecorder()

			Generate(&stubService{err: tt.err}).ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Errorf("status: got %d, want %d", w.Code, tt.wantCode)
			}
			var resp errorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !strings.Contains(resp.Error, tt.wantMsg) {
				t.Errorf("error: got %q, want to contain %q", resp.Error, tt.wantMsg)
			}
		})
	}
}

func TestHandleFallbackHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/email/summarize", strings.NewReader(`{"emailContent":"hi"}`))
	w := httptest.NewRecorder()

	Summarize(&stubService{reply: adapter.Reply{Text: `{"candidates":[]}`, Fallback: true}}).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status: got %d, want %d", w.Code, http.StatusOK)
	}
	if got := w.Header().Get("X-Model-Fallback"); got != "true" {
		t.Errorf("X-Model-Fallback: got %q, want %q", got, "true")
	}
	if w.Body.String() != `{"candidates":[]}` {
		t.Errorf("body: got %q", w.Body.String())
	}
}
