package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	geminiDefaultBaseURL = "https://generativelanguage.googleapis.com"
	geminiDefaultModel   = "gemini-2.5-flash"

	// maxResponseBytes caps how much of a provider body is read.
	maxResponseBytes = 8 << 20
)

// GeminiAdapter connects to the Gemini generateContent API.
type GeminiAdapter struct {
	BaseURL string
	APIKey  string
	Model   string
	Client  *http.Client
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func (g *GeminiAdapter) Name() string {
	return fmt.Sprintf("Gemini (%s)", g.model())
}

// Generate sends prompt as a single-part request and extracts the reply.
func (g *GeminiAdapter) Generate(ctx context.Context, prompt string) (Reply, error) {
	envelope, err := BuildRequestEnvelope(prompt)
	if err != nil {
		return Reply{}, err
	}

	body, err := g.invoke(ctx, envelope)
	if err != nil {
		return Reply{}, err
	}

	return ExtractReplyText(body)
}

func (g *GeminiAdapter) Available() bool {
	return g.APIKey != ""
}

// Endpoint returns the generateContent URL for the configured model.
func (g *GeminiAdapter) Endpoint() string {
	baseURL := g.BaseURL
	if baseURL == "" {
		baseURL = geminiDefaultBaseURL
	}
	return strings.TrimRight(baseURL, "/") + "/v1beta/models/" + url.PathEscape(g.model()) + ":generateContent"
}

func (g *GeminiAdapter) model() string {
	if g.Model == "" {
		return geminiDefaultModel
	}
	return g.Model
}

// BuildRequestEnvelope wraps prompt in the contents/parts/text shape.
// The encoder escapes backslashes, quotes, newlines and every other control
// character, so decoding the envelope yields prompt unchanged.
func BuildRequestEnvelope(prompt string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	err := enc.Encode(geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: marshal request: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func (g *GeminiAdapter) invoke(ctx context.Context, envelope []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.Endpoint(), bytes.NewReader(envelope))
	if err != nil {
		return nil, fmt.Errorf("gemini: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.APIKey)

	client := g.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini: %w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("gemini: %w: read body: %w", ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp geminiErrorResponse
		if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error.Message == "" {
			return nil, fmt.Errorf("gemini: %w: unexpected status %d", ErrTransport, resp.StatusCode)
		}
		return nil, fmt.Errorf("gemini: %w: status %d: %s", ErrTransport, resp.StatusCode, errResp.Error.Message)
	}

	return body, nil
}
