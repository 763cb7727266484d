package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/mlorentedev/emailwriter/internal/adapter"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(errorResponse{Error: msg})
}

// writeReply sends the model output as plain text. Fallback replies carry the
// raw provider document and are flagged with X-Model-Fallback.
func writeReply(w http.ResponseWriter, reply adapter.Reply) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if reply.Fallback {
		w.Header().Set("X-Model-Fallback", "true")
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(reply.Text))
}

func writeGenerationError(w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		writeError(w, http.StatusGatewayTimeout, "model did not respond in time")
		return
	}
	writeError(w, http.StatusBadGateway, fmt.Sprintf("generation failed: %v", err))
}

// NotFound and MethodNotAllowed keep router errors in the JSON error envelope.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "not found")
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}
