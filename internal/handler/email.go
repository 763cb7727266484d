package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/mlorentedev/emailwriter/internal/adapter"
	"github.com/mlorentedev/emailwriter/internal/prompt"
)

const maxEmailLength = 10000

type replier interface {
	GenerateReply(ctx context.Context, req prompt.ReplyRequest) (adapter.Reply, error)
}

type summarizer interface {
	Summarize(ctx context.Context, req prompt.SummarizeRequest) (adapter.Reply, error)
}

// Generate handles POST /api/email/generate.
func Generate(svc replier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req prompt.ReplyRequest
		if !decode(w, r, &req) || !validEmail(w, req.EmailContent) {
			return
		}

		reply, err := svc.GenerateReply(r.Context(), req)
		if err != nil {
			writeGenerationError(w, err)
			return
		}
		writeReply(w, reply)
	}
}

// Summarize handles POST /api/email/summarize.
func Summarize(svc summarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req prompt.SummarizeRequest
		if !decode(w, r, &req) || !validEmail(w, req.EmailContent) {
			return
		}

		reply, err := svc.Summarize(r.Context(), req)
		if err != nil {
			writeGenerationError(w, err)
			return
		}
		writeReply(w, reply)
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func validEmail(w http.ResponseWriter, content string) bool {
	if strings.TrimSpace(content) == "" {
		writeError(w, http.StatusBadRequest, "emailContent is required")
		return false
	}
	if n := utf8.RuneCountInString(content); n > maxEmailLength {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("emailContent too long: %d characters (max %d)", n, maxEmailLength))
		return false
	}
	return true
}
