package tool

import (
	"context"
	"errors"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mlorentedev/emailwriter/internal/prompt"
)

var errEmptyEmail = errors.New("email_content is required")

type GenerateReplyRequest struct {
	EmailContent string `json:"email_content" jsonschema:"the email to reply to"`
	Tone         string `json:"tone,omitempty" jsonschema:"optional tone such as formal or friendly"`
}

type SummarizeRequest struct {
	EmailContent  string `json:"email_content" jsonschema:"the email to summarize"`
	SummaryLength string `json:"summary_length,omitempty" jsonschema:"short, medium or long; defaults to short"`
}

type TextResponse struct {
	Text     string `json:"text" jsonschema:"the generated text"`
	Fallback bool   `json:"fallback" jsonschema:"true when the model returned no candidates and text is the raw response"`
}

type EmailTools struct {
	svc emailSvc
}

func (t *EmailTools) GenerateReply(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GenerateReplyRequest,
) (*mcp.CallToolResult, TextResponse, error) {
	if strings.TrimSpace(input.EmailContent) == "" {
		return nil, TextResponse{}, errEmptyEmail
	}

	req := prompt.ReplyRequest{EmailContent: input.EmailContent}
	if input.Tone != "" {
		req.Tone = &input.Tone
	}

	reply, err := t.svc.GenerateReply(ctx, req)
	if err != nil {
		return nil, TextResponse{}, err
	}
	return nil, TextResponse{Text: reply.Text, Fallback: reply.Fallback}, nil
}

func (t *EmailTools) Summarize(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SummarizeRequest,
) (*mcp.CallToolResult, TextResponse, error) {
	if strings.TrimSpace(input.EmailContent) == "" {
		return nil, TextResponse{}, errEmptyEmail
	}

	req := prompt.SummarizeRequest{EmailContent: input.EmailContent}
	if input.SummaryLength != "" {
		req.SummaryLength = &input.SummaryLength
	}

	reply, err := t.svc.Summarize(ctx, req)
	if err != nil {
		return nil, TextResponse{}, err
	}
	return nil, TextResponse{Text: reply.Text, Fallback: reply.Fallback}, nil
}
