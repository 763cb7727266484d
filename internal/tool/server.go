// Package tool exposes the email operations as MCP tools.
package tool

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mlorentedev/emailwriter/internal/adapter"
	"github.com/mlorentedev/emailwriter/internal/prompt"
)

type emailSvc interface {
	GenerateReply(ctx context.Context, req prompt.ReplyRequest) (adapter.Reply, error)
	Summarize(ctx context.Context, req prompt.SummarizeRequest) (adapter.Reply, error)
}

// NewServer creates an MCP server with the reply and summarize tools.
func NewServer(svc emailSvc, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "emailwriter", Version: version}, nil)

	t := &EmailTools{svc: svc}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_reply",
		Description: "Draft a professional reply to an email, optionally in a given tone",
	}, t.GenerateReply)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "summarize_email",
		Description: "Summarize an email into bullet points followed by a 1-2 sentence summary",
	}, t.Summarize)

	return server
}
