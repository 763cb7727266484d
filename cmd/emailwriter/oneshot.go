package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mlorentedev/emailwriter/internal/adapter"
	"github.com/mlorentedev/emailwriter/internal/email"
	"github.com/mlorentedev/emailwriter/internal/prompt"
)

var (
	replyTone     string
	summaryLength string
)

var replyCmd = &cobra.Command{
	Use:   "reply [file]",
	Short: "Draft a reply to an email read from a file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := readEmail(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		req := prompt.ReplyRequest{EmailContent: content}
		if cmd.Flags().Changed("tone") {
			req.Tone = &replyTone
		}
		return runOnce(cmd, func(ctx context.Context, svc *email.Service) (adapter.Reply, error) {
			return svc.GenerateReply(ctx, req)
		})
	},
}

var summarizeCmd = &cobra.Command{
	Use:   "summarize [file]",
	Short: "Summarize an email read from a file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := readEmail(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		req := prompt.SummarizeRequest{EmailContent: content}
		if cmd.Flags().Changed("length") {
			req.SummaryLength = &summaryLength
		}
		return runOnce(cmd, func(ctx context.Context, svc *email.Service) (adapter.Reply, error) {
			return svc.Summarize(ctx, req)
		})
	},
}

func init() {
	replyCmd.Flags().StringVar(&replyTone, "tone", "", "tone of the reply (e.g. formal, friendly)")
	summarizeCmd.Flags().StringVar(&summaryLength, "length", "short", "summary length: short, medium or long")
	rootCmd.AddCommand(replyCmd, summarizeCmd)
}

func readEmail(stdin io.Reader, args []string) (string, error) {
	var (
		data []byte
		err  error
	)
	if len(args) == 1 && args[0] != "-" {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(stdin)
	}
	if err != nil {
		return "", fmt.Errorf("read email: %w", err)
	}
	content := string(data)
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("read email: empty input")
	}
	return content, nil
}

func runOnce(cmd *cobra.Command, call func(context.Context, *email.Service) (adapter.Reply, error)) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg)
	model, _ := buildModel(cfg, logger)
	svc := email.NewService(model, cfg.ModelTimeout, logger)

	reply, err := call(cmd.Context(), svc)
	if err != nil {
		return err
	}
	if reply.Fallback {
		logger.Warn("model returned no candidates, printing raw response")
	}
	fmt.Fprintln(cmd.OutOrStdout(), reply.Text)
	return nil
}
