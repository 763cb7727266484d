package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/mlorentedev/emailwriter/internal/email"
	"github.com/mlorentedev/emailwriter/internal/tool"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the email tools over MCP stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// stdout carries the protocol.
		logger := newLogger(os.Stderr, cfg)
		model, _ := buildModel(cfg, logger)
		srv := tool.NewServer(email.NewService(model, cfg.ModelTimeout, logger), version)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		logger.Info("starting stdio transport")
		if err := srv.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
			return fmt.Errorf("srv.Run failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
