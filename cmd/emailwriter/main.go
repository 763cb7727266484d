// Emailwriter
//
// A relay that drafts email replies and summaries with Gemini.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mlorentedev/emailwriter/internal/adapter"
	"github.com/mlorentedev/emailwriter/internal/config"
)

var version = "dev"

var (
	configPath string
	envFile    string
	useMock    bool
	logLevel   string
	logFormat  string
)

var rootCmd = &cobra.Command{
	Use:   "emailwriter",
	Short: "Emailwriter - email reply and summary relay",
	Long: `Emailwriter drafts email replies and summaries through the Gemini API.

  emailwriter serve                       Start the HTTP relay
  emailwriter reply --tone formal < mail  Draft a reply from stdin
  emailwriter summarize --length long f   Summarize a file
  emailwriter mcp                         Serve MCP tools over stdio`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config.yaml")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "load environment variables from a .env file")
	rootCmd.PersistentFlags().BoolVar(&useMock, "mock", false, "use the echo adapter instead of Gemini")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "override log format (text, json)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig applies the env file, the config file and the flag overrides.
func loadConfig() (config.Config, error) {
	if err := config.LoadEnvFile(envFile); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFormat != "" {
		cfg.LogFormat = logFormat
	}
	return cfg, nil
}

func newLogger(w io.Writer, cfg config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// buildModel returns the gateway selected by cfg and --mock.
func buildModel(cfg config.Config, logger *slog.Logger) (adapter.Model, adapter.ModelInfo) {
	if useMock {
		logger.Info("mode: mock adapter enabled")
		return &adapter.MockAdapter{Delay: 500 * time.Millisecond},
			adapter.ModelInfo{ID: "mock", Name: "Mock (dev)", Provider: "mock"}
	}

	gemini := &adapter.GeminiAdapter{
		BaseURL: cfg.GeminiAPIURL,
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		Client:  &http.Client{Timeout: cfg.ModelTimeout + 5*time.Second},
	}
	if !gemini.Available() {
		logger.Warn("gemini: no API key configured, model calls will be rejected upstream")
	}
	logger.Info("mode: gemini", "url", cfg.GeminiAPIURL, "model", cfg.GeminiModel)
	return gemini, adapter.ModelInfo{ID: cfg.GeminiModel, Name: gemini.Name(), Provider: "gemini"}
}
