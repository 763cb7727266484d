package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Port           int           `yaml:"port"`
	GeminiAPIURL   string        `yaml:"gemini_api_url"`
	GeminiAPIKey   string        `yaml:"gemini_api_key"`
	GeminiModel    string        `yaml:"gemini_model"`
	ModelTimeout   time.Duration `yaml:"model_timeout"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	APIKey         string        `yaml:"api_key"`
	LogLevel       string        `yaml:"log_level"`
	LogFormat      string        `yaml:"log_format"`
}

func defaults() Config {
	return Config{
		Port:           8080,
		GeminiAPIURL:   "https://generativelanguage.googleapis.com",
		GeminiModel:    "gemini-2.5-flash",
		ModelTimeout:   60 * time.Second,
		AllowedOrigins: []string{"https://mail.google.com", "http://localhost:5173"},
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// LoadEnvFile loads KEY=VALUE pairs from path into the environment.
// Variables that are already set are left untouched.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("config: load env file: %w", err)
	}
	return nil
}

// Load loads configuration from a YAML file (if path is non-empty),
// then applies environment variable overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse yaml: %w", err)
		}
	}

	if v := os.Getenv("EMAILWRITER_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid EMAILWRITER_PORT %q: %w", v, err)
		}
		cfg.Port = p
	}
	if v := os.Getenv("EMAILWRITER_GEMINI_API_URL"); v != "" {
		cfg.GeminiAPIURL = v
	}
	if v := os.Getenv("EMAILWRITER_GEMINI_API_KEY"); v != "" {
		cfg.GeminiAPIKey = v
	}
	if v := os.Getenv("EMAILWRITER_GEMINI_MODEL"); v != "" {
		cfg.GeminiModel = v
	}
	if v := os.Getenv("EMAILWRITER_MODEL_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid EMAILWRITER_MODEL_TIMEOUT %q: %w", v, err)
		}
		cfg.ModelTimeout = d
	}
	if v := os.Getenv("EMAILWRITER_ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("EMAILWRITER_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("EMAILWRITER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("EMAILWRITER_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config: port %d out of range", c.Port)
	}
	if c.ModelTimeout <= 0 {
		return fmt.Errorf("config: model_timeout must be positive, got %s", c.ModelTimeout)
	}
	u, err := url.Parse(c.GeminiAPIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("config: invalid gemini_api_url %q", c.GeminiAPIURL)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("config: log_format must be text or json, got %q", c.LogFormat)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
