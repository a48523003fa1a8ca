package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/sevigo/code-critic/internal/logger"
)

const (
	ProviderGemini = "gemini"
	ProviderOllama = "ollama"
)

// Config holds the application's configuration values.
type Config struct {
	Server  ServerConfig
	AI      AIConfig
	Logging logger.Config
	Client  ClientConfig
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Port           string
	RequestTimeout time.Duration
}

// AIConfig selects the generation service and carries its credential.
type AIConfig struct {
	LLMProvider    string
	GeminiAPIKey   string
	GeneratorModel string
	OllamaHost     string
}

// ClientConfig is used by the terminal and cli presenters.
type ClientConfig struct {
	ServerURL string
	Theme     string
}

// Validate checks the values that would make the server unusable. A missing
// Gemini key is allowed: every review then fails upstream.
func (c *AIConfig) Validate() error {
	switch c.LLMProvider {
	case ProviderGemini, ProviderOllama:
	default:
		return fmt.Errorf("unsupported LLM provider: %q", c.LLMProvider)
	}
	if strings.TrimSpace(c.GeneratorModel) == "" {
		return errors.New("GENERATOR_MODEL must not be empty")
	}
	return nil
}

// WriteTimeout leaves the request deadline room to produce the error body.
func (c *ServerConfig) WriteTimeout() time.Duration {
	return c.RequestTimeout + 10*time.Second
}

// LoadConfig reads configuration from environment variables and a .env file,
// sets sensible defaults, and validates required fields. It uses the Viper
// library to handle configuration loading and precedence.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("REQUEST_TIMEOUT", "60s")
	v.SetDefault("LLM_PROVIDER", ProviderGemini)
	v.SetDefault("GENERATOR_MODEL", "gemini-2.0-flash")
	v.SetDefault("OLLAMA_HOST", "http://localhost:11434")
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LOG_OUTPUT", "stdout")
	v.SetDefault("REVIEW_SERVER_URL", "http://localhost:8080")
	v.SetDefault("THEME", "cyan")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			slog.Error("failed to read config file", "error", err)
		}
	}

	timeout := v.GetDuration("REQUEST_TIMEOUT")
	if timeout <= 0 {
		return nil, fmt.Errorf("REQUEST_TIMEOUT must be positive, got %q", v.GetString("REQUEST_TIMEOUT"))
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           v.GetString("SERVER_PORT"),
			RequestTimeout: timeout,
		},
		AI: AIConfig{
			LLMProvider:    strings.ToLower(v.GetString("LLM_PROVIDER")),
			GeminiAPIKey:   v.GetString("GEMINI_API_KEY"),
			GeneratorModel: v.GetString("GENERATOR_MODEL"),
			OllamaHost:     v.GetString("OLLAMA_HOST"),
		},
		Logging: logger.Config{
			Level:  strings.ToLower(v.GetString("LOG_LEVEL")),
			Format: strings.ToLower(v.GetString("LOG_FORMAT")),
			Output: strings.ToLower(v.GetString("LOG_OUTPUT")),
		},
		Client: ClientConfig{
			ServerURL: strings.TrimRight(v.GetString("REVIEW_SERVER_URL"), "/"),
			Theme:     v.GetString("THEME"),
		},
	}

	if err := cfg.AI.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
