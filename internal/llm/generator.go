// Package llm adapts the hosted text-generation models to core.Generator and
// renders the prompts sent to them.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/sevigo/goframe/llms"
	"github.com/sevigo/goframe/llms/gemini"
	"github.com/sevigo/goframe/llms/ollama"

	"github.com/sevigo/code-critic/internal/config"
	"github.com/sevigo/code-critic/internal/core"
)

var (
	ErrMissingCredential = errors.New("GEMINI_API_KEY is not set")
	ErrEmptyCompletion   = errors.New("generation service returned an empty completion")
)

// modelGenerator calls a goframe model with a single prompt.
type modelGenerator struct {
	model  llms.Model
	name   string
	logger *slog.Logger
}

// NewModelGenerator wraps a goframe model as a core.Generator.
func NewModelGenerator(model llms.Model, name string, logger *slog.Logger) core.Generator {
	return &modelGenerator{model: model, name: name, logger: logger}
}

// Generate sends prompt to the model once. Blank completions are reported as
// ErrEmptyCompletion.
func (g *modelGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	text, err := llms.GenerateFromSinglePrompt(ctx, g.model, prompt)
	if err != nil {
		return "", fmt.Errorf("model %s: %w", g.name, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("model %s: %w", g.name, ErrEmptyCompletion)
	}

	g.logger.Debug("completion received",
		"model", g.name,
		"chars", len(text),
		"duration", time.Since(start).Round(time.Millisecond),
	)
	return text, nil
}

// unavailableGenerator fails every call with the same error.
type unavailableGenerator struct {
	err error
}

func (g unavailableGenerator) Generate(_ context.Context, _ string) (string, error) {
	return "", g.err
}

// NewGenerator creates the generator for the configured provider. A missing
// Gemini credential does not fail startup; the returned generator then fails
// every call with ErrMissingCredential.
func NewGenerator(ctx context.Context, cfg *config.Config, logger *slog.Logger) (core.Generator, error) {
	ai := cfg.AI
	switch ai.LLMProvider {
	case config.ProviderGemini:
		if ai.GeminiAPIKey == "" {
			logger.Warn("GEMINI_API_KEY is not set, reviews will fail until it is configured")
			return unavailableGenerator{err: ErrMissingCredential}, nil
		}
		logger.Info("using Gemini LLM provider", "model", ai.GeneratorModel)
		model, err := gemini.New(ctx,
			gemini.WithModel(ai.GeneratorModel),
			gemini.WithAPIKey(ai.GeminiAPIKey),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini model: %w", err)
		}
		return NewModelGenerator(model, ai.GeneratorModel, logger), nil

	case config.ProviderOllama:
		logger.Info("using Ollama LLM provider", "model", ai.GeneratorModel, "host", ai.OllamaHost)
		model, err := ollama.New(
			ollama.WithServerURL(ai.OllamaHost),
			ollama.WithHTTPClient(newOllamaHTTPClient(cfg.Server.RequestTimeout)),
			ollama.WithModel(ai.GeneratorModel),
			ollama.WithLogger(logger),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create ollama model: %w", err)
		}
		return NewModelGenerator(model, ai.GeneratorModel, logger), nil

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", ai.LLMProvider)
	}
}

// newOllamaHTTPClient creates an HTTP client whose timeout matches the request deadline.
func newOllamaHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        100,
			MaxConnsPerHost:     10,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		},
		Timeout: timeout,
	}
}
