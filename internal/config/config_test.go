package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAIConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  AIConfig
		wantErr bool
	}{
		{
			name:    "Gemini without key is allowed",
			config:  AIConfig{LLMProvider: ProviderGemini, GeneratorModel: "gemini-2.0-flash"},
			wantErr: false,
		},
		{
			name:    "Ollama",
			config:  AIConfig{LLMProvider: ProviderOllama, GeneratorModel: "gemma3:latest"},
			wantErr: false,
		},
		{
			name:    "Unknown provider",
			config:  AIConfig{LLMProvider: "openai", GeneratorModel: "gpt"},
			wantErr: true,
		},
		{
			name:    "Blank model",
			config:  AIConfig{LLMProvider: ProviderGemini, GeneratorModel: "  "},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.config.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("AIConfig.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{
		"SERVER_PORT", "REQUEST_TIMEOUT", "LLM_PROVIDER", "GENERATOR_MODEL", "GEMINI_API_KEY",
		"OLLAMA_HOST", "LOG_LEVEL", "LOG_FORMAT", "LOG_OUTPUT", "REVIEW_SERVER_URL", "THEME",
	} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 60*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 70*time.Second, cfg.Server.WriteTimeout())
	assert.Equal(t, ProviderGemini, cfg.AI.LLMProvider)
	assert.Equal(t, "gemini-2.0-flash", cfg.AI.GeneratorModel)
	assert.Empty(t, cfg.AI.GeminiAPIKey)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "http://localhost:8080", cfg.Client.ServerURL)
	assert.Equal(t, "cyan", cfg.Client.Theme)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REQUEST_TIMEOUT", "15s")
	t.Setenv("LLM_PROVIDER", "OLLAMA")
	t.Setenv("GENERATOR_MODEL", "qwen2.5-coder")
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("REVIEW_SERVER_URL", "http://review.local:9090/")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, ProviderOllama, cfg.AI.LLMProvider)
	assert.Equal(t, "qwen2.5-coder", cfg.AI.GeneratorModel)
	assert.Equal(t, "secret", cfg.AI.GeminiAPIKey)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "http://review.local:9090", cfg.Client.ServerURL)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Run("unknown provider", func(t *testing.T) {
		t.Setenv("LLM_PROVIDER", "openai")
		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("non-positive timeout", func(t *testing.T) {
		t.Setenv("REQUEST_TIMEOUT", "0s")
		_, err := LoadConfig()
		assert.Error(t, err)
	})
}
