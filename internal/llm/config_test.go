package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.Enabled)
	assert.Equal(t, ProviderHuggingFace, cfg.Provider)
	assert.Equal(t, "EleutherAI/gpt-neo-2.7B", cfg.Model)
	assert.Equal(t, 100000, cfg.MaxTokens)
	assert.InDelta(t, 0.5, cfg.Temperature, 1e-9)
	assert.Zero(t, cfg.MaxRetries)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
}

func TestLLMConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*LLMConfig)
		want   string
	}{
		{"unknown provider", func(c *LLMConfig) { c.Provider = "gpt" }, "unsupported llm provider"},
		{"blank endpoint", func(c *LLMConfig) { c.Endpoint = "  " }, "endpoint is required"},
		{"blank model", func(c *LLMConfig) { c.Model = "" }, "model is required"},
		{"zero timeout", func(c *LLMConfig) { c.TimeoutMs = 0 }, "timeout must be positive"},
		{"negative retries", func(c *LLMConfig) { c.MaxRetries = -1 }, "retries must not be negative"},
		{"zero max tokens", func(c *LLMConfig) { c.MaxTokens = 0 }, "max tokens must be positive"},
		{"temperature too high", func(c *LLMConfig) { c.Temperature = 3 }, "temperature must be between"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}
