package llm

import (
	"fmt"
	"strings"
	"time"
)

// Provider selects the text-generation backend.
type Provider string

const (
	ProviderHuggingFace Provider = "huggingface"
	ProviderOllama      Provider = "ollama"
)

// LLMConfig holds all configuration for answer enrichment.
type LLMConfig struct {
	Enabled     bool
	LogCalls    bool
	Provider    Provider
	Endpoint    string
	Model       string
	Token       string
	TimeoutMs   int
	MaxRetries  int
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the Hugging Face inference setup the FAQ answers
// were written against. Without a token most public models reject calls,
// which surfaces as an inline error in the answer.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Enabled:     true,
		LogCalls:    false,
		Provider:    ProviderHuggingFace,
		Endpoint:    "https://api-inference.huggingface.co",
		Model:       "EleutherAI/gpt-neo-2.7B",
		TimeoutMs:   30000,
		MaxRetries:  0,
		MaxTokens:   100000,
		Temperature: 0.5,
	}
}

// DefaultOllamaEndpoint is used when the ollama provider is selected without
// an explicit endpoint.
const DefaultOllamaEndpoint = "http://localhost:11434"

// Timeout returns the per-call deadline covering all attempts.
func (c LLMConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// Validate reports the first invalid setting.
func (c LLMConfig) Validate() error {
	switch c.Provider {
	case ProviderHuggingFace, ProviderOllama:
	default:
		return fmt.Errorf("unsupported llm provider %q (want %s or %s)", c.Provider, ProviderHuggingFace, ProviderOllama)
	}
	if strings.TrimSpace(c.Endpoint) == "" {
		return fmt.Errorf("llm endpoint is required")
	}
	if strings.TrimSpace(c.Model) == "" {
		return fmt.Errorf("llm model is required")
	}
	if c.TimeoutMs <= 0 {
		return fmt.Errorf("llm timeout must be positive, got %dms", c.TimeoutMs)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("llm max retries must not be negative, got %d", c.MaxRetries)
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("llm max tokens must be positive, got %d", c.MaxTokens)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("llm temperature must be between 0 and 2, got %g", c.Temperature)
	}
	return nil
}
