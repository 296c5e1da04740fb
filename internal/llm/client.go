package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"
)

// GenerateRequest holds the parameters for a generation call.
type GenerateRequest struct {
	Prompt      string
	Temperature *float64 // nil uses the configured temperature
	MaxTokens   *int     // nil uses the configured limit
}

// GenerateResponse holds the result of a generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// LLMClient provides access to a language model for text generation.
type LLMClient interface {
	// Generate sends a prompt and returns the generated text with any echo
	// of the prompt removed. Failures are *GenerationError values.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Available checks whether the backend is reachable.
	Available(ctx context.Context) bool
}

// backend performs a single HTTP exchange for one provider.
type backend interface {
	provider() Provider
	generate(ctx context.Context, hc *http.Client, prompt string, maxTokens int, temperature float64) (text, model string, err error)
	probe(ctx context.Context, hc *http.Client) bool
}

// NewClient returns the client for cfg.Provider.
func NewClient(cfg LLMConfig, observer Observer) (LLMClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var b backend
	switch cfg.Provider {
	case ProviderHuggingFace:
		b = &huggingFaceBackend{endpoint: strings.TrimRight(cfg.Endpoint, "/"), model: cfg.Model, token: cfg.Token}
	case ProviderOllama:
		b = &ollamaBackend{endpoint: strings.TrimRight(cfg.Endpoint, "/"), model: cfg.Model}
	}
	return newClient(cfg, b, observer), nil
}

// client wraps a backend with the timeout, retry and observer policy shared
// by every provider.
type client struct {
	cfg      LLMConfig
	http     *http.Client
	backend  backend
	observer Observer
}

func newClient(cfg LLMConfig, b backend, observer Observer) *client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &client{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		backend:  b,
		observer: observer,
	}
}

func (c *client) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()

	temp := c.cfg.Temperature
	if req.Temperature != nil {
		temp = *req.Temperature
	}
	maxTok := c.cfg.MaxTokens
	if req.MaxTokens != nil {
		maxTok = *req.MaxTokens
	}

	callCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout())
	defer cancel()

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries
	made := 0

	for i := 0; i < attempts; i++ {
		made++
		text, model, err := c.backend.generate(callCtx, c.http, req.Prompt, maxTok, temp)
		if err == nil {
			latency := time.Since(start).Milliseconds()
			c.observer.OnCallComplete(LLMCallEvent{
				Provider:  c.backend.provider(),
				Model:     c.cfg.Model,
				LatencyMs: latency,
				Attempts:  made,
				Success:   true,
			})
			if model == "" {
				model = c.cfg.Model
			}
			return &GenerateResponse{
				Text:      stripEcho(text, req.Prompt),
				Model:     model,
				LatencyMs: latency,
			}, nil
		}
		lastErr = err

		// Don't retry once the deadline passed or the caller gave up
		if callCtx.Err() != nil {
			break
		}
	}

	genErr := c.classify(ctx, callCtx, lastErr, made)
	c.observer.OnCallComplete(LLMCallEvent{
		Provider:   c.backend.provider(),
		Model:      c.cfg.Model,
		LatencyMs:  time.Since(start).Milliseconds(),
		Attempts:   made,
		Success:    false,
		StatusCode: genErr.StatusCode,
		ErrorCode:  errorCode(genErr),
	})
	return nil, genErr
}

func (c *client) classify(parent, callCtx context.Context, lastErr error, attempts int) *GenerationError {
	genErr := &GenerationError{Provider: c.backend.provider()}
	var se *statusError
	if errors.As(lastErr, &se) {
		genErr.StatusCode = se.Code
	}

	switch {
	case parent.Err() != nil && errors.Is(parent.Err(), context.Canceled):
		genErr.Err = ErrCanceled
	case callCtx.Err() != nil:
		genErr.Err = fmt.Errorf("%w after %dms", ErrTimeout, c.cfg.TimeoutMs)
	case isConnectionError(lastErr):
		genErr.Err = fmt.Errorf("%w: %w", ErrUnavailable, lastErr)
	case attempts > 1:
		genErr.Err = fmt.Errorf("%w: %w", ErrRetryExhausted, lastErr)
	default:
		genErr.Err = lastErr
	}
	return genErr
}

func (c *client) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return c.backend.probe(ctx, c.http)
}

// stripEcho removes the prompt when the model repeats it before its answer.
func stripEcho(text, prompt string) string {
	text = strings.TrimSpace(text)
	p := strings.TrimSpace(prompt)
	if p != "" && strings.HasPrefix(text, p) {
		text = strings.TrimSpace(text[len(p):])
	}
	return text
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrCanceled):
		return "CANCELED"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrHTTPStatus):
		return "HTTP_STATUS"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	default:
		return "UNKNOWN"
	}
}

// Generator adapts an LLMClient to the plain prompt-in, text-out shape the
// answer composer consumes.
type Generator struct {
	client LLMClient
}

// NewGenerator wraps client.
func NewGenerator(client LLMClient) *Generator {
	return &Generator{client: client}
}

// Generate returns the generated text for prompt, limited to maxTokens when
// positive.
func (g *Generator) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	req := GenerateRequest{Prompt: prompt}
	if maxTokens > 0 {
		req.MaxTokens = &maxTokens
	}
	resp, err := g.client.Generate(ctx, req)
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}
