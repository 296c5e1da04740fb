package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// huggingFaceBackend talks to the hosted inference API.
type huggingFaceBackend struct {
	endpoint string
	model    string
	token    string
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfParameters struct {
	MaxLength   int     `json:"max_length"`
	Temperature float64 `json:"temperature"`
}

type hfGeneration struct {
	GeneratedText string `json:"generated_text"`
}

func (b *huggingFaceBackend) provider() Provider { return ProviderHuggingFace }

func (b *huggingFaceBackend) url() string {
	return b.endpoint + "/models/" + b.model
}

func (b *huggingFaceBackend) generate(ctx context.Context, hc *http.Client, prompt string, maxTokens int, temperature float64) (string, string, error) {
	data, err := json.Marshal(hfRequest{
		Inputs:     prompt,
		Parameters: hfParameters{MaxLength: maxTokens, Temperature: temperature},
	})
	if err != nil {
		return "", "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.url(), bytes.NewReader(data))
	if err != nil {
		return "", "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	b.authorize(req)

	resp, err := hc.Do(req)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", "", &statusError{Code: resp.StatusCode, Body: string(bytes.TrimSpace(body))}
	}

	var gens []hfGeneration
	if err := json.Unmarshal(body, &gens); err != nil {
		return "", "", fmt.Errorf("%w: decoding response: %w", ErrInvalidOutput, err)
	}
	// An empty list is a successful call with nothing generated
	if len(gens) == 0 {
		return "", b.model, nil
	}
	return gens[0].GeneratedText, b.model, nil
}

func (b *huggingFaceBackend) probe(ctx context.Context, hc *http.Client) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.url(), nil)
	if err != nil {
		return false
	}
	b.authorize(req)
	resp, err := hc.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func (b *huggingFaceBackend) authorize(req *http.Request) {
	if b.token != "" {
		req.Header.Set("Authorization", "Bearer "+b.token)
	}
}
