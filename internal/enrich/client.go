// Package enrich implements the delegated-rendering client: one prompt in,
// one completion out, against any OpenAI-compatible chat endpoint.
package enrich

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const systemPrompt = "You are a helpful technical documentation assistant."

// Sentinel errors callers branch on to pick a deterministic artifact body.
var (
	ErrMissingConfig = errors.New("endpoint or API key not configured")
	ErrNoContent     = errors.New("response contains no content")
)

// Config holds the client settings.
type Config struct {
	Endpoint string // full chat-completions URL
	APIKey   string
	Model    string
	// Debug skips the network entirely and returns the prompt verbatim,
	// for golden-output testing of prompt construction.
	Debug bool
	// RequestsPerSecond throttles outgoing calls when > 0.
	RequestsPerSecond float64
}

// Client is a thin HTTP client for chat-completion requests. It never
// retries and never caches; each failure surfaces as a single error.
type Client struct {
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a client from cfg, defaulting the model to gpt-4.
func NewClient(cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = "gpt-4"
	}
	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}
	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: 60 * time.Second},
		limiter: limiter,
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends the prompt as a user message and returns the first choice's
// content. A response without content is ErrNoContent; a missing endpoint or
// key is ErrMissingConfig. In debug mode the prompt itself is returned
// without any network call.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if c.cfg.Debug {
		return prompt, nil
	}
	if c.cfg.Endpoint == "" || c.cfg.APIKey == "" {
		return "", ErrMissingConfig
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("waiting for rate limiter: %w", err)
		}
	}

	body, err := json.Marshal(chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API error %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", ErrNoContent
	}
	return parsed.Choices[0].Message.Content, nil
}
