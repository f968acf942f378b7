// Package ai adapts an OpenAI-compatible chat completion endpoint to the text
// completion port. The output is treated as untrusted by callers; this client
// only transports it.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultCompletionBaseURL = "https://api.openai.com/v1"

// HTTPTextCompleter calls a chat-completions endpoint with a single user
// message and returns the first choice's content.
type HTTPTextCompleter struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewHTTPTextCompleter creates a completion client.
// An empty baseURL falls back to the public OpenAI endpoint.
func NewHTTPTextCompleter(apiKey, model, baseURL string) *HTTPTextCompleter {
	if baseURL == "" {
		baseURL = defaultCompletionBaseURL
	}
	return &HTTPTextCompleter{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type completionRequest struct {
	Model    string              `json:"model"`
	Messages []completionMessage `json:"messages"`
}

type completionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionResponse struct {
	Choices []struct {
		Message completionMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends the prompt and returns the raw completion text.
func (c *HTTPTextCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(completionRequest{
		Model:    c.model,
		Messages: []completionMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion request failed with status %d", resp.StatusCode)
	}

	var decoded completionResponse
	if err = json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", err
	}

	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}

	return decoded.Choices[0].Message.Content, nil
}
