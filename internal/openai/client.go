// Package openai is a minimal client for the OpenAI chat completions API.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"agroclimate-api/internal/apperror"
	"agroclimate-api/internal/models"
)

const (
	serviceName    = "openai"
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o-mini"
)

// Client calls POST {baseURL}/chat/completions with a bearer token.
// It never retries.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewClient creates a chat completions client. A zero timeout means no client-side timeout.
func NewClient(apiKey, baseURL, model string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model == "" {
		model = defaultModel
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Model returns the model name sent with every request.
func (c *Client) Model() string {
	return c.model
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends the prompt and returns the first choice's message content.
// Every failure is reported as *apperror.UpstreamError.
func (c *Client) Complete(ctx context.Context, prompt models.Prompt) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []message{
			{Role: "system", Content: prompt.System},
			{Role: "user", Content: prompt.User},
		},
		MaxTokens:   prompt.MaxTokens,
		Temperature: prompt.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("openai: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("openai: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &apperror.UpstreamError{Service: serviceName, Message: "OpenAI API error", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &apperror.UpstreamError{Service: serviceName, Message: "OpenAI API error", Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &apperror.UpstreamError{
			Service: serviceName,
			Message: "OpenAI API error",
			Status:  resp.StatusCode,
			Detail:  string(body),
		}
	}

	var out chatResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", &apperror.UpstreamError{
			Service: serviceName,
			Message: "Invalid response from OpenAI",
			Status:  resp.StatusCode,
			Detail:  string(body),
			Err:     err,
		}
	}

	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		var raw any
		_ = json.Unmarshal(body, &raw)
		return "", &apperror.UpstreamError{
			Service: serviceName,
			Message: "Empty response from OpenAI",
			Status:  resp.StatusCode,
			Raw:     raw,
		}
	}

	return out.Choices[0].Message.Content, nil
}
