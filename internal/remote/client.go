// Package remote implements the planning strategy backed by an
// OpenAI-compatible chat-completions endpoint.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/stridehq/stride/internal/planning"
)

// DefaultTimeout bounds a single remote call. Retries are never automatic;
// a failed call is reported to the caller, who may re-invoke.
const DefaultTimeout = 60 * time.Second

// Client is a minimal chat-completions client.
type Client struct {
	apiKey  string
	baseURL string
	model   string
	http    *http.Client
}

// ClientOpts holds parameters for creating a Client.
type ClientOpts struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// NewClient creates a Client with sensible defaults.
func NewClient(opts ClientOpts) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = "https://api.deepseek.com"
	}
	if opts.Model == "" {
		opts.Model = "deepseek-chat"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	return &Client{
		apiKey:  opts.APIKey,
		baseURL: opts.BaseURL,
		model:   opts.Model,
		http:    &http.Client{Timeout: opts.Timeout},
	}
}

// IsConfigured reports whether an API key is present.
func (c *Client) IsConfigured() bool { return c.apiKey != "" }

// Message is one chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Choices []struct {
		Index   int     `json:"index"`
		Message Message `json:"message"`
	} `json:"choices"`
}

// Chat sends one chat-completions request and returns the first choice's
// content. Failures map onto the planning error taxonomy; context
// cancellation surfaces as the context's own error so callers can tell it
// apart from endpoint failures.
func (c *Client) Chat(ctx context.Context, messages []Message) (string, error) {
	if !c.IsConfigured() {
		return "", planning.ErrAPIKeyMissing
	}

	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: 0.3,
		MaxTokens:   4000,
	})
	if err != nil {
		return "", fmt.Errorf("remote: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("remote: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", &planning.RemoteError{Kind: planning.RemoteNetwork, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &planning.RemoteError{Kind: planning.RemoteNetwork, Err: err}
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", &planning.RemoteError{Kind: planning.RemoteRateLimited, Status: resp.StatusCode}
	case resp.StatusCode != http.StatusOK:
		return "", &planning.RemoteError{
			Kind:   planning.RemoteServer,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("%s: %s", resp.Status, truncate(respBody, 200)),
		}
	}

	var chat chatResponse
	if err := json.Unmarshal(respBody, &chat); err != nil {
		return "", &planning.RemoteError{Kind: planning.RemoteInvalidResponse, Err: err}
	}
	if len(chat.Choices) == 0 {
		return "", &planning.RemoteError{Kind: planning.RemoteInvalidResponse, Err: errors.New("no choices in response")}
	}
	return chat.Choices[0].Message.Content, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
