// Package openrouter implements legislativa.Completer against the
// OpenRouter chat completions API.
package openrouter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Maikl76/legislativa"
	openai "github.com/sashabaranov/go-openai"
)

// Defaults used by NewClient.
const (
	DefaultBaseURL = "https://openrouter.ai/api/v1"
	DefaultModel   = "mistralai/mistral-7b-instruct:free"
	DefaultTimeout = 15 * time.Second
)

// Ensure Client implements legislativa.Completer at compile time.
var _ legislativa.Completer = (*Client)(nil)

// Client sends chat completion requests to OpenRouter through its
// OpenAI-compatible API.
type Client struct {
	apiKey string
	model  string
	config openai.ClientConfig
	client *openai.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Requests go to
// <baseURL>/chat/completions.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.config.BaseURL = baseURL
	}
}

// WithModel sets the model identifier sent with each request.
func WithModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.config.HTTPClient = hc
	}
}

// NewClient creates a Client authenticated with apiKey.
func NewClient(apiKey string, opts ...Option) *Client {
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = DefaultBaseURL
	config.HTTPClient = &http.Client{Timeout: DefaultTimeout}

	c := &Client{
		apiKey: apiKey,
		model:  DefaultModel,
		config: config,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.client = openai.NewClientWithConfig(c.config)
	return c
}

// Model returns the model identifier used for requests.
func (c *Client) Model() string {
	return c.model
}

// Complete sends req as a system and a user message and returns the content
// of the first choice. A rejected API key is reported as EINVALID.
func (c *Client) Complete(ctx context.Context, req *legislativa.CompletionRequest) (string, error) {
	if c.apiKey == "" {
		return "", legislativa.Errorf(legislativa.EINVALID, "openrouter API key required")
	}

	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.User,
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		Messages:  messages,
		MaxTokens: req.MaxTokens,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && (apiErr.HTTPStatusCode == http.StatusUnauthorized || apiErr.HTTPStatusCode == http.StatusForbidden) {
			return "", legislativa.Errorf(legislativa.EINVALID, "openrouter rejected the API key: %s", apiErr.Message)
		}
		return "", fmt.Errorf("openrouter chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", legislativa.Errorf(legislativa.EINTERNAL, "openrouter returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
