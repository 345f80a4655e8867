package llm

import (
	"context"
	"fmt"
	"time"
)

// Client sends one system + user exchange and returns the model's text.
type Client interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// NewClient builds the client for provider "gemini" or "chat".
func NewClient(provider, apiKey, model, apiURL string, timeout time.Duration) (Client, error) {
	switch provider {
	case "", "gemini":
		return NewGeminiClient(apiKey, model, apiURL, timeout), nil
	case "chat":
		return NewChatClient(apiKey, model, apiURL, timeout), nil
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q (use gemini or chat)", provider)
	}
}
