// Package ai wraps the OpenAI client for the two uses this service has:
// embedding stop descriptions for semantic search, and generating short
// itinerary suggestions.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pgvector/pgvector-go"
	openai "github.com/sashabaranov/go-openai"
)

var ErrNotConfigured = errors.New("openai api key not configured")

type Client struct {
	api *openai.Client
}

// New returns a Client, or one that fails every call with ErrNotConfigured
// when apiKey is empty. Callers treat AI features as best-effort.
func New(apiKey string) *Client {
	if apiKey == "" {
		return &Client{}
	}
	return &Client{api: openai.NewClient(apiKey)}
}

func (c *Client) Embed(ctx context.Context, text string) (pgvector.Vector, error) {
	if c.api == nil {
		return pgvector.Vector{}, ErrNotConfigured
	}

	resp, err := c.api.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.SmallEmbedding3,
	})
	if err != nil {
		return pgvector.Vector{}, err
	}
	if len(resp.Data) == 0 {
		return pgvector.Vector{}, errors.New("empty embedding response")
	}
	return pgvector.NewVector(resp.Data[0].Embedding), nil
}

// Suggest asks for a short plain-text day-by-day outline for a destination.
func (c *Client) Suggest(ctx context.Context, destination string, days int) (string, error) {
	if c.api == nil {
		return "", ErrNotConfigured
	}

	prompt := fmt.Sprintf(
		"Suggest a %d-day travel itinerary for %s. One line per day, plain text, no markdown.",
		days, destination,
	)
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
