// Package llm provides the chat-based alternate workflow: the document goes
// out with a proofreading prompt and the corrected text streams back.
// Unlike the correction API there are no structured, positioned edits.
package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const (
	DefaultModel   = "gpt-4o-mini"
	DefaultBaseURL = "https://api.openai.com/v1"
)

// Checker streams proofreading requests through an OpenAI-compatible
// chat completions API.
type Checker struct {
	client *openai.Client
	model  string
}

// New creates a Checker. Unset fields fall back to their defaults.
func New(apiKey, model, baseURL string) *Checker {
	if model == "" {
		model = DefaultModel
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	return &Checker{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Proofread sends text to the model and accumulates the streamed reply
// into the corrected document.
func (c *Checker) Proofread(ctx context.Context, text string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Stream: true,
	}

	stream, err := c.client.CreateChatCompletionStream(ctx, req)
	if err != nil {
		return "", fmt.Errorf("llm: create stream: %w", err)
	}
	defer stream.Close()

	var b strings.Builder
	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("llm: stream recv: %w", err)
		}
		if len(resp.Choices) > 0 {
			b.WriteString(resp.Choices[0].Delta.Content)
		}
	}

	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", errors.New("llm: empty completion")
	}
	return out, nil
}

const systemPrompt = `You are a careful proofreader. Correct any sensitive, ` +
	`incorrect or inappropriate wording, spelling and punctuation in the text ` +
	`you receive, preserving its meaning, formatting and language. ` +
	`Reply with the corrected text only, no explanations or markup.`
