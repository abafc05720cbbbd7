package services

import (
	"PlanMate/config/environment"
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// ChatOptions are the per-stage sampling parameters
type ChatOptions struct {
	Temperature float32
	MaxTokens   int
	TopP        float32
}

// ChatCompleter is the generative backend contract. Every AI-backed stage
// goes through this so tests can substitute a scripted backend.
type ChatCompleter interface {
	ChatCompletion(ctx context.Context, messages []openai.ChatCompletionMessage, opts ChatOptions) (string, error)
}

// OpenAIService talks to the Groq-hosted model through the
// OpenAI-compatible chat completions API.
type OpenAIService struct {
	Client *openai.Client
	Model  string
}

func NewOpenAIService() *OpenAIService {
	config := openai.DefaultConfig(environment.GetGroqAPIKey())
	config.BaseURL = environment.GetGroqBaseURL()
	config.HTTPClient = &http.Client{Timeout: environment.GetOpenAITimeout()}

	return &OpenAIService{
		Client: openai.NewClientWithConfig(config),
		Model:  environment.GetGroqModel(),
	}
}

// ChatCompletion sends one chat completion request and returns the
// trimmed response text. Exactly one attempt, no retries.
func (s *OpenAIService) ChatCompletion(ctx context.Context, messages []openai.ChatCompletionMessage, opts ChatOptions) (string, error) {
	// The request marshals Temperature with omitempty, so an exact zero
	// never reaches the wire and the backend falls back to its own
	// default. The smallest positive float32 survives marshaling and is
	// indistinguishable from zero for sampling purposes.
	temperature := opts.Temperature
	if temperature == 0 {
		temperature = math.SmallestNonzeroFloat32
	}

	resp, err := s.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.Model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   opts.MaxTokens,
		TopP:        opts.TopP,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no completion choices returned")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
