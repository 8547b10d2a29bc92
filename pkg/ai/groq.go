package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openaigo "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/johnquangdev/meeting-notes/pkg/config"
)

// DefaultTemperature keeps completions close to the transcript
const DefaultTemperature = 0.3

// ErrNotConfigured is returned before any network call when no API key is set
var ErrNotConfigured = errors.New("completion API key not configured")

// ErrEmptyCompletion is returned when the upstream reply has no choices
var ErrEmptyCompletion = errors.New("empty response from completion API")

// UpstreamError is a non-success reply from the completion API
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Groq API error: %s", e.Message)
}

// Completer sends a single-prompt chat completion
type Completer interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// GroqClient talks to Groq's OpenAI-compatible chat completions endpoint
type GroqClient struct {
	apiKey string
	model  string
	client openaigo.Client
}

var _ Completer = (*GroqClient)(nil)

// NewGroqClient creates a Groq client using values from the provided config.
// A nil httpClient uses a client with the configured timeout.
func NewGroqClient(cfg *config.GroqConfig, httpClient *http.Client) *GroqClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = "https://api.groq.com/openai/v1"
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = "llama-3.1-8b-instant"
	}

	opts := []option.RequestOption{
		option.WithBaseURL(baseURL),
		option.WithAPIKey(strings.TrimSpace(cfg.APIKey)),
		option.WithHTTPClient(httpClient),
		option.WithMaxRetries(cfg.MaxRetries),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	return &GroqClient{
		apiKey: strings.TrimSpace(cfg.APIKey),
		model:  model,
		client: openaigo.NewClient(opts...),
	}
}

// Configured reports whether an API key is present
func (g *GroqClient) Configured() bool {
	return g != nil && g.apiKey != ""
}

// Model returns the completion model name
func (g *GroqClient) Model() string {
	return g.model
}

// Complete sends prompt as a single user message and returns the assistant content
func (g *GroqClient) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if !g.Configured() {
		return "", ErrNotConfigured
	}

	params := openaigo.ChatCompletionNewParams{
		Model: openaigo.ChatModel(g.model),
		Messages: []openaigo.ChatCompletionMessageParamUnion{
			openaigo.UserMessage(prompt),
		},
		Temperature: openaigo.Float(DefaultTemperature),
	}
	if maxTokens > 0 {
		params.MaxTokens = openaigo.Int(int64(maxTokens))
	}

	resp, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apiErr *openaigo.Error
		if errors.As(err, &apiErr) {
			msg := apiErr.Message
			if msg == "" {
				msg = http.StatusText(apiErr.StatusCode)
			}
			return "", &UpstreamError{StatusCode: apiErr.StatusCode, Message: msg}
		}
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}
