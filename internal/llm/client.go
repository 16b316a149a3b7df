package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"classroom-relay/internal/upstream"
)

// Client is a chat-completion client for OpenAI-compatible providers.
type Client struct {
	BaseURL   string
	Model     string
	MaxTokens int
	client    openai.Client
}

// NewClient creates a new LLM client. The SDK's built-in retries are disabled
// and every call goes through httpClient, which carries the upstream timeout.
func NewClient(baseURL, apiKey, model string, maxTokens int, httpClient *http.Client) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}

	return &Client{
		BaseURL:   baseURL,
		Model:     model,
		MaxTokens: maxTokens,
		client:    openai.NewClient(opts...),
	}
}

// Complete sends messages to the chat completions API and returns the text of the first choice.
// Non-2xx responses are returned as *upstream.StatusError.
func (c *Client) Complete(ctx context.Context, messages []Message) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:    c.Model,
		Messages: toOpenAIMessages(messages),
	}
	if c.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(c.MaxTokens))
	}

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			body := apiErr.RawJSON()
			if body == "" {
				body = apiErr.Message
			}
			if body == "" {
				body = apiErr.Error()
			}
			return "", &upstream.StatusError{
				Service:    "openai",
				StatusCode: apiErr.StatusCode,
				Body:       body,
			}
		}
		return "", fmt.Errorf("openai chat completion: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}

	return completion.Choices[0].Message.Content, nil
}

// toOpenAIMessages converts Message values to the SDK union type.
func toOpenAIMessages(msgs []Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, len(msgs))
	for i, m := range msgs {
		switch m.Role {
		case RoleSystem:
			out[i] = openai.SystemMessage(m.Content)
		case RoleAssistant:
			out[i] = openai.AssistantMessage(m.Content)
		default:
			out[i] = openai.UserMessage(m.Content)
		}
	}
	return out
}
