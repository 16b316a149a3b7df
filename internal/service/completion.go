package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_llm_client.go -package=mocks classroom-relay/internal/service LLMClient
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_text_filter.go -package=mocks classroom-relay/internal/service TextFilter
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_completion_service.go -package=mocks classroom-relay/internal/service CompletionService

import (
	"context"
	"fmt"
	"strings"

	"classroom-relay/internal/contextutil"
	"classroom-relay/internal/llm"
)

// LLMClient is an interface for interacting with a chat-completion provider.
// This interface is defined from the service layer's perspective (consumer-first).
type LLMClient interface {
	// Complete sends the conversation and returns the text of the first choice.
	Complete(ctx context.Context, messages []llm.Message) (string, error)
}

// TextFilter rewrites model output before it is returned to clients.
type TextFilter interface {
	Clean(text string) string
}

// CompletionRequest is a normalized completion request.
// Messages takes precedence; otherwise Prompt becomes a single user message.
type CompletionRequest struct {
	Prompt   string
	Messages []llm.Message
}

// CompletionResponse carries the filtered completion text.
type CompletionResponse struct {
	Message string
}

// CompletionService relays prompts to the model provider.
type CompletionService interface {
	// Complete validates the request, calls the provider once and filters the reply.
	Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error)
}

type completionService struct {
	llmClient LLMClient
	filter    TextFilter
}

// NewCompletionService creates a new CompletionService.
func NewCompletionService(llmClient LLMClient, filter TextFilter) CompletionService {
	return &completionService{
		llmClient: llmClient,
		filter:    filter,
	}
}

// Complete processes a completion request.
func (s *completionService) Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	messages, err := buildMessages(req)
	if err != nil {
		logger.WarnContext(ctx, "invalid completion request", "error", err)
		return CompletionResponse{}, err
	}

	reply, err := s.llmClient.Complete(ctx, messages)
	if err != nil {
		logger.ErrorContext(ctx, "failed to get LLM response", "error", err)
		return CompletionResponse{}, upstreamError("failed to get LLM response", err)
	}

	cleaned := s.filter.Clean(reply)
	logger.InfoContext(ctx, "completion processed successfully",
		"messages", len(messages),
		"reply_length", len(reply),
		"filtered", cleaned != reply,
	)
	return CompletionResponse{Message: cleaned}, nil
}

func buildMessages(req CompletionRequest) ([]llm.Message, error) {
	if len(req.Messages) > 0 {
		for i, m := range req.Messages {
			if !m.Role.Valid() {
				return nil, invalidInput(fmt.Sprintf("conversations[%d].role", i),
					fmt.Sprintf("role must be one of user, assistant, system, got %q", m.Role))
			}
		}
		return req.Messages, nil
	}

	if strings.TrimSpace(req.Prompt) == "" {
		return nil, invalidInput("prompt", "prompt is required")
	}
	return []llm.Message{{Role: llm.RoleUser, Content: req.Prompt}}, nil
}
