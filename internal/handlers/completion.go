package handlers

import (
	"net/http"

	"classroom-relay/internal/contextutil"
	"classroom-relay/internal/llm"
	"classroom-relay/internal/service"
)

// CompletionHandler relays prompts to the model provider.
// It serves /ask (conversation or prompt) and the prompt-only routes.
type CompletionHandler struct {
	completionService   service.CompletionService
	acceptsConversation bool
}

// NewAskHandler creates a handler that accepts a conversation or a prompt.
func NewAskHandler(completionService service.CompletionService) *CompletionHandler {
	return &CompletionHandler{
		completionService:   completionService,
		acceptsConversation: true,
	}
}

// NewPromptHandler creates a handler that accepts a single prompt.
// Fields other than prompt (such as expectedAnswer on /checkAnswer) are ignored.
func NewPromptHandler(completionService service.CompletionService) *CompletionHandler {
	return &CompletionHandler{
		completionService: completionService,
	}
}

// CompletionRequest represents the HTTP request payload for completion routes.
//
// swagger:model CompletionRequest
type CompletionRequest struct {
	Prompt        string        `json:"prompt"`
	Conversations []ChatMessage `json:"conversations,omitempty"`
}

// ChatMessage is one entry of a conversation.
//
// swagger:model ChatMessage
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionResponse is the success envelope of completion routes.
//
// swagger:model CompletionResponse
type CompletionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ServeHTTP handles completion requests.
//
// swagger:route POST /ask completion ask
//
// # Relay a prompt or conversation to the model provider
//
// responses:
//
//	'200':
//	  schema:
//	    "$ref": "#/definitions/CompletionResponse"
//	'400':
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
//	'500':
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
//	'504':
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
func (h *CompletionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
		return
	}

	var req CompletionRequest
	if err := bindRequest(r, &req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	svcReq := service.CompletionRequest{Prompt: req.Prompt}
	if h.acceptsConversation && len(req.Conversations) > 0 {
		svcReq.Messages = make([]llm.Message, len(req.Conversations))
		for i, m := range req.Conversations {
			svcReq.Messages[i] = llm.Message{Role: llm.Role(m.Role), Content: m.Content}
		}
	}

	svcResp, err := h.completionService.Complete(ctx, svcReq)
	if err != nil {
		writeServiceError(w, ctx, err, genericUpstreamFailure)
		return
	}

	writeJSON(w, http.StatusOK, CompletionResponse{
		Success: true,
		Message: svcResp.Message,
	})
}
