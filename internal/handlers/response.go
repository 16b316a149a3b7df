package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"classroom-relay/internal/contextutil"
	"classroom-relay/internal/service"
)

// ErrorResponse represents an error response.
//
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error"`
	// Details carries upstream diagnostics: embedded JSON when the upstream body was JSON, text otherwise.
	Details any `json:"details,omitempty"`
}

// upstreamPolicy selects how upstream failures are reported.
type upstreamPolicy int

const (
	// passUpstreamStatus reports the upstream's own status code (LMS routes).
	passUpstreamStatus upstreamPolicy = iota
	// genericUpstreamFailure reports 500 with a fixed message (completion routes).
	genericUpstreamFailure
)

// writeServiceError maps service errors to HTTP status codes and writes exactly one JSON response.
func writeServiceError(w http.ResponseWriter, ctx context.Context, err error, policy upstreamPolicy) {
	logger := contextutil.LoggerFromContext(ctx)

	var svcErr *service.Error
	errors.As(err, &svcErr)

	switch kind := service.KindOf(err); kind {
	case service.KindInvalidInput:
		writeError(w, http.StatusBadRequest, "Invalid input: "+svcErr.Message, nil)
	case service.KindMissingParameter:
		writeError(w, http.StatusBadRequest, "Missing required parameter: "+svcErr.Field, nil)
	case service.KindNotFound:
		writeError(w, http.StatusNotFound, svcErr.Message, nil)
	case service.KindUpstreamTimeout:
		writeError(w, http.StatusGatewayTimeout, "Upstream request timed out", nil)
	case service.KindUpstream:
		details := upstreamDetails(svcErr.Details)
		if policy == passUpstreamStatus && svcErr.StatusCode >= 400 && svcErr.StatusCode <= 599 {
			writeError(w, svcErr.StatusCode, "Upstream request failed", details)
			return
		}
		if policy == genericUpstreamFailure {
			writeError(w, http.StatusInternalServerError, "Failed to generate completion", details)
			return
		}
		writeError(w, http.StatusInternalServerError, "Upstream request failed", details)
	default:
		logger.ErrorContext(ctx, "internal error", "kind", kind, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", nil)
	}
}

// upstreamDetails embeds JSON bodies as JSON and anything else as a string.
func upstreamDetails(details string) any {
	if details == "" {
		return nil
	}
	if json.Valid([]byte(details)) {
		return json.RawMessage(details)
	}
	return details
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, statusCode int, message string, details any) {
	writeJSON(w, statusCode, ErrorResponse{
		Error:   message,
		Details: details,
	})
}

// writeJSON encodes v as the response body.
func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// writeRaw writes an upstream JSON body unmodified. An empty body is relayed without a content type.
func writeRaw(w http.ResponseWriter, statusCode int, body json.RawMessage) {
	if len(body) == 0 {
		w.WriteHeader(statusCode)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
}
