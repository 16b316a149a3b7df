package service

import (
	"errors"
	"fmt"

	"classroom-relay/internal/upstream"
)

// Kind classifies relay failures. Handlers map each kind onto one HTTP status.
type Kind string

const (
	KindInvalidInput     Kind = "INVALID_INPUT"
	KindMissingParameter Kind = "MISSING_PARAMETER"
	KindNotFound         Kind = "NOT_FOUND"
	KindUpstream         Kind = "UPSTREAM_ERROR"
	KindUpstreamTimeout  Kind = "UPSTREAM_TIMEOUT"
	KindInternal         Kind = "INTERNAL_ERROR"
)

// Error is the error type returned by every service operation.
type Error struct {
	Kind    Kind
	Field   string
	Message string
	// StatusCode is the upstream HTTP status for KindUpstream, 0 when no response was received.
	StatusCode int
	// Details is the upstream diagnostic text, if any.
	Details string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	if e.Field != "" {
		msg = fmt.Sprintf("%s (field %s)", msg, e.Field)
	}
	if e.Err == nil {
		return fmt.Sprintf("service: %s: %s", e.Kind, msg)
	}
	return fmt.Sprintf("service: %s: %s: %v", e.Kind, msg, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// KindOf returns the kind of err, or KindInternal for errors not produced by this package.
func KindOf(err error) Kind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindInternal
}

func invalidInput(field, message string) *Error {
	return &Error{Kind: KindInvalidInput, Field: field, Message: message}
}

func missingParameter(field string) *Error {
	return &Error{Kind: KindMissingParameter, Field: field, Message: "missing required parameter " + field}
}

func notFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// upstreamError classifies a failed outbound call.
func upstreamError(message string, err error) *Error {
	if upstream.IsTimeout(err) {
		return &Error{Kind: KindUpstreamTimeout, Message: message, Details: "upstream request timed out", Err: err}
	}

	var statusErr *upstream.StatusError
	if errors.As(err, &statusErr) {
		return &Error{
			Kind:       KindUpstream,
			Message:    message,
			StatusCode: statusErr.StatusCode,
			Details:    statusErr.Body,
			Err:        err,
		}
	}

	return &Error{Kind: KindUpstream, Message: message, Details: err.Error(), Err: err}
}
