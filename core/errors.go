package core

import (
	"errors"
	"fmt"
)

// ProviderError represents an error returned by a provider with full context.
type ProviderError struct {
	Provider  string
	Status    int
	RequestID string
	Code      string
	Message   string
	Err       error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s: %s", e.Provider, e.Message)
	}
	if e.RequestID != "" {
		return fmt.Sprintf("%s: %s (status=%d, code=%s, request_id=%s)",
			e.Provider, e.Message, e.Status, e.Code, e.RequestID)
	}
	return fmt.Sprintf("%s: %s (status=%d, code=%s)",
		e.Provider, e.Message, e.Status, e.Code)
}

// Unwrap returns the underlying error for error chaining.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Sentinel errors for classification.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrRateLimited  = errors.New("rate limited")
	ErrBadRequest   = errors.New("bad request")
	ErrNotFound     = errors.New("not found")
	ErrServer       = errors.New("server error")
	ErrNetwork      = errors.New("network error")
	ErrDecode       = errors.New("decode error")
)

// ErrMissingCredential is returned when no API key could be resolved.
// No network access is attempted after it is returned.
var ErrMissingCredential = errors.New("missing credential")

// Validation errors with actionable guidance.
var (
	ErrModelRequired = errors.New("model required: pass a model ID to Client.Chat(), e.g., client.Chat(\"gemini-2.5-flash\")")
	ErrNoMessages    = errors.New("no messages: add at least one message using .System() or .User()")
)

// Class returns a short, log-safe name for the sentinel wrapped by err.
// It never includes provider messages.
func Class(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingCredential):
		return "missing_credential"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, ErrBadRequest):
		return "bad_request"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrNetwork):
		return "network"
	case errors.Is(err, ErrDecode):
		return "decode"
	case errors.Is(err, ErrServer):
		return "server"
	default:
		return "unknown"
	}
}
