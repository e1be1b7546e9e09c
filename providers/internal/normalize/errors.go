// Package normalize provides shared provider error normalization helpers.
package normalize

import (
	"net/http"

	"github.com/petal-labs/promptrun/core"
)

// NetworkError wraps transport failures as provider-specific network errors.
func NetworkError(provider string, err error) error {
	return &core.ProviderError{
		Provider: provider,
		Message:  err.Error(),
		Err:      core.ErrNetwork,
	}
}

// DecodeError wraps decode/parsing failures as provider-specific decode errors.
func DecodeError(provider string, err error) error {
	return &core.ProviderError{
		Provider: provider,
		Message:  err.Error(),
		Err:      core.ErrDecode,
	}
}

// ProviderError constructs a normalized ProviderError.
// If message is empty, HTTP status text is used.
// If sentinel is nil, default status-based mapping is applied.
func ProviderError(provider string, status int, requestID, code, message string, sentinel error) error {
	if message == "" {
		message = http.StatusText(status)
	}
	if code == "" {
		code = "unknown_error"
	}
	if sentinel == nil {
		sentinel = SentinelForStatus(status)
	}
	return &core.ProviderError{
		Provider:  provider,
		Status:    status,
		RequestID: requestID,
		Code:      code,
		Message:   message,
		Err:       sentinel,
	}
}

// SentinelForStatus maps an HTTP status code to a core sentinel error.
func SentinelForStatus(status int) error {
	return SentinelForStatusWithOverrides(status, nil)
}

// SentinelForStatusWithOverrides maps an HTTP status code to a core sentinel error,
// then applies any exact status overrides from the provided map.
func SentinelForStatusWithOverrides(status int, overrides map[int]error) error {
	if override, ok := overrides[status]; ok && override != nil {
		return override
	}

	switch {
	case status == http.StatusBadRequest:
		return core.ErrBadRequest
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return core.ErrUnauthorized
	case status == http.StatusNotFound:
		return core.ErrNotFound
	case status == http.StatusTooManyRequests:
		return core.ErrRateLimited
	default:
		return core.ErrServer
	}
}
