package gemini

import (
	"encoding/json"
	"net/http"

	"github.com/petal-labs/promptrun/core"
	"github.com/petal-labs/promptrun/providers/internal/normalize"
)

// normalizeError converts an HTTP error response to a ProviderError with the appropriate sentinel.
func normalizeError(status int, body []byte) error {
	var errResp geminiErrorResponse
	_ = json.Unmarshal(body, &errResp)

	// Gemini reports unknown models as 404; treat them as a bad request.
	sentinel := normalize.SentinelForStatusWithOverrides(status, map[int]error{
		http.StatusNotFound: core.ErrBadRequest,
	})

	return normalize.ProviderError("gemini", status, "", errResp.Error.Status, errResp.Error.Message, sentinel)
}

// newNetworkError creates a ProviderError for network-related failures.
func newNetworkError(err error) error {
	return normalize.NetworkError("gemini", err)
}

// newDecodeError creates a ProviderError for JSON decode failures.
func newDecodeError(err error) error {
	return normalize.DecodeError("gemini", err)
}
