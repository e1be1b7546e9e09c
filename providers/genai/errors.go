package genai

import (
	"errors"
	"net/http"

	googlegenai "google.golang.org/genai"

	"github.com/petal-labs/promptrun/core"
	"github.com/petal-labs/promptrun/providers/internal/normalize"
)

// normalizeError maps SDK errors onto ProviderError sentinels.
// API errors keep their HTTP status; everything else is a transport failure.
func normalizeError(err error) error {
	var apiErr googlegenai.APIError
	if errors.As(err, &apiErr) {
		return fromAPIError(apiErr)
	}
	var apiErrPtr *googlegenai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return fromAPIError(*apiErrPtr)
	}
	return newNetworkError(err)
}

func fromAPIError(apiErr googlegenai.APIError) error {
	sentinel := normalize.SentinelForStatusWithOverrides(apiErr.Code, map[int]error{
		http.StatusNotFound: core.ErrBadRequest,
	})
	return normalize.ProviderError("genai", apiErr.Code, "", apiErr.Status, apiErr.Message, sentinel)
}

func newNetworkError(err error) error {
	return normalize.NetworkError("genai", err)
}

func newDecodeError(err error) error {
	return normalize.DecodeError("genai", err)
}
