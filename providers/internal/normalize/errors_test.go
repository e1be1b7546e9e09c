package normalize

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petal-labs/promptrun/core"
)

func TestSentinelForStatus(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, core.ErrBadRequest},
		{http.StatusUnauthorized, core.ErrUnauthorized},
		{http.StatusForbidden, core.ErrUnauthorized},
		{http.StatusNotFound, core.ErrNotFound},
		{http.StatusTooManyRequests, core.ErrRateLimited},
		{http.StatusInternalServerError, core.ErrServer},
		{http.StatusServiceUnavailable, core.ErrServer},
		{http.StatusTeapot, core.ErrServer},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, SentinelForStatus(tt.status))
		})
	}
}

func TestSentinelForStatusWithOverrides(t *testing.T) {
	overrides := map[int]error{http.StatusNotFound: core.ErrBadRequest}

	assert.Equal(t, core.ErrBadRequest, SentinelForStatusWithOverrides(http.StatusNotFound, overrides))
	assert.Equal(t, core.ErrRateLimited, SentinelForStatusWithOverrides(http.StatusTooManyRequests, overrides))
}

func TestProviderErrorDefaults(t *testing.T) {
	err := ProviderError("gemini", http.StatusTooManyRequests, "", "", "", nil)

	var provErr *core.ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, "Too Many Requests", provErr.Message)
	assert.Equal(t, "unknown_error", provErr.Code)
	assert.ErrorIs(t, err, core.ErrRateLimited)
}

func TestNetworkAndDecodeError(t *testing.T) {
	netErr := NetworkError("genai", errors.New("connection refused"))
	assert.ErrorIs(t, netErr, core.ErrNetwork)
	assert.EqualError(t, netErr, "genai: connection refused")

	decErr := DecodeError("gemini", errors.New("unexpected EOF"))
	assert.ErrorIs(t, decErr, core.ErrDecode)
	assert.EqualError(t, decErr, "gemini: unexpected EOF")
}
