package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProviderErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *ProviderError
		want string
	}{
		{
			name: "with request id",
			err:  &ProviderError{Provider: "gemini", Status: 401, RequestID: "req_123", Code: "UNAUTHENTICATED", Message: "API key not valid"},
			want: "gemini: API key not valid (status=401, code=UNAUTHENTICATED, request_id=req_123)",
		},
		{
			name: "without request id",
			err:  &ProviderError{Provider: "gemini", Status: 429, Code: "RESOURCE_EXHAUSTED", Message: "quota"},
			want: "gemini: quota (status=429, code=RESOURCE_EXHAUSTED)",
		},
		{
			name: "transport failure",
			err:  &ProviderError{Provider: "genai", Message: "dial tcp: connection refused", Err: ErrNetwork},
			want: "genai: dial tcp: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestProviderErrorUnwrap(t *testing.T) {
	err := fmt.Errorf("call: %w", &ProviderError{Provider: "gemini", Status: 429, Err: ErrRateLimited})

	assert.ErrorIs(t, err, ErrRateLimited)
	assert.NotErrorIs(t, err, ErrUnauthorized)

	var provErr *ProviderError
	assert.ErrorAs(t, err, &provErr)
	assert.Equal(t, 429, provErr.Status)
}

func TestClass(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{fmt.Errorf("%w: GEMINI_API_KEY", ErrMissingCredential), "missing_credential"},
		{&ProviderError{Err: ErrUnauthorized}, "unauthorized"},
		{&ProviderError{Err: ErrRateLimited}, "rate_limited"},
		{&ProviderError{Err: ErrBadRequest}, "bad_request"},
		{&ProviderError{Err: ErrNotFound}, "not_found"},
		{&ProviderError{Err: ErrNetwork}, "network"},
		{&ProviderError{Err: ErrDecode}, "decode"},
		{&ProviderError{Err: ErrServer}, "server"},
		{errors.New("something else"), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Class(tt.err), "Class(%v)", tt.err)
	}
}
