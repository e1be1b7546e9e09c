package gemini

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petal-labs/promptrun/core"
)

func TestNormalizeError(t *testing.T) {
	err := normalizeError(http.StatusUnauthorized, []byte(`{"error":{"code":401,"message":"Request had invalid authentication credentials.","status":"UNAUTHENTICATED"}}`))

	var provErr *core.ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, "UNAUTHENTICATED", provErr.Code)
	assert.ErrorIs(t, err, core.ErrUnauthorized)
	assert.Equal(t, "gemini: Request had invalid authentication credentials. (status=401, code=UNAUTHENTICATED)", err.Error())
}

func TestNormalizeErrorNonJSONBody(t *testing.T) {
	err := normalizeError(http.StatusBadGateway, []byte("<html>bad gateway</html>"))

	var provErr *core.ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, "Bad Gateway", provErr.Message)
	assert.Equal(t, "unknown_error", provErr.Code)
	assert.ErrorIs(t, err, core.ErrServer)
}

func TestNetworkAndDecodeHelpers(t *testing.T) {
	assert.ErrorIs(t, newNetworkError(errors.New("reset")), core.ErrNetwork)
	assert.ErrorIs(t, newDecodeError(errors.New("eof")), core.ErrDecode)
}
