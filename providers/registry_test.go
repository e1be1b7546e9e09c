package providers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petal-labs/promptrun/core"
)

// mockProvider implements core.Provider for testing.
type mockProvider struct {
	id      string
	apiKey  string
	baseURL string
}

func (m *mockProvider) ID() string { return m.id }
func (m *mockProvider) Chat(context.Context, *core.ChatRequest) (*core.ChatResponse, error) {
	return nil, nil
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test-backend", func(ctx context.Context, apiKey core.Secret, s Settings) (core.Provider, error) {
		return &mockProvider{id: "test", apiKey: apiKey.Expose(), baseURL: s.BaseURL}, nil
	})

	assert.True(t, IsRegistered("test-backend"))
	assert.False(t, IsRegistered("nonexistent"))
	assert.Contains(t, List(), "test-backend")

	p, err := Create(context.Background(), "test-backend", core.NewSecret("k"), Settings{BaseURL: "http://localhost"})
	require.NoError(t, err)

	mp, ok := p.(*mockProvider)
	require.True(t, ok)
	assert.Equal(t, "k", mp.apiKey)
	assert.Equal(t, "http://localhost", mp.baseURL)
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create(context.Background(), "nonexistent", core.NewSecret("k"), Settings{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown backend: nonexistent")
}

func TestCreatePropagatesFactoryError(t *testing.T) {
	Register("broken-backend", func(context.Context, core.Secret, Settings) (core.Provider, error) {
		return nil, errors.New("bad settings")
	})

	_, err := Create(context.Background(), "broken-backend", core.NewSecret("k"), Settings{})
	assert.EqualError(t, err, "bad settings")
}

func TestListSorted(t *testing.T) {
	factory := func(context.Context, core.Secret, Settings) (core.Provider, error) { return &mockProvider{}, nil }
	Register("zz-backend", factory)
	Register("aa-backend", factory)

	names := List()
	assert.IsNonDecreasing(t, names)
	assert.Nil(t, Get("not-there"))
}
