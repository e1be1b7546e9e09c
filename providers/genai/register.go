package genai

import (
	"context"

	"github.com/petal-labs/promptrun/core"
	"github.com/petal-labs/promptrun/providers"
)

func init() {
	providers.Register(providers.DefaultBackend, func(ctx context.Context, apiKey core.Secret, s providers.Settings) (core.Provider, error) {
		return New(ctx, apiKey, WithBaseURL(s.BaseURL))
	})
}
