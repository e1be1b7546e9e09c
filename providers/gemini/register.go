package gemini

import (
	"context"

	"github.com/petal-labs/promptrun/core"
	"github.com/petal-labs/promptrun/providers"
)

func init() {
	providers.Register("rest", func(_ context.Context, apiKey core.Secret, s providers.Settings) (core.Provider, error) {
		return New(apiKey, WithBaseURL(s.BaseURL)), nil
	})
}
