package commands

import (
	"context"
	"fmt"

	"github.com/petal-labs/promptrun/cli/config"
	"github.com/petal-labs/promptrun/core"
	"github.com/petal-labs/promptrun/providers"
	"github.com/petal-labs/promptrun/providers/gemini"
	"github.com/petal-labs/promptrun/providers/genai"
)

// ProviderFactory creates a provider for a backend using CLI config context.
type ProviderFactory func(ctx context.Context, backend string, apiKey core.Secret, cfg *config.Config) (core.Provider, error)

type providerConstructor func(ctx context.Context, apiKey core.Secret, baseURL string) (core.Provider, error)

func defaultProviderFactory() ProviderFactory {
	constructors := map[string]providerConstructor{
		"sdk": func(ctx context.Context, apiKey core.Secret, baseURL string) (core.Provider, error) {
			var opts []genai.Option
			if baseURL != "" {
				opts = append(opts, genai.WithBaseURL(baseURL))
			}
			return genai.New(ctx, apiKey, opts...)
		},
		"rest": func(_ context.Context, apiKey core.Secret, baseURL string) (core.Provider, error) {
			var opts []gemini.Option
			if baseURL != "" {
				opts = append(opts, gemini.WithBaseURL(baseURL))
			}
			return gemini.New(apiKey, opts...), nil
		},
	}

	return func(ctx context.Context, backend string, apiKey core.Secret, cfg *config.Config) (core.Provider, error) {
		baseURL := ""
		if cfg != nil {
			baseURL = cfg.BaseURL
		}
		if ctor, ok := constructors[backend]; ok {
			return ctor(ctx, apiKey, baseURL)
		}

		// Fall back to registry for externally-registered backends.
		if providers.IsRegistered(backend) {
			return providers.Create(ctx, backend, apiKey, providers.Settings{BaseURL: baseURL})
		}

		return nil, fmt.Errorf("unsupported backend: %s (available: %v)", backend, providers.List())
	}
}
