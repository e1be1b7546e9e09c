// Package genai provides a promptrun provider on top of the Google Gen AI SDK
// (google.golang.org/genai) talking to the Gemini Developer API.
package genai

import (
	"context"
	"fmt"

	googlegenai "google.golang.org/genai"

	"github.com/petal-labs/promptrun/core"
)

// GenAI is a provider backed by the vendor SDK client.
// GenAI is safe for concurrent use.
type GenAI struct {
	client *googlegenai.Client
	config Config
}

// New creates a provider bound to apiKey. The SDK client is configured locally;
// no request is sent until Chat is called.
func New(ctx context.Context, apiKey core.Secret, opts ...Option) (*GenAI, error) {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}

	client, err := googlegenai.NewClient(ctx, &googlegenai.ClientConfig{
		APIKey:     apiKey.Expose(),
		Backend:    googlegenai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
		HTTPOptions: googlegenai.HTTPOptions{
			BaseURL:    cfg.BaseURL,
			APIVersion: cfg.APIVersion,
			Headers:    cfg.Headers,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("genai: create client: %w", err)
	}

	return &GenAI{client: client, config: cfg}, nil
}

// ID returns the provider identifier.
func (p *GenAI) ID() string {
	return "genai"
}

// Chat sends a single GenerateContent call.
func (p *GenAI) Chat(ctx context.Context, req *core.ChatRequest) (*core.ChatResponse, error) {
	contents, config := buildContents(req)

	resp, err := p.client.Models.GenerateContent(ctx, string(req.Model), contents, config)
	if err != nil {
		return nil, normalizeError(err)
	}

	return mapResponse(resp, req.Model)
}

var _ core.Provider = (*GenAI)(nil)
