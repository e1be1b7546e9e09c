package gemini

import (
	"context"
	"net/http"
	"strings"

	"github.com/petal-labs/promptrun/core"
)

// Gemini is a provider speaking the Gemini generateContent REST API directly.
// Gemini is safe for concurrent use.
type Gemini struct {
	config Config
}

// New creates a new Gemini provider with the given API key and options.
func New(apiKey core.Secret, opts ...Option) *Gemini {
	cfg := Config{
		APIKey:     apiKey,
		BaseURL:    DefaultBaseURL,
		HTTPClient: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return &Gemini{config: cfg}
}

// ID returns the provider identifier.
func (p *Gemini) ID() string {
	return "gemini"
}

// buildHeaders constructs the HTTP headers for an API request.
func (p *Gemini) buildHeaders() http.Header {
	headers := make(http.Header)

	headers.Set("x-goog-api-key", p.config.APIKey.Expose())
	headers.Set("Content-Type", "application/json")

	for key, values := range p.config.Headers {
		for _, v := range values {
			headers.Add(key, v)
		}
	}

	return headers
}

// Chat sends a single generateContent request.
func (p *Gemini) Chat(ctx context.Context, req *core.ChatRequest) (*core.ChatResponse, error) {
	return p.doChat(ctx, req)
}

var _ core.Provider = (*Gemini)(nil)
