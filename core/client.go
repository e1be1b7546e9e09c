package core

import (
	"context"
	"time"
)

// Provider is the interface that model backends must implement.
type Provider interface {
	// ID returns the provider identifier (e.g., "genai", "gemini").
	ID() string

	// Chat sends a single blocking request and returns the model's reply.
	Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error)
}

// Client is the main entry point for calling a model.
type Client struct {
	provider  Provider
	telemetry TelemetryHook
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a new Client with the given provider and options.
func NewClient(p Provider, opts ...ClientOption) *Client {
	c := &Client{
		provider:  p,
		telemetry: NoopTelemetryHook{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithTelemetry sets the telemetry hook for the client.
func WithTelemetry(h TelemetryHook) ClientOption {
	return func(c *Client) {
		if h != nil {
			c.telemetry = h
		}
	}
}

// Provider returns the underlying provider.
func (c *Client) Provider() Provider {
	return c.provider
}

// Chat returns a ChatBuilder for constructing and executing a request.
func (c *Client) Chat(model ModelID) *ChatBuilder {
	return &ChatBuilder{
		client: c,
		req: ChatRequest{
			Model: model,
		},
	}
}

// ChatBuilder provides a fluent API for building requests.
// ChatBuilder is NOT thread-safe and should not be shared across goroutines.
type ChatBuilder struct {
	client *Client
	req    ChatRequest
}

// System appends a system message.
func (b *ChatBuilder) System(s string) *ChatBuilder {
	b.req.Messages = append(b.req.Messages, Message{Role: RoleSystem, Content: s})
	return b
}

// User appends a user message.
func (b *ChatBuilder) User(s string) *ChatBuilder {
	b.req.Messages = append(b.req.Messages, Message{Role: RoleUser, Content: s})
	return b
}

// validate checks that the request is valid.
func (b *ChatBuilder) validate() error {
	if b.req.Model == "" {
		return ErrModelRequired
	}
	if len(b.req.Messages) == 0 {
		return ErrNoMessages
	}
	for _, msg := range b.req.Messages {
		if msg.Content == "" {
			return ErrNoMessages
		}
	}
	return nil
}

// GetResponse executes the request exactly once and returns the response.
// There is no retry; the first error from the provider is returned as is.
func (b *ChatBuilder) GetResponse(ctx context.Context) (*ChatResponse, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	providerID := b.client.provider.ID()

	b.client.telemetry.OnRequestStart(RequestStartEvent{
		Provider: providerID,
		Model:    b.req.Model,
		Start:    start,
	})

	resp, err := b.client.provider.Chat(ctx, &b.req)

	usage := TokenUsage{}
	if resp != nil {
		usage = resp.Usage
	}
	b.client.telemetry.OnRequestEnd(RequestEndEvent{
		Provider: providerID,
		Model:    b.req.Model,
		Start:    start,
		End:      time.Now(),
		Usage:    usage,
		Err:      err,
	})

	return resp, err
}
