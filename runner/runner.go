// Package runner sends the fixed prompt to a model once and prints the outcome.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/petal-labs/promptrun/core"
)

const (
	// Prompt is the only input ever sent to the model.
	Prompt = "Explain quantum computing in simple terms."

	// DefaultModel is used when no model is configured.
	DefaultModel core.ModelID = "gemini-2.5-flash"

	// CallFailureHeader is printed on its own line before the error of a failed call.
	CallFailureHeader = "Error calling Gemini API:"
)

// ProviderFactory builds the provider for a validated, non-empty credential.
type ProviderFactory func(ctx context.Context, apiKey core.Secret) (core.Provider, error)

// Runner is the PromptRunner: one credential check, one request, one print.
// A Runner holds no state between calls to Run.
type Runner struct {
	factory   ProviderFactory
	model     core.ModelID
	stdout    io.Writer
	telemetry core.TelemetryHook
}

// Option customizes a Runner.
type Option func(*Runner)

// WithModel sets the model reference. An empty model keeps DefaultModel.
func WithModel(m core.ModelID) Option {
	return func(r *Runner) {
		if m != "" {
			r.model = m
		}
	}
}

// WithOutput sets where the response or failure report is printed.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		if w != nil {
			r.stdout = w
		}
	}
}

// WithTelemetry sets the telemetry hook handed to the client.
func WithTelemetry(h core.TelemetryHook) Option {
	return func(r *Runner) {
		r.telemetry = h
	}
}

// New creates a Runner that builds its provider with factory.
func New(factory ProviderFactory, opts ...Option) *Runner {
	r := &Runner{
		factory: factory,
		model:   DefaultModel,
		stdout:  os.Stdout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Model returns the model reference every run uses.
func (r *Runner) Model() core.ModelID {
	return r.model
}

// Run validates apiKey, sends Prompt to the model and prints the result.
//
// An empty apiKey returns an error wrapping core.ErrMissingCredential before
// the provider is built. A failed model call is printed as CallFailureHeader
// followed by the error and Run returns nil. Only a missing credential, a
// provider construction failure or a failed write is returned.
func (r *Runner) Run(ctx context.Context, apiKey core.Secret) error {
	if apiKey.IsEmpty() {
		return fmt.Errorf("%w: empty API key", core.ErrMissingCredential)
	}

	provider, err := r.factory(ctx, apiKey)
	if err != nil {
		return fmt.Errorf("initialize client: %w", err)
	}

	client := core.NewClient(provider, core.WithTelemetry(r.telemetry))
	resp, err := client.Chat(r.model).User(Prompt).GetResponse(ctx)
	if err != nil {
		return r.reportFailure(err)
	}

	_, err = fmt.Fprintln(r.stdout, resp.Output)
	return err
}

func (r *Runner) reportFailure(callErr error) error {
	if _, err := fmt.Fprintln(r.stdout, CallFailureHeader); err != nil {
		return err
	}
	_, err := fmt.Fprintln(r.stdout, callErr)
	return err
}
