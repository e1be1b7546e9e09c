package commands

import (
	"context"
	"fmt"

	"github.com/petal-labs/promptrun/cli/logging"
	"github.com/petal-labs/promptrun/core"
	"github.com/petal-labs/promptrun/runner"
)

// runPrompt loads the credential and hands off to the runner.
// A missing credential or a bad backend ends the process with ExitValidation;
// a failed model call has already been printed and exits with ExitSuccess.
func (a *App) runPrompt(ctx context.Context) error {
	logger := logging.New(a.stderr, a.verbose)

	lookup, err := a.newEnvLookup(a.envFile)
	if err != nil {
		return exitWithCode(ExitValidation, fmt.Errorf("read env file %s: %w", a.envFile, err))
	}

	apiKey, err := core.LoadCredential(lookup, a.apiKeyEnv, a.cfg.APIKey)
	if err != nil {
		return exitWithCode(ExitValidation, err)
	}

	factory := func(ctx context.Context, key core.Secret) (core.Provider, error) {
		return a.createProvider(ctx, a.backend, key, a.cfg)
	}

	r := runner.New(factory,
		runner.WithModel(core.ModelID(a.model)),
		runner.WithOutput(a.stdout),
		runner.WithTelemetry(logging.NewTelemetryHook(logger)),
	)

	logger.Debug("sending prompt", "backend", a.backend, "model", r.Model(), "key_env", a.apiKeyEnv)

	if err := r.Run(ctx, apiKey); err != nil {
		return exitWithCode(ExitValidation, err)
	}
	return nil
}
