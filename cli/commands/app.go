// Package commands implements the CLI command structure using Cobra.
package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/petal-labs/promptrun/cli/config"
	"github.com/petal-labs/promptrun/core"
	"github.com/petal-labs/promptrun/providers"
	"github.com/petal-labs/promptrun/runner"
)

// ConfigLoader loads CLI config from a path.
type ConfigLoader func(path string) (*config.Config, error)

// EnvLookupFactory builds the variable lookup used to find the API key,
// given the dotenv file path.
type EnvLookupFactory func(envFile string) (core.LookupFunc, error)

// AppOption customizes App dependencies.
type AppOption func(*App)

// App holds CLI state and runtime dependencies.
type App struct {
	root *cobra.Command

	loadConfig     ConfigLoader
	createProvider ProviderFactory
	newEnvLookup   EnvLookupFactory
	stdout         io.Writer
	stderr         io.Writer
	cfgFile        string
	envFile        string
	model          string
	backend        string
	apiKeyEnv      string
	verbose        bool
	cfg            *config.Config
}

// WithConfigLoader injects a config loader dependency.
func WithConfigLoader(loader ConfigLoader) AppOption {
	return func(a *App) {
		if loader != nil {
			a.loadConfig = loader
		}
	}
}

// WithProviderFactory injects a provider factory dependency.
func WithProviderFactory(factory ProviderFactory) AppOption {
	return func(a *App) {
		if factory != nil {
			a.createProvider = factory
		}
	}
}

// WithEnvLookup injects the credential variable lookup.
func WithEnvLookup(factory EnvLookupFactory) AppOption {
	return func(a *App) {
		if factory != nil {
			a.newEnvLookup = factory
		}
	}
}

// WithIO injects process output streams.
func WithIO(stdout, stderr io.Writer) AppOption {
	return func(a *App) {
		if stdout != nil {
			a.stdout = stdout
		}
		if stderr != nil {
			a.stderr = stderr
		}
	}
}

// NewApp creates a new CLI app with default dependencies.
func NewApp(opts ...AppOption) *App {
	a := &App{
		loadConfig:     config.LoadConfig,
		createProvider: defaultProviderFactory(),
		newEnvLookup:   config.EnvLookup,
		stdout:         os.Stdout,
		stderr:         os.Stderr,
	}

	for _, opt := range opts {
		opt(a)
	}

	a.root = a.newRootCommand()
	return a
}

func (a *App) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "promptrun",
		Short: "Ask Gemini to explain quantum computing",
		Long: `promptrun sends one fixed prompt to a hosted Gemini model and prints the reply.

The API key is read from GEMINI_API_KEY (or the variable named by --api-key-env),
from the process environment or a .env file. Call failures are printed to
standard output and do not change the exit status.`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPrompt(cmd.Context())
		},
		SilenceUsage: true,
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	// Global flags available to all commands.
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ~/.promptrun/config.yaml)")
	root.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "enable debug logging")

	root.Flags().StringVar(&a.envFile, "env-file", config.DefaultEnvFile, "dotenv file consulted for the API key")
	root.Flags().StringVar(&a.model, "model", "", "model ID (default "+string(runner.DefaultModel)+")")
	root.Flags().StringVar(&a.backend, "backend", "", "client backend: sdk or rest (default "+providers.DefaultBackend+")")
	root.Flags().StringVar(&a.apiKeyEnv, "api-key-env", "", "environment variable holding the API key (default "+core.DefaultCredentialEnv+")")

	root.AddCommand(a.newVersionCommand())

	return root
}

// Execute runs the root command.
func (a *App) Execute() error {
	return a.root.Execute()
}

// SetArgs overrides the command-line arguments, mainly for tests.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

func (a *App) initConfig() error {
	path := a.cfgFile
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg, err := a.loadConfig(path)
	if err != nil {
		return exitWithCode(ExitValidation, err)
	}
	a.cfg = cfg

	// Flags win over the config file, which wins over built-in defaults.
	a.model = firstNonEmpty(a.model, cfg.Model, string(runner.DefaultModel))
	a.backend = firstNonEmpty(a.backend, cfg.Backend, providers.DefaultBackend)
	a.apiKeyEnv = firstNonEmpty(a.apiKeyEnv, cfg.APIKeyEnv, core.DefaultCredentialEnv)

	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

var defaultApp = NewApp()

// Execute runs the default app root command.
func Execute() error {
	return defaultApp.Execute()
}
