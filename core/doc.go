// Package core provides the promptrun client and types.
//
// The core package defines the [Provider] abstraction that every backend
// implements, the [Client] that wraps a provider with telemetry, and the
// error taxonomy shared by the backends.
//
// # Client and Provider
//
//	key, err := core.LoadCredential(os.LookupEnv, core.DefaultCredentialEnv, "")
//	if err != nil {
//	    return err // wraps core.ErrMissingCredential
//	}
//	client := core.NewClient(genai.New(key.Expose()))
//	resp, err := client.Chat("gemini-2.5-flash").
//	    User("Explain quantum computing in simple terms.").
//	    GetResponse(ctx)
//
// A request is sent exactly once. There is no retry or streaming.
//
// # Errors
//
// Provider failures are returned as *[ProviderError] wrapping one of the
// sentinel errors ([ErrUnauthorized], [ErrRateLimited], [ErrBadRequest],
// [ErrServer], [ErrNetwork], [ErrDecode]). Use errors.Is to classify them
// and [Class] to get a log-safe name.
//
// # Secrets
//
// The API key travels as a [Secret], which redacts itself when printed,
// logged or marshaled.
package core
