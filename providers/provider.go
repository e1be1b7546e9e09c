// Package providers holds the registry of model backends for promptrun.
//
// Each backend lives in its own subpackage and registers itself from init():
//
//	providers/genai   "sdk"   the vendor SDK, google.golang.org/genai (default)
//	providers/gemini  "rest"  a direct client for the generateContent REST endpoint
//
// Backends implement core.Provider. Construction is local configuration only;
// the single network call happens in Chat.
package providers

// DefaultBackend is the backend used when none is configured.
const DefaultBackend = "sdk"
