package genai

import "net/http"

// Config holds configuration for the SDK-backed provider.
type Config struct {
	// BaseURL overrides the SDK's default endpoint. Empty keeps the SDK default.
	BaseURL string

	// APIVersion overrides the SDK's default API version (v1beta).
	APIVersion string

	// HTTPClient is handed to the SDK. Nil lets the SDK build its own.
	HTTPClient *http.Client

	// Headers contains optional extra headers to include in requests.
	Headers http.Header
}

// Option configures the provider.
type Option func(*Config)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *Config) {
		c.BaseURL = url
	}
}

// WithAPIVersion sets the API version path segment.
func WithAPIVersion(v string) Option {
	return func(c *Config) {
		c.APIVersion = v
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Config) {
		c.HTTPClient = client
	}
}

// WithHeader adds an extra header to include in requests.
func WithHeader(key, value string) Option {
	return func(c *Config) {
		if c.Headers == nil {
			c.Headers = make(http.Header)
		}
		c.Headers.Set(key, value)
	}
}
