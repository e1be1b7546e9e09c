package logging

import (
	"github.com/charmbracelet/log"

	"github.com/petal-labs/promptrun/core"
)

// TelemetryHook logs request lifecycle events.
// It only ever logs metadata: never the key, the prompt or the reply.
type TelemetryHook struct {
	logger *log.Logger
}

// NewTelemetryHook returns a hook that writes to logger.
func NewTelemetryHook(logger *log.Logger) *TelemetryHook {
	return &TelemetryHook{logger: logger}
}

// OnRequestStart logs the outgoing request at debug level.
func (h *TelemetryHook) OnRequestStart(e core.RequestStartEvent) {
	h.logger.Debug("request start", "provider", e.Provider, "model", e.Model)
}

// OnRequestEnd logs completion at debug level and failures at info level.
func (h *TelemetryHook) OnRequestEnd(e core.RequestEndEvent) {
	if e.Err != nil {
		h.logger.Info("request failed",
			"provider", e.Provider,
			"model", e.Model,
			"duration", e.Duration(),
			"error_class", core.Class(e.Err),
		)
		return
	}

	h.logger.Debug("request done",
		"provider", e.Provider,
		"model", e.Model,
		"duration", e.Duration(),
		"prompt_tokens", e.Usage.PromptTokens,
		"completion_tokens", e.Usage.CompletionTokens,
		"total_tokens", e.Usage.TotalTokens,
	)
}

var _ core.TelemetryHook = (*TelemetryHook)(nil)
