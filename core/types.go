package core

// ModelID is a string identifier for a hosted model.
// Using string avoids coupling to provider-specific enums.
type ModelID string

// Role represents a message participant role.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message represents a single text message sent to the model.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// TokenUsage tracks token consumption for a request.
// It is only reported through telemetry, never printed.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ChatRequest represents a request to a model.
type ChatRequest struct {
	Model    ModelID   `json:"model"`
	Messages []Message `json:"messages"`
}

// ChatResponse represents a response from a model.
// Only the first candidate returned by the service is used.
type ChatResponse struct {
	ID           string     `json:"id,omitempty"`
	Model        ModelID    `json:"model"`
	Output       string     `json:"output"`
	FinishReason string     `json:"finish_reason,omitempty"`
	Usage        TokenUsage `json:"usage"`
}
