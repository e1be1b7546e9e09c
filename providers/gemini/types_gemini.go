// Package gemini provides a Google Gemini REST API provider for promptrun.
package gemini

// geminiRequest represents a request to the Gemini generateContent API.
type geminiRequest struct {
	Contents          []geminiContent `json:"contents"`
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
}

// geminiContent represents a content block (user or model turn).
type geminiContent struct {
	Role  string       `json:"role,omitempty"` // "user" or "model"
	Parts []geminiPart `json:"parts"`
}

// geminiPart represents a part within content.
type geminiPart struct {
	Text    string `json:"text,omitempty"`
	Thought *bool  `json:"thought,omitempty"`
}

// geminiResponse represents a response from the Gemini API.
type geminiResponse struct {
	Candidates     []geminiCandidate     `json:"candidates"`
	PromptFeedback *geminiPromptFeedback `json:"promptFeedback,omitempty"`
	UsageMetadata  *geminiUsage          `json:"usageMetadata,omitempty"`
	ModelVersion   string                `json:"modelVersion,omitempty"`
	ResponseID     string                `json:"responseId,omitempty"`
}

// geminiCandidate represents a response candidate.
type geminiCandidate struct {
	Content      geminiContent `json:"content"`
	FinishReason string        `json:"finishReason,omitempty"`
}

// geminiPromptFeedback is set when the prompt itself was blocked.
type geminiPromptFeedback struct {
	BlockReason string `json:"blockReason,omitempty"`
}

// geminiUsage tracks token usage.
type geminiUsage struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	ThoughtsTokenCount   int `json:"thoughtsTokenCount,omitempty"`
	TotalTokenCount      int `json:"totalTokenCount,omitempty"`
}

// geminiErrorResponse represents an error response from the API.
type geminiErrorResponse struct {
	Error geminiError `json:"error"`
}

// geminiError contains error details.
type geminiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}
