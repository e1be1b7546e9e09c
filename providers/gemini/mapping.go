package gemini

import (
	"errors"
	"fmt"
	"strings"

	"github.com/petal-labs/promptrun/core"
)

// errNoCandidates is returned when the service answers without any candidate.
var errNoCandidates = errors.New("no candidates in response")

// buildRequest creates a Gemini API request from a ChatRequest.
func buildRequest(req *core.ChatRequest) *geminiRequest {
	system, contents := mapMessages(req.Messages)

	gemReq := &geminiRequest{
		Contents: contents,
	}

	if system != "" {
		gemReq.SystemInstruction = &geminiContent{
			Parts: []geminiPart{{Text: system}},
		}
	}

	return gemReq
}

// mapMessages extracts system messages into a single string and converts
// user/assistant messages to the Gemini content format.
func mapMessages(msgs []core.Message) (system string, contents []geminiContent) {
	var systemParts []string

	for _, msg := range msgs {
		switch msg.Role {
		case core.RoleSystem:
			systemParts = append(systemParts, msg.Content)
		case core.RoleUser:
			contents = append(contents, geminiContent{
				Role:  "user",
				Parts: []geminiPart{{Text: msg.Content}},
			})
		case core.RoleAssistant:
			contents = append(contents, geminiContent{
				Role:  "model",
				Parts: []geminiPart{{Text: msg.Content}},
			})
		}
	}

	return strings.Join(systemParts, "\n\n"), contents
}

// mapResponse converts a Gemini response to a ChatResponse.
// Thought parts are dropped; text parts of the first candidate are concatenated.
func mapResponse(resp *geminiResponse, model core.ModelID) (*core.ChatResponse, error) {
	if len(resp.Candidates) == 0 {
		err := errNoCandidates
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			err = fmt.Errorf("%w: prompt blocked (%s)", errNoCandidates, resp.PromptFeedback.BlockReason)
		}
		return nil, newDecodeError(err)
	}

	result := &core.ChatResponse{
		ID:    resp.ResponseID,
		Model: model,
	}
	if resp.ModelVersion != "" {
		result.Model = core.ModelID(resp.ModelVersion)
	}

	if resp.UsageMetadata != nil {
		u := resp.UsageMetadata
		total := u.TotalTokenCount
		if total == 0 {
			total = u.PromptTokenCount + u.CandidatesTokenCount + u.ThoughtsTokenCount
		}
		result.Usage = core.TokenUsage{
			PromptTokens:     u.PromptTokenCount,
			CompletionTokens: u.CandidatesTokenCount,
			TotalTokens:      total,
		}
	}

	candidate := resp.Candidates[0]
	result.FinishReason = candidate.FinishReason

	var textParts []string
	for _, part := range candidate.Content.Parts {
		if part.Thought != nil && *part.Thought {
			continue
		}
		if part.Text != "" {
			textParts = append(textParts, part.Text)
		}
	}
	result.Output = strings.Join(textParts, "")

	return result, nil
}
