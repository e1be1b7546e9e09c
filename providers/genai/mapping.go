package genai

import (
	"errors"
	"fmt"
	"strings"

	googlegenai "google.golang.org/genai"

	"github.com/petal-labs/promptrun/core"
)

var errNoCandidates = errors.New("no candidates in response")

// buildContents converts messages into SDK contents. System messages are joined
// into the SystemInstruction of the returned config, which is nil when there are none.
func buildContents(req *core.ChatRequest) ([]*googlegenai.Content, *googlegenai.GenerateContentConfig) {
	var (
		contents    []*googlegenai.Content
		systemParts []string
	)

	for _, msg := range req.Messages {
		switch msg.Role {
		case core.RoleSystem:
			systemParts = append(systemParts, msg.Content)
		case core.RoleUser:
			contents = append(contents, googlegenai.NewContentFromText(msg.Content, googlegenai.RoleUser))
		case core.RoleAssistant:
			contents = append(contents, googlegenai.NewContentFromText(msg.Content, googlegenai.RoleModel))
		}
	}

	if len(systemParts) == 0 {
		return contents, nil
	}
	return contents, &googlegenai.GenerateContentConfig{
		SystemInstruction: googlegenai.NewContentFromText(strings.Join(systemParts, "\n\n"), googlegenai.RoleUser),
	}
}

// mapResponse converts the SDK response to a ChatResponse using the SDK's
// own text extraction for the first candidate.
func mapResponse(resp *googlegenai.GenerateContentResponse, model core.ModelID) (*core.ChatResponse, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		err := errNoCandidates
		if resp != nil && resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			err = fmt.Errorf("%w: prompt blocked (%s)", errNoCandidates, resp.PromptFeedback.BlockReason)
		}
		return nil, newDecodeError(err)
	}

	result := &core.ChatResponse{
		ID:     resp.ResponseID,
		Model:  model,
		Output: resp.Text(),
	}
	if resp.ModelVersion != "" {
		result.Model = core.ModelID(resp.ModelVersion)
	}
	if c := resp.Candidates[0]; c != nil {
		result.FinishReason = string(c.FinishReason)
	}

	if u := resp.UsageMetadata; u != nil {
		result.Usage = core.TokenUsage{
			PromptTokens:     int(u.PromptTokenCount),
			CompletionTokens: int(u.CandidatesTokenCount),
			TotalTokens:      int(u.TotalTokenCount),
		}
	}

	return result, nil
}
