package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petal-labs/promptrun/core"
)

func TestBuildRequestSystemInstruction(t *testing.T) {
	req := buildRequest(&core.ChatRequest{
		Model: "gemini-2.5-flash",
		Messages: []core.Message{
			{Role: core.RoleSystem, Content: "Be brief."},
			{Role: core.RoleSystem, Content: "Use plain words."},
			{Role: core.RoleUser, Content: "Hello"},
			{Role: core.RoleAssistant, Content: "Hi"},
		},
	})

	require.NotNil(t, req.SystemInstruction)
	assert.Equal(t, "Be brief.\n\nUse plain words.", req.SystemInstruction.Parts[0].Text)

	require.Len(t, req.Contents, 2)
	assert.Equal(t, "user", req.Contents[0].Role)
	assert.Equal(t, "model", req.Contents[1].Role)
}

func TestMapResponseSkipsThoughts(t *testing.T) {
	thought := true
	resp, err := mapResponse(&geminiResponse{
		Candidates: []geminiCandidate{{
			Content: geminiContent{Parts: []geminiPart{
				{Text: "thinking about qubits", Thought: &thought},
				{Text: "Quantum computers "},
				{Text: "use qubits."},
			}},
		}},
		UsageMetadata: &geminiUsage{PromptTokenCount: 3, CandidatesTokenCount: 4, ThoughtsTokenCount: 5, TotalTokenCount: 12},
		ModelVersion:  "gemini-2.5-flash-001",
	}, "gemini-2.5-flash")
	require.NoError(t, err)

	assert.Equal(t, "Quantum computers use qubits.", resp.Output)
	assert.Equal(t, core.ModelID("gemini-2.5-flash-001"), resp.Model)
	assert.Equal(t, 12, resp.Usage.TotalTokens)
}

func TestMapResponseNoCandidates(t *testing.T) {
	_, err := mapResponse(&geminiResponse{}, "gemini-2.5-flash")
	assert.ErrorIs(t, err, core.ErrDecode)
	assert.ErrorContains(t, err, "no candidates in response")
}

func TestMapResponseBlockedPrompt(t *testing.T) {
	_, err := mapResponse(&geminiResponse{
		PromptFeedback: &geminiPromptFeedback{BlockReason: "SAFETY"},
	}, "gemini-2.5-flash")
	assert.ErrorIs(t, err, core.ErrDecode)
	assert.ErrorContains(t, err, "prompt blocked (SAFETY)")
}
