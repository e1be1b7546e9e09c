package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/petal-labs/promptrun/core"
)

// doChat performs a non-streaming generateContent request.
func (p *Gemini) doChat(ctx context.Context, req *core.ChatRequest) (*core.ChatResponse, error) {
	body, err := json.Marshal(buildRequest(req))
	if err != nil {
		return nil, newDecodeError(err)
	}

	// Model is in the URL path.
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", p.config.BaseURL, req.Model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, newNetworkError(err)
	}
	httpReq.Header = p.buildHeaders()

	resp, err := p.config.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, newNetworkError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newNetworkError(err)
	}

	if resp.StatusCode >= 400 {
		return nil, normalizeError(resp.StatusCode, respBody)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(respBody, &gemResp); err != nil {
		return nil, newDecodeError(err)
	}

	return mapResponse(&gemResp, req.Model)
}
