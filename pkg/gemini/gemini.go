package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Generate generates content based on the prompt.
func (g *geminiImpl) Generate(ctx context.Context, prompt string) (string, error) {
	return g.GenerateContent(ctx, GenerateOptions{Prompt: prompt})
}

// GenerateContent sends a prompt with optional inline audio and returns the concatenated text parts.
func (g *geminiImpl) GenerateContent(ctx context.Context, opts GenerateOptions) (string, error) {
	if g.apiKey == "" {
		return "", ErrAPIKeyRequired
	}
	url := fmt.Sprintf("%s/%s:generateContent", g.baseURL, g.model)

	parts := make([]Part, 0, 2)
	if len(opts.Audio) > 0 {
		parts = append(parts, Part{InlineData: &InlineData{
			MimeType: opts.AudioMIME,
			Data:     base64.StdEncoding.EncodeToString(opts.Audio),
		}})
	}
	parts = append(parts, Part{Text: opts.Prompt})

	req := Request{Contents: []Content{{Role: "user", Parts: parts}}}
	if opts.JSON || opts.Temperature != nil {
		req.GenerationConfig = &GenerationConfig{Temperature: opts.Temperature}
		if opts.JSON {
			req.GenerationConfig.ResponseMimeType = "application/json"
		}
	}

	body, statusCode, err := g.httpClient.PostJSON(ctx, url, req, map[string]string{apiKeyHeader: g.apiKey})
	if err != nil {
		return "", fmt.Errorf("failed to call Gemini API: %w", err)
	}

	if statusCode != http.StatusOK {
		return "", &APIError{StatusCode: statusCode, Body: truncate(string(body), 512)}
	}

	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to unmarshal Gemini response: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	return b.String(), nil
}

// Model returns the configured model name.
func (g *geminiImpl) Model() string {
	return g.model
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
