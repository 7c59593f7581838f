package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// API Docs: https://ai.google.dev/api/generate-content
// Sample request: POST https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash:generateContent?key=...
const (
	baseGenerateURL = "https://generativelanguage.googleapis.com/v1beta/models"
	defaultModel    = "gemini-2.5-flash"
)

var ErrMissingAPIKey = errors.New("gemini API key is not configured")

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = defaultModel
	}
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseGenerateURL,
		apiKey:     apiKey,
		model:      model,
	}
}

// GenerateText sends a system instruction plus a user query and returns the
// first candidate's text.
func (c *Client) GenerateText(ctx context.Context, systemPrompt, userQuery string) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	reqBody := GenerateContentRequest{
		SystemInstruction: &Content{Parts: []Part{{Text: systemPrompt}}},
		Contents:          []Content{{Parts: []Part{{Text: userQuery}}}},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp GenerateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	text := apiResp.Text()
	if text == "" {
		return "", fmt.Errorf("response contains no candidate text")
	}

	return text, nil
}
