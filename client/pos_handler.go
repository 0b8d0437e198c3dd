package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"recapper/text"
)

// POSClient tags sentences through a spaCy-style model server.
type POSClient struct {
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

type posTagRequest struct {
	Text  string `json:"text"`
	Model string `json:"model"`
}

type posTagResponse struct {
	Tokens []text.Token `json:"tokens"`
}

var _ text.Tagger = (*POSClient)(nil)

func NewPosClient(baseURL, model string, timeout time.Duration) *POSClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &POSClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Model:   model,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Tag sends sentence to the /tag endpoint and returns its tokens
func (c *POSClient) Tag(ctx context.Context, sentence string) ([]text.Token, error) {
	if strings.TrimSpace(sentence) == "" {
		return nil, nil
	}

	data, err := json.Marshal(posTagRequest{
		Text:  sentence,
		Model: c.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/tag", bytes.NewBuffer(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("tagger returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed posTagResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return parsed.Tokens, nil
}

// NewRegistry registers one POSClient per language/model pair.
func NewRegistry(baseURL string, models map[string]string, timeout time.Duration) *text.Registry {
	r := text.NewRegistry()
	for lang, model := range models {
		r.Register(lang, NewPosClient(baseURL, model, timeout))
	}
	return r
}
