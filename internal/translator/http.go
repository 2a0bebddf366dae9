package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"lexibot/internal/config"
	"lexibot/internal/domain"
)

// HTTPClient calls a LibreTranslate-compatible translation endpoint
type HTTPClient struct {
	url        string
	apiKey     string
	sourceLang string
	targetLang string
	client     *http.Client
}

// NewHTTPClient creates a translation client from config. The HTTP client
// timeout bounds the call even when the caller passes no deadline.
func NewHTTPClient(cfg config.TranslatorConfig) *HTTPClient {
	return &HTTPClient{
		url:        cfg.URL,
		apiKey:     cfg.APIKey,
		sourceLang: cfg.SourceLang,
		targetLang: cfg.TargetLang,
		client:     &http.Client{Timeout: cfg.Timeout},
	}
}

type translateRequest struct {
	Query  string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error,omitempty"`
}

// Translate maps text from the source language to the target language.
// Any transport error, API error or empty result comes back wrapped as
// domain.ErrTranslationFailed.
func (c *HTTPClient) Translate(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(translateRequest{
		Query:  text,
		Source: c.sourceLang,
		Target: c.targetLang,
		Format: "text",
		APIKey: c.apiKey,
	})
	if err != nil {
		return "", fmt.Errorf("%w: marshal request: %v", domain.ErrTranslationFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: create request: %v", domain.ErrTranslationFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrTranslationFailed, err)
	}
	defer resp.Body.Close()

	var result translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", domain.ErrTranslationFailed, err)
	}

	if result.Error != "" {
		return "", fmt.Errorf("%w: %s", domain.ErrTranslationFailed, result.Error)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected status %d", domain.ErrTranslationFailed, resp.StatusCode)
	}

	translated := strings.TrimSpace(result.TranslatedText)
	if translated == "" {
		return "", fmt.Errorf("%w: empty translation", domain.ErrTranslationFailed)
	}

	return translated, nil
}
