/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/humaidq/labscan/metrics"
)

// CacheSize is the number of translations kept in memory.
const CacheSize = 128

const defaultTimeout = 30 * time.Second

// Config holds the OpenAI-compatible endpoint used for translation.
type Config struct {
	URL     string
	Model   string
	Timeout time.Duration
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type cacheKey struct {
	lang string
	text string
}

// Client translates through a /v1/chat/completions endpoint and caches
// results per language.
type Client struct {
	cfg        Config
	httpClient *http.Client
	cache      *lru.Cache[cacheKey, string]
}

// NewClient builds a Client. Both URL and Model are required.
func NewClient(cfg Config) (*Client, error) {
	if cfg.URL == "" || cfg.Model == "" {
		return nil, ErrNotConfigured
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	cache, err := lru.New[cacheKey, string](CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create translation cache: %w", err)
	}

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cache:      cache,
	}, nil
}

// Translate returns text in lang. English, empty text, unknown languages
// and any failure return text unchanged.
func (c *Client) Translate(ctx context.Context, text, lang string) string {
	if lang == English || strings.TrimSpace(text) == "" {
		return text
	}

	name, ok := LanguageName(lang)
	if !ok {
		logger.Warn("Unsupported translation language", "language", lang)
		return text
	}

	key := cacheKey{lang: lang, text: text}
	if cached, ok := c.cache.Get(key); ok {
		metrics.ObserveTranslation(metrics.TranslationHit)
		return cached
	}

	translated, err := c.complete(ctx, name, text)
	if err != nil {
		metrics.ObserveTranslation(metrics.TranslationError)
		logger.Warn("Translation failed", "language", lang, "text", preview(text), "error", err)
		return text
	}

	if translated == "" {
		return text
	}

	metrics.ObserveTranslation(metrics.TranslationMiss)
	c.cache.Add(key, translated)

	return translated
}

func (c *Client) complete(ctx context.Context, languageName, text string) (string, error) {
	reqBody := chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{
				Role: "system",
				Content: "You translate short medical guidance from English into " + languageName +
					". Reply with the translation only, without quotes or commentary.",
			},
			{Role: "user", Content: text},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := strings.TrimSuffix(c.cfg.URL, "/") + "/v1/chat/completions"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call translation endpoint: %w", err)
	}

	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Debug("Failed to close translation response", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return "", fmt.Errorf("translation endpoint returned status %d: %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if chatResp.Error != nil {
		return "", fmt.Errorf("translation endpoint error: %s", chatResp.Error.Message)
	}

	if len(chatResp.Choices) == 0 {
		return "", errEmptyResponse
	}

	return strings.TrimSpace(chatResp.Choices[0].Message.Content), nil
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= 20 {
		return text
	}

	return string(runes[:20]) + "..."
}
