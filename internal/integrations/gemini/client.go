// Package gemini is a focused client for the Google generative
// language API, used as the last-resort answer path when neither the
// keyword rules nor the FAQ table can handle a question.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"oyunlag-bot/internal/domain"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-2.0-flash"
)

// generateRequest is the minimal request shape for generateContent.
type generateRequest struct {
	SystemInstruction *contentBlock  `json:"system_instruction,omitempty"`
	Contents          []contentBlock `json:"contents"`
	GenerationConfig  *genConfig     `json:"generationConfig,omitempty"`
}

type contentBlock struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type genConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// generateResponse is the minimal response shape for generateContent.
type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// HTTPStatusError captures non-2xx upstream responses with status-aware context.
type HTTPStatusError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("gemini: unexpected status %d from %s: %s", e.StatusCode, e.URL, e.Body)
}

func (e *HTTPStatusError) HTTPStatusCode() int {
	return e.StatusCode
}

// Client calls the generateContent endpoint for one API key.
type Client struct {
	baseURL     string
	model       string
	apiKey      string
	httpClient  *http.Client
	schoolFacts string
}

// Option configures a Client.
type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	}
}

func WithModel(model string) Option {
	return func(c *Client) {
		if strings.TrimSpace(model) != "" {
			c.model = model
		}
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a generateContent client. schoolFacts is the static
// context block injected into every prompt.
func NewClient(apiKey, schoolFacts string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini: api key must not be empty")
	}
	c := &Client{
		baseURL:     defaultBaseURL,
		model:       defaultModel,
		apiKey:      apiKey,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		schoolFacts: schoolFacts,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Complete asks the model to answer a parent's question in the detected
// language and returns the plain-text completion.
func (c *Client) Complete(ctx context.Context, question string, lang domain.Language) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", errors.New("gemini: question must not be empty")
	}

	body, err := json.Marshal(generateRequest{
		SystemInstruction: &contentBlock{
			Parts: []part{{Text: systemPrompt(c.schoolFacts, lang)}},
		},
		Contents: []contentBlock{
			{Role: "user", Parts: []part{{Text: question}}},
		},
		GenerationConfig: &genConfig{
			Temperature:     0.4,
			MaxOutputTokens: 512,
		},
	})
	if err != nil {
		return "", fmt.Errorf("gemini: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if reqErr != nil {
		return "", fmt.Errorf("gemini: create request: %w", reqErr)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	raw, err := c.doJSONRequest(req, url)
	if err != nil {
		return "", fmt.Errorf("gemini: request failed: %w", err)
	}

	var payload generateResponse
	if decErr := json.Unmarshal(raw, &payload); decErr != nil {
		return "", fmt.Errorf("gemini: decode response: %w", decErr)
	}
	if len(payload.Candidates) == 0 || len(payload.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini: no candidates in response")
	}
	text := strings.TrimSpace(payload.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", errors.New("gemini: empty completion text")
	}
	return text, nil
}

func (c *Client) doJSONRequest(req *http.Request, url string) ([]byte, error) {
	res, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return nil, doErr
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		buf, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return nil, &HTTPStatusError{
			StatusCode: res.StatusCode,
			URL:        url,
			Body:       string(buf),
		}
	}

	buf, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return buf, nil
}

func systemPrompt(schoolFacts string, lang domain.Language) string {
	language := "Mongolian"
	if lang == domain.LanguageEnglish {
		language = "English"
	}
	return strings.Join([]string{
		"You are the assistant for Oyunlag School in Ulaanbaatar, answering parents on Facebook Messenger.",
		"Answer only from the school facts below. If the facts do not cover the question, say you do not know and suggest calling 7575 5050.",
		"Keep answers short, friendly, and in " + language + ".",
		"",
		"School facts:",
		strings.TrimSpace(schoolFacts),
	}, "\n")
}
