package openai

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

	"explain-this/api/internal/llm"
	"explain-this/api/internal/simplify"
	"explain-this/api/internal/util"
)

const DefaultBaseURL = "https://api.openai.com/v1"

type Engine struct {
	APIKey  string
	Model   string
	BaseURL string
	httpc   *http.Client
}

func New(key, model string) *Engine {
	return &Engine{
		APIKey:  strings.TrimSpace(key),
		Model:   strings.TrimSpace(model),
		BaseURL: DefaultBaseURL,
		httpc:   &http.Client{Timeout: 60 * time.Second},
	}
}

// WithBaseURL points the engine at an OpenAI-compatible endpoint.
func (e *Engine) WithBaseURL(u string) *Engine {
	if u = strings.TrimSpace(u); u != "" {
		e.BaseURL = strings.TrimRight(u, "/")
	}
	return e
}

// WithTimeout overrides the HTTP client timeout; zero keeps the current one.
func (e *Engine) WithTimeout(d time.Duration) *Engine {
	if d > 0 {
		e.httpc = &http.Client{Timeout: d}
	}
	return e
}

var _ llm.Engine = (*Engine)(nil)

func (e *Engine) Name() string { return "gpt" }

func (e *Engine) GetModel() string { return e.Model }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (e *Engine) Simplify(ctx context.Context, text string, level simplify.Complexity) (string, error) {
	if e.APIKey == "" {
		return "", errors.New("OPENAI_API_KEY is empty")
	}

	body := chatRequest{
		Model: e.Model,
		Messages: []chatMessage{
			{Role: "system", Content: llm.SystemPrompt(level)},
			{Role: "user", Content: llm.UserPrompt(text, level)},
		},
		Temperature: 0.3,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.BaseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.APIKey)

	resp, err := e.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		x, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return "", fmt.Errorf("openai simplify %d: %s", resp.StatusCode, strings.TrimSpace(string(x)))
	}

	var raw chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return "", fmt.Errorf("openai simplify: bad JSON: %w", err)
	}
	if raw.Error != nil && raw.Error.Message != "" {
		return "", fmt.Errorf("openai simplify: %s", raw.Error.Message)
	}
	if len(raw.Choices) == 0 {
		return "", fmt.Errorf("openai simplify: empty response")
	}
	out := util.StripCodeFences(raw.Choices[0].Message.Content)
	if out == "" {
		return "", fmt.Errorf("openai simplify: empty response")
	}
	return out, nil
}
