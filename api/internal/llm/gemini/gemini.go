package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"explain-this/api/internal/llm"
	"explain-this/api/internal/simplify"
	"explain-this/api/internal/util"
)

const (
	maxAttempts  = 3
	retryBackoff = 300 * time.Millisecond
)

type Engine struct {
	APIKey string
	Model  string

	// Temperature is kept low so repeated requests read alike.
	Temperature float32
	// Timeout bounds one Simplify call including retries; zero means no bound.
	Timeout time.Duration

	backoff time.Duration
}

func New(apiKey, model string) *Engine {
	return &Engine{
		APIKey:      strings.TrimSpace(apiKey),
		Model:       strings.TrimSpace(model),
		Temperature: 0.3,
		backoff:     retryBackoff,
	}
}

func (e *Engine) WithTimeout(d time.Duration) *Engine {
	if d > 0 {
		e.Timeout = d
	}
	return e
}

var _ llm.Engine = (*Engine)(nil)

func (e *Engine) Name() string     { return "gemini" }
func (e *Engine) GetModel() string { return e.Model }

// Simplify rewrites text for the given level via generateContent.
func (e *Engine) Simplify(ctx context.Context, text string, level simplify.Complexity) (string, error) {
	if e.APIKey == "" {
		return "", errors.New("GEMINI_API_KEY is empty")
	}
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(e.APIKey))
	if err != nil {
		return "", fmt.Errorf("gemini: new client: %w", err)
	}
	defer cl.Close()

	m := cl.GenerativeModel(e.Model)
	if m == nil {
		return "", fmt.Errorf("gemini: model is nil")
	}
	e.configure(m, level)

	parts := []genai.Part{genai.Text(llm.UserPrompt(text, level))}

	return e.generate(ctx, func(ctx context.Context) (*genai.GenerateContentResponse, error) {
		return m.GenerateContent(ctx, parts...)
	})
}

func (e *Engine) configure(m *genai.GenerativeModel, level simplify.Complexity) {
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:      ptrFloat32(e.Temperature),
		ResponseMIMEType: "text/plain",
	}
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(llm.SystemPrompt(level))},
	}
}

type generateFunc func(ctx context.Context) (*genai.GenerateContentResponse, error)

// generate calls gen up to maxAttempts times, backing off linearly between failures.
func (e *Engine) generate(ctx context.Context, gen generateFunc) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		resp, err := gen(ctx)
		if err != nil {
			lastErr = err
			if attempt == maxAttempts {
				break
			}
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(time.Duration(attempt) * e.backoff):
			}
			continue
		}
		out := util.StripCodeFences(firstText(resp))
		if out == "" {
			return "", fmt.Errorf("gemini simplify: empty response")
		}
		return out, nil
	}
	return "", fmt.Errorf("gemini simplify: %w", lastErr)
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		var b strings.Builder
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
		if b.Len() > 0 {
			return b.String()
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }
