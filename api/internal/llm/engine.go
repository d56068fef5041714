package llm

import (
	"context"
	"errors"
	"strings"

	"explain-this/api/internal/simplify"
)

// Engine is an LLM provider able to rewrite text for a reading level.
type Engine interface {
	Name() string
	GetModel() string
	Simplify(ctx context.Context, text string, level simplify.Complexity) (string, error)
}

type Engines struct {
	Gemini Engine
	OpenAI Engine
}

var ErrUnknownEngine = errors.New("unknown llm_name; use 'gemini' or 'gpt'")

// ErrEngineNotConfigured is returned when the named engine has no API key.
var ErrEngineNotConfigured = errors.New("llm engine not configured")

func (e *Engines) GetEngine(llmName string) (Engine, error) {
	var eng Engine
	switch strings.ToLower(strings.TrimSpace(llmName)) {
	case "", "gemini":
		eng = e.Gemini
	case "gpt", "openai":
		eng = e.OpenAI
	default:
		return nil, ErrUnknownEngine
	}
	if eng == nil {
		return nil, ErrEngineNotConfigured
	}
	return eng, nil
}
