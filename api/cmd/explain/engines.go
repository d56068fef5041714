package main

import (
	"errors"
	"log/slog"

	"explain-this/api/internal/config"
	"explain-this/api/internal/llm"
	"explain-this/api/internal/llm/gemini"
	"explain-this/api/internal/llm/openai"
	"explain-this/api/internal/simplify"
)

// newEngines builds only the engines that have an API key.
func newEngines(cfg *config.Config) *llm.Engines {
	engs := &llm.Engines{}
	if cfg.GeminiAPIKey != "" {
		engs.Gemini = gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel).WithTimeout(cfg.LLMTimeout)
	}
	if cfg.OpenAIAPIKey != "" {
		engs.OpenAI = openai.New(cfg.OpenAIAPIKey, cfg.OpenAIModel).
			WithBaseURL(cfg.OpenAIBaseURL).
			WithTimeout(cfg.LLMTimeout)
	}
	return engs
}

// newDispatcher resolves the configured engine once. When it cannot be wired the dispatcher
// is built without one and reports the AI service as unavailable.
func newDispatcher(cfg *config.Config, log *slog.Logger) *simplify.Dispatcher {
	eng, err := newEngines(cfg).GetEngine(cfg.LLMName)
	if err != nil {
		if errors.Is(err, llm.ErrEngineNotConfigured) {
			log.Warn("AI service not wired: missing API key", "llm_name", cfg.LLMName)
		} else {
			log.Warn("AI service not wired", "llm_name", cfg.LLMName, "error", err)
		}
		return simplify.New(nil)
	}
	log.Info("AI service wired", "engine", eng.Name(), "model", eng.GetModel())
	return simplify.New(eng)
}
